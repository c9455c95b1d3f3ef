package layer

import (
	"sort"
	"strings"
)

// DeepMerge folds src into dst and returns dst. Nested maps present on
// both sides are merged key by key; any other src value replaces the dst
// value. Values taken from src are copied so later edits to src are not
// visible through dst.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, val := range src {
		incoming, incomingIsMap := val.(map[string]any)
		existing, existingIsMap := dst[key].(map[string]any)
		if incomingIsMap && existingIsMap {
			dst[key] = DeepMerge(existing, incoming)
			continue
		}
		dst[key] = cloneValue(val)
	}
	return dst
}

func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		return cloneSlice(v)
	}
	return val
}

// GetByPath looks up a dotted path such as "lua.timeout" in data.
func GetByPath(data map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	node := data
	for {
		key, rest, nested := strings.Cut(path, ".")
		val, ok := node[key]
		if !ok {
			return nil, false
		}
		if !nested {
			return val, true
		}
		if node, ok = val.(map[string]any); !ok {
			return nil, false
		}
		path = rest
	}
}

// SetByPath stores value at a dotted path, replacing any non-map value
// found on the way with a fresh map.
func SetByPath(data map[string]any, path string, value any) {
	if data == nil || path == "" {
		return
	}
	key, rest, nested := strings.Cut(path, ".")
	if !nested {
		data[key] = value
		return
	}
	child, ok := data[key].(map[string]any)
	if !ok {
		child = make(map[string]any)
		data[key] = child
	}
	SetByPath(child, rest, value)
}

// FlattenMap returns every leaf of data keyed by its dotted path.
func FlattenMap(data map[string]any) map[string]any {
	out := make(map[string]any)
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for key, val := range m {
			if prefix != "" {
				key = prefix + "." + key
			}
			if child, ok := val.(map[string]any); ok && len(child) > 0 {
				walk(key, child)
				continue
			}
			out[key] = val
		}
	}
	walk("", data)
	return out
}

// SortedPaths returns the keys of a flattened map in order.
func SortedPaths(flat map[string]any) []string {
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
