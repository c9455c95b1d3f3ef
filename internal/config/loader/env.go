package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix for quill environment variables.
const DefaultEnvPrefix = "QUILL_"

// EnvLoader maps prefixed environment variables onto settings paths.
//
// Variables listed in the mapping go to their mapped path. Any other
// prefixed variable is converted by name: QUILL_MARKDOWN_FENCE_PREFIX
// becomes markdown.fencePrefix.
type EnvLoader struct {
	prefix  string
	mapping map[string]string // variable -> settings path
	lists   map[string]bool   // settings paths read as comma-separated lists
	environ func() []string
}

// NewEnvLoader returns a loader with quill's standard mapping under prefix.
func NewEnvLoader(prefix string) *EnvLoader {
	mapping := map[string]string{}
	for suffix, path := range standardEnv {
		mapping[prefix+suffix] = path
	}
	return NewEnvLoaderWithMapping(prefix, mapping)
}

// NewEnvLoaderWithMapping returns a loader using mapping alone for
// explicit variables.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		lists:   map[string]bool{"lua.capabilities": true},
		environ: os.Environ,
	}
}

var standardEnv = map[string]string{
	"LOG_LEVEL":                   "logging.level",
	"CLIPBOARD_SYSTEM":            "clipboard.system",
	"SECTIONS_RESPONSE_SEPARATOR": "sections.responseSeparator",
	"LUA_CALL_LIMIT":              "lua.callLimit",
	"LUA_TIMEOUT":                 "lua.timeout",
	"LUA_CAPABILITIES":            "lua.capabilities",
}

// AddMapping routes envVar to path.
func (l *EnvLoader) AddMapping(envVar, path string) {
	if l.mapping == nil {
		l.mapping = map[string]string{}
	}
	l.mapping[envVar] = path
}

// Load collects every prefixed variable. A variable set to the empty
// string is kept as an empty value.
func (l *EnvLoader) Load() (map[string]any, error) {
	out := map[string]any{}
	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(out, path, l.parseValue(path, value))
	}
	return out, nil
}

// envToPath lowercases the first word as the section and camel-cases the
// rest as the setting name.
func (l *EnvLoader) envToPath(env string) string {
	words := strings.Split(strings.TrimPrefix(env, l.prefix), "_")
	var b strings.Builder
	for i, w := range words {
		if w == "" {
			continue
		}
		w = strings.ToLower(w)
		switch {
		case i == 0:
			b.WriteString(w)
		case i == 1:
			b.WriteByte('.')
			b.WriteString(w)
		default:
			b.WriteString(strings.ToUpper(w[:1]) + w[1:])
		}
	}
	return b.String()
}

// parseValue reads booleans, integers and decimals; list paths split on
// commas. Durations stay strings for the config getters to parse.
func (l *EnvLoader) parseValue(path, s string) any {
	if l.lists[path] {
		items := []any{}
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

func setByPath(data map[string]any, path string, value any) {
	key, rest, nested := strings.Cut(path, ".")
	if !nested {
		data[key] = value
		return
	}
	child, ok := data[key].(map[string]any)
	if !ok {
		child = map[string]any{}
		data[key] = child
	}
	setByPath(child, rest, value)
}
