// Package layer holds the prioritised configuration layers that make up
// quill's effective settings.
package layer

// Layer is one source of settings. When layers are merged, higher
// Priority wins.
type Layer struct {
	Name     string
	Priority int
	Source   Source

	// Path is the file the layer was read from, if any.
	Path string

	// Data is the nested settings map.
	Data map[string]any
}

// NewLayer returns an empty layer for source using its standard name and
// priority.
func NewLayer(source Source) *Layer {
	return NewLayerWithData(source, nil)
}

// NewLayerWithData returns a layer for source that owns data.
func NewLayerWithData(source Source, data map[string]any) *Layer {
	if data == nil {
		data = map[string]any{}
	}
	return &Layer{
		Name:     source.LayerName(),
		Priority: source.Priority(),
		Source:   source,
		Data:     data,
	}
}

// Clone returns a deep copy of l.
func (l *Layer) Clone() *Layer {
	c := *l
	c.Data = cloneMap(l.Data)
	return &c
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

func cloneSlice(src []any) []any {
	if src == nil {
		return nil
	}
	dst := make([]any, len(src))
	for i, v := range src {
		dst[i] = cloneValue(v)
	}
	return dst
}
