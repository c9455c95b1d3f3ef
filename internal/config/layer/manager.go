package layer

import (
	"sort"
	"sync"
)

// Manager keeps layers ordered by priority and caches their merge.
type Manager struct {
	mu     sync.RWMutex
	layers []*Layer // ascending priority
	merged map[string]any
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// AddLayer inserts l, replacing any layer with the same name.
func (m *Manager) AddLayer(l *Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remove(l.Name)
	m.layers = append(m.layers, l)
	m.sortLocked()
}

// RemoveLayer drops the named layer and reports whether it existed.
func (m *Manager) RemoveLayer(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remove(name)
}

func (m *Manager) remove(name string) bool {
	for i, l := range m.layers {
		if l.Name == name {
			m.layers = append(m.layers[:i], m.layers[i+1:]...)
			m.merged = nil
			return true
		}
	}
	return false
}

func (m *Manager) sortLocked() {
	sort.SliceStable(m.layers, func(i, j int) bool {
		return m.layers[i].Priority < m.layers[j].Priority
	})
	m.merged = nil
}

func (m *Manager) find(name string) *Layer {
	for _, l := range m.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// GetLayer returns the named layer or nil.
func (m *Manager) GetLayer(name string) *Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.find(name)
}

// Layers returns the layers in ascending priority.
func (m *Manager) Layers() []*Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Layer(nil), m.layers...)
}

// Set writes value at path into the standard layer for source, creating
// that layer on first use.
func (m *Manager) Set(source Source, path string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l := m.find(source.LayerName())
	if l == nil {
		l = NewLayer(source)
		m.layers = append(m.layers, l)
		m.sortLocked()
	}
	SetByPath(l.Data, path, value)
	m.merged = nil
}

// Merge returns a copy of all layers merged in priority order.
func (m *Manager) Merge() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.merged == nil {
		m.merged = map[string]any{}
		for _, l := range m.layers {
			DeepMerge(m.merged, l.Data)
		}
	}
	return cloneMap(m.merged)
}

// Get returns the value at path from the highest layer that sets it,
// along with that layer.
func (m *Manager) Get(path string) (any, *Layer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		if v, ok := GetByPath(m.layers[i].Data, path); ok {
			return v, m.layers[i], true
		}
	}
	return nil, nil, false
}
