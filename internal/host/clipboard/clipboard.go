// Package clipboard provides host.Clipboard implementations.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Memory is a process-local clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates a clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// ClipboardText implements host.Clipboard.
func (m *Memory) ClipboardText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// SetClipboardText implements host.Clipboard.
func (m *Memory) SetClipboardText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// System is the operating system clipboard.
//
// host.Clipboard has no error results, so failures are reported to the
// error handler and the last value is kept in memory. Reads that fail return
// that value.
type System struct {
	fallback Memory
	onError  func(error)
}

// NewSystem creates a system clipboard. onError may be nil.
func NewSystem(onError func(error)) *System {
	return &System{onError: onError}
}

// Available reports whether the platform has a usable clipboard utility.
func Available() bool {
	return !clipboard.Unsupported
}

// ClipboardText implements host.Clipboard.
func (s *System) ClipboardText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		s.report(err)
		return s.fallback.ClipboardText()
	}
	return text
}

// SetClipboardText implements host.Clipboard.
func (s *System) SetClipboardText(text string) {
	s.fallback.SetClipboardText(text)
	if err := clipboard.WriteAll(text); err != nil {
		s.report(err)
	}
}

func (s *System) report(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}
