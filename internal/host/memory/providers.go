package memory

import (
	"sort"
	"sync"
)

// Dictation is a host.Dictation that replays queued utterances.
type Dictation struct {
	mu        sync.Mutex
	queue     []string
	activated int
}

// NewDictation creates a dictation provider returning utterances in order.
func NewDictation(utterances ...string) *Dictation {
	return &Dictation{queue: append([]string(nil), utterances...)}
}

// Dictate implements host.Dictation. An empty queue or an empty utterance
// reports nothing captured.
func (d *Dictation) Dictate() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.queue) == 0 {
		return "", false
	}
	text := d.queue[0]
	d.queue = d.queue[1:]
	return text, text != ""
}

// Activate implements host.Dictation.
func (d *Dictation) Activate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.activated++
}

// Activations returns how many times Activate was called.
func (d *Dictation) Activations() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activated
}

// Tags is a host.TagQuerier over a fixed set of tags.
type Tags struct {
	tags map[string]struct{}
}

// NewTags creates a tag source. Duplicates are collapsed.
func NewTags(tags ...string) *Tags {
	t := &Tags{tags: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		if tag != "" {
			t.tags[tag] = struct{}{}
		}
	}
	return t
}

// QueryAllTags implements host.TagQuerier. Order is unspecified by the
// interface; this implementation returns tags sorted.
func (t *Tags) QueryAllTags() []string {
	out := make([]string, 0, len(t.tags))
	for tag := range t.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
