package app

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/quill/internal/actions"
)

// Metrics tracks action and script execution.
type Metrics struct {
	mu sync.Mutex

	// Action dispatch
	actionCount   atomic.Uint64
	actionTotalNs atomic.Int64
	actionMinNs   atomic.Int64
	actionMaxNs   atomic.Int64
	okCount       atomic.Uint64
	noOpCount     atomic.Uint64
	errorCount    atomic.Uint64

	// Script runs
	scriptCount   atomic.Uint64
	scriptTotalNs atomic.Int64
	scriptErrors  atomic.Uint64

	// Per-action invocation counts, guarded by mu
	perAction map[string]uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		perAction: make(map[string]uint64),
		startTime: time.Now(),
	}
	// Initialize min to max int64 so the first action will be smaller
	m.actionMinNs.Store(1<<63 - 1)
	return m
}

// RecordAction records one dispatched action.
func (m *Metrics) RecordAction(name string, status actions.ResultStatus, duration time.Duration) {
	ns := duration.Nanoseconds()

	m.actionCount.Add(1)
	m.actionTotalNs.Add(ns)

	for {
		old := m.actionMinNs.Load()
		if ns >= old || m.actionMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.actionMaxNs.Load()
		if ns <= old || m.actionMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}

	switch status {
	case actions.StatusOK:
		m.okCount.Add(1)
	case actions.StatusNoOp:
		m.noOpCount.Add(1)
	default:
		m.errorCount.Add(1)
	}

	m.mu.Lock()
	m.perAction[name]++
	m.mu.Unlock()
}

// RecordScript records one script run.
func (m *Metrics) RecordScript(duration time.Duration, err error) {
	m.scriptCount.Add(1)
	m.scriptTotalNs.Add(duration.Nanoseconds())
	if err != nil {
		m.scriptErrors.Add(1)
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	actionCount := m.actionCount.Load()
	scriptCount := m.scriptCount.Load()

	var avgActionNs int64
	if actionCount > 0 {
		avgActionNs = m.actionTotalNs.Load() / int64(actionCount)
	}
	var avgScriptNs int64
	if scriptCount > 0 {
		avgScriptNs = m.scriptTotalNs.Load() / int64(scriptCount)
	}

	minActionNs := m.actionMinNs.Load()
	if minActionNs == 1<<63-1 {
		minActionNs = 0
	}

	m.mu.Lock()
	perAction := make(map[string]uint64, len(m.perAction))
	for k, v := range m.perAction {
		perAction[k] = v
	}
	uptime := time.Since(m.startTime)
	m.mu.Unlock()

	return MetricsSnapshot{
		Uptime:        uptime,
		ActionCount:   actionCount,
		AvgActionNs:   avgActionNs,
		MinActionNs:   minActionNs,
		MaxActionNs:   m.actionMaxNs.Load(),
		OKCount:       m.okCount.Load(),
		NoOpCount:     m.noOpCount.Load(),
		ErrorCount:    m.errorCount.Load(),
		ScriptCount:   scriptCount,
		AvgScriptNs:   avgScriptNs,
		ScriptErrors:  m.scriptErrors.Load(),
		ActionsByName: perAction,
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.actionCount.Store(0)
	m.actionTotalNs.Store(0)
	m.actionMinNs.Store(1<<63 - 1)
	m.actionMaxNs.Store(0)
	m.okCount.Store(0)
	m.noOpCount.Store(0)
	m.errorCount.Store(0)
	m.scriptCount.Store(0)
	m.scriptTotalNs.Store(0)
	m.scriptErrors.Store(0)

	m.mu.Lock()
	m.perAction = make(map[string]uint64)
	m.startTime = time.Now()
	m.mu.Unlock()
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime        time.Duration
	ActionCount   uint64
	AvgActionNs   int64
	MinActionNs   int64
	MaxActionNs   int64
	OKCount       uint64
	NoOpCount     uint64
	ErrorCount    uint64
	ScriptCount   uint64
	AvgScriptNs   int64
	ScriptErrors  uint64
	ActionsByName map[string]uint64
}

// ErrorRate returns the percentage of actions that failed.
func (s MetricsSnapshot) ErrorRate() float64 {
	if s.ActionCount == 0 {
		return 0
	}
	return float64(s.ErrorCount) / float64(s.ActionCount) * 100
}

// ActionNames returns the names of dispatched actions, sorted.
func (s MetricsSnapshot) ActionNames() []string {
	names := make([]string, 0, len(s.ActionsByName))
	for name := range s.ActionsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// ElapsedMs returns the elapsed time in milliseconds.
func (t *Timer) ElapsedMs() float64 {
	return float64(t.Elapsed().Nanoseconds()) / 1e6
}
