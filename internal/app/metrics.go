package app

import (
	"sync/atomic"
	"time"

	"github.com/dshills/tac/internal/editor"
	"github.com/dshills/tac/internal/renderer/backend"
	"github.com/dshills/tac/internal/renderer/view"
)

// Metrics tracks frame and input counts for one run.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64

	keyCount    atomic.Uint64
	resizeCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records how long painting one frame took.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)

	for {
		old := m.frameMaxNs.Load()
		if ns <= old {
			break
		}
		if m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordEvent counts an input event.
func (m *Metrics) RecordEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		m.keyCount.Add(1)
	case backend.EventResize:
		m.resizeCount.Add(1)
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Frames       uint64
	AvgFrameTime time.Duration
	MaxFrameTime time.Duration
	Keys         uint64
	Resizes      uint64
	Uptime       time.Duration
}

// Snapshot returns the current values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Frames:       m.frameCount.Load(),
		MaxFrameTime: time.Duration(m.frameMaxNs.Load()),
		Keys:         m.keyCount.Load(),
		Resizes:      m.resizeCount.Load(),
		Uptime:       time.Since(m.startTime),
	}
	if s.Frames > 0 {
		s.AvgFrameTime = time.Duration(m.frameTotalNs.Load() / int64(s.Frames))
	}
	return s
}

// meteredDisplay records every frame and event passing through a Display.
type meteredDisplay struct {
	editor.Display
	metrics *Metrics
}

func (d *meteredDisplay) Render(f *view.Frame) {
	start := time.Now()
	d.Display.Render(f)
	d.metrics.RecordFrame(time.Since(start))
}

func (d *meteredDisplay) ReadKey(blocking bool) (backend.Event, bool) {
	ev, ok := d.Display.ReadKey(blocking)
	if ok {
		d.metrics.RecordEvent(ev)
	}
	return ev, ok
}
