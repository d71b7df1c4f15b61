package input

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks how raw events fared in translation.
type Metrics struct {
	// Event counters
	pressesTotal  atomic.Uint64
	releasesTotal atomic.Uint64
	movesTotal    atomic.Uint64
	unboundTotal  atomic.Uint64
	ignoredTotal  atomic.Uint64

	// Latency tracking
	mu                sync.RWMutex
	latencies         []time.Duration
	maxLatencySamples int
	latencyIdx        int

	// Peak latency (all time)
	peakLatency atomic.Int64

	// Start time for uptime calculation
	startTime time.Time

	// Enable flag
	enabled atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		latencies:         make([]time.Duration, 1000),
		maxLatencySamples: 1000,
		startTime:         time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m.enabled.Load()
}

// Record counts one raw event. translated reports whether the engine
// produced an output for it.
func (m *Metrics) Record(ev Event, translated bool, latency time.Duration) {
	if !m.enabled.Load() {
		return
	}

	switch {
	case ev.Kind == EventMove:
		m.movesTotal.Add(1)
	case ev.IsButton() && !translated:
		m.unboundTotal.Add(1)
	case ev.Kind == EventPress:
		m.pressesTotal.Add(1)
	case ev.Kind == EventRelease:
		m.releasesTotal.Add(1)
	default:
		m.ignoredTotal.Add(1)
	}

	latencyNs := latency.Nanoseconds()
	for {
		current := m.peakLatency.Load()
		if latencyNs <= current {
			break
		}
		if m.peakLatency.CompareAndSwap(current, latencyNs) {
			break
		}
	}

	// Store in circular buffer
	m.mu.Lock()
	m.latencies[m.latencyIdx] = latency
	m.latencyIdx = (m.latencyIdx + 1) % m.maxLatencySamples
	m.mu.Unlock()
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	// Counters
	PressesTotal  uint64
	ReleasesTotal uint64
	MovesTotal    uint64
	UnboundTotal  uint64
	IgnoredTotal  uint64

	// Latency stats
	AvgLatency  time.Duration
	MaxLatency  time.Duration
	P99Latency  time.Duration
	PeakLatency time.Duration

	// Uptime
	Uptime time.Duration
}

// EventsTotal returns the number of events recorded in the snapshot.
func (s MetricsSnapshot) EventsTotal() uint64 {
	return s.PressesTotal + s.ReleasesTotal + s.MovesTotal + s.UnboundTotal + s.IgnoredTotal
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	latencies := make([]time.Duration, len(m.latencies))
	copy(latencies, m.latencies)
	startTime := m.startTime
	m.mu.RUnlock()

	snap := MetricsSnapshot{
		PressesTotal:  m.pressesTotal.Load(),
		ReleasesTotal: m.releasesTotal.Load(),
		MovesTotal:    m.movesTotal.Load(),
		UnboundTotal:  m.unboundTotal.Load(),
		IgnoredTotal:  m.ignoredTotal.Load(),
		PeakLatency:   time.Duration(m.peakLatency.Load()),
		Uptime:        time.Since(startTime),
	}
	snap.AvgLatency, snap.MaxLatency, snap.P99Latency = calculateLatencyStats(latencies)

	return snap
}

// calculateLatencyStats computes average, max, and p99 from a slice of latencies.
func calculateLatencyStats(latencies []time.Duration) (avg, maxLat, p99 time.Duration) {
	valid := make([]time.Duration, 0, len(latencies))
	for _, l := range latencies {
		if l > 0 {
			valid = append(valid, l)
		}
	}

	if len(valid) == 0 {
		return 0, 0, 0
	}

	var sum time.Duration
	for _, l := range valid {
		sum += l
		if l > maxLat {
			maxLat = l
		}
	}
	avg = sum / time.Duration(len(valid))

	slices.Sort(valid)
	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	p99 = valid[idx]

	return avg, maxLat, p99
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.pressesTotal.Store(0)
	m.releasesTotal.Store(0)
	m.movesTotal.Store(0)
	m.unboundTotal.Store(0)
	m.ignoredTotal.Store(0)
	m.peakLatency.Store(0)

	m.mu.Lock()
	m.latencies = make([]time.Duration, m.maxLatencySamples)
	m.latencyIdx = 0
	m.startTime = time.Now()
	m.mu.Unlock()
}
