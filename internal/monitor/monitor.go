// Package monitor runs a background loop that repeatedly samples connection
// quality and retains a bounded history of the results.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"netforge/internal/log"
	"netforge/internal/selector"
)

// DefaultHistorySize bounds the retained sample count.
const DefaultHistorySize = 100

// stopWait bounds how long Stop blocks for the loop to observe cancellation.
const stopWait = 5 * time.Second

// Sampler produces one measurement per monitor iteration, typically a
// selector ranking or a single-target probe wrapped into that shape.
type Sampler func(ctx context.Context) ([]selector.ConnectionQuality, error)

// Sample is one timestamped measurement in the history.
type Sample struct {
	Timestamp   time.Time                    `json:"timestamp"`
	Connections []selector.ConnectionQuality `json:"connections"`
}

// Stats is a point-in-time summary of the latest sample.
type Stats struct {
	TotalConnections  int    `json:"totalConnections"`
	ActiveConnections int    `json:"activeConnections"`
	BestInterface     string `json:"bestInterface"`
	BestScore         int    `json:"bestScore"`
	SampleCount       int    `json:"sampleCount"`
}

// Monitor owns one background worker and its history. All history mutation
// happens on the worker; readers get copies under the lock. A Monitor is
// constructed per use site, never shared process-wide.
type Monitor struct {
	mu       sync.Mutex
	sampler  Sampler
	capacity int
	logger   *log.Logger

	history []Sample
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New builds a monitor over the given sampler. Capacity <= 0 means
// DefaultHistorySize; a nil logger gets a default stderr logger.
func New(sampler Sampler, capacity int, logger *log.Logger) *Monitor {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	if logger == nil {
		logger = log.NewLogger(log.LevelInfo)
	}
	return &Monitor{sampler: sampler, capacity: capacity, logger: logger}
}

// Start launches the sampling loop. Calling Start while running is a no-op,
// never an error; exactly one worker exists per monitor.
func (m *Monitor) Start(interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})
	m.running = true

	go m.loop(ctx, interval, m.done)
}

// Stop cancels the loop and waits, bounded, for the worker to exit.
// Stopping a stopped monitor is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	done := m.done
	m.running = false
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-time.After(stopWait):
		m.logger.Warn("monitor worker did not exit before deadline", nil)
	}
}

// IsRunning reports whether the sampling loop is active.
func (m *Monitor) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) loop(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	for {
		m.sampleOnce(ctx)

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// sampleOnce runs a single iteration. Failures of any kind are logged and
// swallowed; the loop always proceeds to the next sleep.
func (m *Monitor) sampleOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("monitor iteration panicked", map[string]any{"panic": fmt.Sprint(r)})
		}
	}()

	connections, err := m.sampler(ctx)
	if err != nil {
		m.logger.Warn("monitor iteration failed", map[string]any{"error": err.Error()})
		return
	}

	m.append(Sample{Timestamp: time.Now(), Connections: connections})
}

// append adds a sample, evicting the oldest once capacity is exceeded.
func (m *Monitor) append(sample Sample) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) < m.capacity {
		m.history = append(m.history, sample)
		return
	}
	copy(m.history, m.history[1:])
	m.history[len(m.history)-1] = sample
}

// History returns a copy of the retained samples, oldest first.
func (m *Monitor) History() []Sample {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Sample(nil), m.history...)
}

// Stats summarizes the most recent sample: how many links were tracked, how
// many scored above zero, and the best-scoring one.
func (m *Monitor) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{SampleCount: len(m.history)}
	if len(m.history) == 0 {
		return stats
	}

	latest := m.history[len(m.history)-1]
	stats.TotalConnections = len(latest.Connections)
	best := -1
	for _, conn := range latest.Connections {
		if conn.Quality.Value > 0 {
			stats.ActiveConnections++
		}
		if conn.Quality.Value > best {
			best = conn.Quality.Value
			stats.BestInterface = conn.Interface.Name
			stats.BestScore = conn.Quality.Value
		}
	}
	return stats
}
