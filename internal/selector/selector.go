// Package selector ranks local network interfaces by measured connection
// quality and plans primary/backup failover ordering from that ranking.
package selector

import (
	"context"
	"sort"
	"time"

	"netforge/internal/netinfo"
	"netforge/internal/probe"
	"netforge/internal/quality"
)

// DefaultTargets are the well-known reachability hosts probed per interface
// when the configuration supplies none.
var DefaultTargets = []string{"8.8.8.8", "1.1.1.1", "208.67.222.222"}

const (
	defaultAttempts = 2
	defaultTimeout  = 5 * time.Second
)

// prober is the slice of probe.Prober the selector needs; tests substitute
// a canned implementation.
type prober interface {
	Probe(ctx context.Context, host string, attempts int, timeout time.Duration) probe.Result
}

// ConnectionQuality pairs an interface with its aggregated measurement.
type ConnectionQuality struct {
	Interface netinfo.Interface `json:"interface"`
	Probe     probe.Result      `json:"probe"`
	Bandwidth quality.Bandwidth `json:"bandwidth"`
	Quality   quality.Score     `json:"quality"`
}

// Selector measures every up interface against a fixed target set. It holds
// no state between calls; interfaces are re-enumerated every time.
type Selector struct {
	prober     prober
	targets    []string
	attempts   int
	timeout    time.Duration
	interfaces func() ([]netinfo.Interface, error)
}

// New builds a selector over the given prober and reachability targets.
// Empty targets fall back to DefaultTargets.
func New(p prober, targets []string) *Selector {
	if len(targets) == 0 {
		targets = DefaultTargets
	}
	return &Selector{
		prober:     p,
		targets:    targets,
		attempts:   defaultAttempts,
		timeout:    defaultTimeout,
		interfaces: netinfo.ListInterfaces,
	}
}

// SetTiming overrides the per-target attempt count and per-attempt timeout.
func (s *Selector) SetTiming(attempts int, timeout time.Duration) {
	if attempts >= 1 {
		s.attempts = attempts
	}
	if timeout > 0 {
		s.timeout = timeout
	}
}

// Rank measures every up interface and returns them sorted by score,
// highest first. Ties keep enumeration order. Down interfaces are skipped
// entirely; an empty slice means nothing was up.
func (s *Selector) Rank(ctx context.Context) ([]ConnectionQuality, error) {
	ifaces, err := s.interfaces()
	if err != nil {
		return nil, err
	}

	var ranked []ConnectionQuality
	for _, iface := range ifaces {
		if !iface.IsUp {
			continue
		}
		ranked = append(ranked, s.measure(ctx, iface))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quality.Value > ranked[j].Quality.Value
	})
	return ranked, nil
}

// measure probes every target once through this interface's default route
// and folds the samples into a single aggregate result.
func (s *Selector) measure(ctx context.Context, iface netinfo.Interface) ConnectionQuality {
	results := make([]probe.Result, 0, len(s.targets))
	for _, target := range s.targets {
		results = append(results, s.prober.Probe(ctx, target, s.attempts, s.timeout))
	}
	merged := probe.Merge(iface.Name, results...)

	var bw quality.Bandwidth
	if merged.Reachable() {
		bw = quality.EstimateBandwidth(merged.Avg())
	}

	return ConnectionQuality{
		Interface: iface,
		Probe:     merged,
		Bandwidth: bw,
		Quality:   quality.Assess(merged, bw.DownloadMbps),
	}
}

// BestConnection returns the highest-scoring up interface, or nil when no
// interface is up.
func (s *Selector) BestConnection(ctx context.Context) (*ConnectionQuality, error) {
	ranked, err := s.Rank(ctx)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}

// BackupConnections returns the ranking minus the top entry, still sorted
// descending by score. Empty when at most one interface is up.
func (s *Selector) BackupConnections(ctx context.Context) ([]ConnectionQuality, error) {
	ranked, err := s.Rank(ctx)
	if err != nil {
		return nil, err
	}
	if len(ranked) <= 1 {
		return nil, nil
	}
	return ranked[1:], nil
}
