// Package profiler ranks the server regions of named applications by
// measured latency.
package profiler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"netforge/internal/probe"
)

// NoServersReachable is returned by BestRegion when every region of a
// profile failed to answer.
const NoServersReachable = "No servers reachable"

const (
	defaultAttempts = 3
	defaultTimeout  = 5 * time.Second
)

// Profile names an application and its server hosts grouped by region code.
type Profile struct {
	App     string              `json:"app"`
	Regions map[string][]string `json:"regions"`
}

// RegionLatency aggregates probe results over one region's hosts. Only
// reachable hosts feed the min/max/avg figures; hosts that never answered
// are listed separately instead of skewing the average with a sentinel.
type RegionLatency struct {
	Region           string   `json:"region"`
	MinMs            float64  `json:"minMs"`
	MaxMs            float64  `json:"maxMs"`
	AvgMs            float64  `json:"avgMs"`
	Hosts            int      `json:"hosts"`
	ReachableHosts   int      `json:"reachableHosts"`
	UnreachableHosts []string `json:"unreachableHosts,omitempty"`
}

// Reachable reports whether at least one host in the region answered.
func (r RegionLatency) Reachable() bool {
	return r.ReachableHosts > 0
}

type prober interface {
	Probe(ctx context.Context, host string, attempts int, timeout time.Duration) probe.Result
}

// Profiler applies the latency prober to server profiles. Stateless; safe
// for concurrent use as long as the underlying prober is.
type Profiler struct {
	prober   prober
	attempts int
	timeout  time.Duration
}

// New builds a profiler with the standard small attempt count.
func New(p prober) *Profiler {
	return &Profiler{prober: p, attempts: defaultAttempts, timeout: defaultTimeout}
}

// SetTiming overrides the per-host attempt count and per-attempt timeout.
func (p *Profiler) SetTiming(attempts int, timeout time.Duration) {
	if attempts >= 1 {
		p.attempts = attempts
	}
	if timeout > 0 {
		p.timeout = timeout
	}
}

// LatencyByRegion probes every host of every region in the profile and
// aggregates per region. Unreachable hosts are excluded from the averages
// but reported by name so display layers can mark them.
func (p *Profiler) LatencyByRegion(ctx context.Context, profile Profile) map[string]RegionLatency {
	out := make(map[string]RegionLatency, len(profile.Regions))
	for region, hosts := range profile.Regions {
		out[region] = p.measureRegion(ctx, region, hosts)
	}
	return out
}

func (p *Profiler) measureRegion(ctx context.Context, region string, hosts []string) RegionLatency {
	rl := RegionLatency{Region: region, Hosts: len(hosts)}

	var sum float64
	for _, host := range hosts {
		res := p.prober.Probe(ctx, host, p.attempts, p.timeout)
		if !res.Reachable() {
			rl.UnreachableHosts = append(rl.UnreachableHosts, host)
			continue
		}
		avg := res.Avg()
		if rl.ReachableHosts == 0 || avg < rl.MinMs {
			rl.MinMs = avg
		}
		if avg > rl.MaxMs {
			rl.MaxMs = avg
		}
		sum += avg
		rl.ReachableHosts++
	}
	if rl.ReachableHosts > 0 {
		rl.AvgMs = sum / float64(rl.ReachableHosts)
	}
	return rl
}

// BestRegion picks the reachable region with the lowest average latency and
// formats it as "<region> (<avg>ms)". Ties go to the alphabetically first
// region so repeated runs agree. Returns NoServersReachable when nothing
// answered.
func (p *Profiler) BestRegion(ctx context.Context, profile Profile) string {
	byRegion := p.LatencyByRegion(ctx, profile)

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	best := ""
	bestAvg := 0.0
	for _, region := range regions {
		rl := byRegion[region]
		if !rl.Reachable() {
			continue
		}
		if best == "" || rl.AvgMs < bestAvg {
			best = region
			bestAvg = rl.AvgMs
		}
	}
	if best == "" {
		return NoServersReachable
	}
	return fmt.Sprintf("%s (%.1fms)", best, bestAvg)
}
