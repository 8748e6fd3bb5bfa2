// Package report assembles one-shot network analysis snapshots and renders
// them as multi-line text for whatever shell sits on top of the engine.
package report

import (
	"context"
	"time"

	"netforge/internal/config"
	"netforge/internal/netinfo"
	"netforge/internal/probe"
	"netforge/internal/profiler"
	"netforge/internal/quality"
	"netforge/internal/sysinfo"
)

// connectivityTargets bounds how many probe targets feed the basic
// connectivity section of a snapshot.
const connectivityTargets = 2

// ConnectivityResult is one probe-target line of the snapshot.
type ConnectivityResult struct {
	Server        string  `json:"server"`
	LatencyMs     float64 `json:"latencyMs"`
	PacketLossPct float64 `json:"packetLossPct"`
	Reachable     bool    `json:"reachable"`
}

// AppLatency is the per-application server measurement of a snapshot.
type AppLatency struct {
	App        string                            `json:"app"`
	Regions    map[string]profiler.RegionLatency `json:"regions"`
	BestRegion string                            `json:"bestRegion"`
}

// Analysis is the full one-shot snapshot handed to the display layer.
// Every field is always populated; failures degrade to zero values and
// "unreachable" markers rather than errors.
type Analysis struct {
	Status            string               `json:"status"` // "Connected" or "Disconnected"
	Host              sysinfo.Host         `json:"host"`
	Connectivity      []ConnectivityResult `json:"connectivity"`
	Quality           quality.Score        `json:"quality"`
	AvgLatencyMs      float64              `json:"avgLatencyMs"`
	PacketLossPct     float64              `json:"packetLossPct"`
	Bandwidth         quality.Bandwidth    `json:"bandwidth"`
	Gaming            []AppLatency         `json:"gaming"`
	Interfaces        []netinfo.Interface  `json:"interfaces"`
	ActiveConnections netinfo.Census       `json:"activeConnections"`
	Recommendations   []string             `json:"recommendations"`
}

type prober interface {
	Probe(ctx context.Context, host string, attempts int, timeout time.Duration) probe.Result
}

// Analyzer runs the full analysis pass. The OS-facing collaborators are
// injectable so the assembly logic is testable without a network.
type Analyzer struct {
	cfg        config.Config
	prober     prober
	profiler   *profiler.Profiler
	interfaces func() ([]netinfo.Interface, error)
	census     func() netinfo.Census
	hostinfo   func() sysinfo.Host
}

// NewAnalyzer wires an analyzer from a config and a shared prober.
func NewAnalyzer(cfg config.Config, p prober) *Analyzer {
	prof := profiler.New(p)
	prof.SetTiming(3, cfg.ProbeTimeout())
	return &Analyzer{
		cfg:        cfg,
		prober:     p,
		profiler:   prof,
		interfaces: netinfo.ListInterfaces,
		census:     netinfo.ActiveConnections,
		hostinfo:   sysinfo.Collect,
	}
}

// Analyze produces a complete snapshot. It never returns an error; every
// section degrades independently.
func (a *Analyzer) Analyze(ctx context.Context) Analysis {
	analysis := Analysis{Status: "Disconnected"}

	// Basic connectivity against the first couple of probe targets, plus
	// an aggregate result feeding the quality score.
	targets := a.cfg.ProbeTargets
	if len(targets) > connectivityTargets {
		targets = targets[:connectivityTargets]
	}
	results := make([]probe.Result, 0, len(targets))
	for _, target := range targets {
		res := a.prober.Probe(ctx, target, 3, a.cfg.ProbeTimeout())
		results = append(results, res)
		analysis.Connectivity = append(analysis.Connectivity, ConnectivityResult{
			Server:        target,
			LatencyMs:     res.Avg(),
			PacketLossPct: res.PacketLossPct(),
			Reachable:     res.Reachable(),
		})
		if res.Reachable() {
			analysis.Status = "Connected"
		}
	}

	merged := probe.Merge("connectivity", results...)
	analysis.AvgLatencyMs = merged.Avg()
	analysis.PacketLossPct = merged.PacketLossPct()
	if merged.Reachable() {
		analysis.Bandwidth = quality.EstimateBandwidth(merged.Avg())
	}
	analysis.Quality = quality.Assess(merged, analysis.Bandwidth.DownloadMbps)

	for _, profile := range a.cfg.Profiles {
		analysis.Gaming = append(analysis.Gaming, AppLatency{
			App:        profile.App,
			Regions:    a.profiler.LatencyByRegion(ctx, profile),
			BestRegion: a.profiler.BestRegion(ctx, profile),
		})
	}

	if ifaces, err := a.interfaces(); err == nil {
		analysis.Interfaces = ifaces
	}
	analysis.ActiveConnections = a.census()
	analysis.Host = a.hostinfo()
	analysis.Recommendations = Recommendations(analysis.Quality, analysis.AvgLatencyMs, analysis.PacketLossPct)
	if analysis.Host.Busy() {
		analysis.Recommendations = append(analysis.Recommendations,
			"Close CPU or memory heavy applications; the host itself is overloaded")
	}

	return analysis
}

// Recommendations derives plain-text optimization advice from an
// assessment. The empty slice means the connection looks healthy.
func Recommendations(score quality.Score, avgLatencyMs, packetLossPct float64) []string {
	if score.HasIssue(quality.IssueUnreachable) {
		return []string{"Unable to analyze network - check connection"}
	}

	var recs []string
	if score.Value < 60 {
		recs = append(recs, "Consider upgrading your internet connection")
	}
	if avgLatencyMs > 50 {
		recs = append(recs,
			"Try using a wired connection instead of WiFi",
			"Close unnecessary network applications")
	}
	if packetLossPct > 1 {
		recs = append(recs,
			"Check for network interference",
			"Restart your router and modem")
	}
	if score.Value < 40 {
		recs = append(recs,
			"Contact your ISP about connection issues",
			"Consider using a different DNS server (8.8.8.8)")
	}
	return recs
}
