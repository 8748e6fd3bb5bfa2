package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"netforge/internal/config"
	"netforge/internal/netinfo"
	"netforge/internal/probe"
	"netforge/internal/profiler"
	"netforge/internal/quality"
	"netforge/internal/sysinfo"
)

// scriptedProber answers with a fixed latency per host; unknown hosts are
// unreachable.
type scriptedProber struct {
	latencies map[string]float64
}

func (p *scriptedProber) Probe(_ context.Context, host string, attempts int, _ time.Duration) probe.Result {
	res := probe.Result{Target: host, Attempted: attempts}
	latency, ok := p.latencies[host]
	if !ok {
		return res
	}
	for i := 0; i < attempts; i++ {
		res.Samples = append(res.Samples, latency)
	}
	res.Succeeded = attempts
	return res
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.ProbeTargets = []string{"8.8.8.8", "1.1.1.1", "208.67.222.222"}
	cfg.Profiles = []profiler.Profile{{
		App:     "TestGame",
		Regions: map[string][]string{"NA": {"na.example.com"}},
	}}
	return cfg
}

func newTestAnalyzer(cfg config.Config, p prober) *Analyzer {
	a := NewAnalyzer(cfg, p)
	a.interfaces = func() ([]netinfo.Interface, error) {
		return []netinfo.Interface{{
			Name:      "eth0",
			Kind:      netinfo.KindWired,
			Addresses: []netinfo.Address{{IP: "192.168.0.2", Netmask: "255.255.255.0"}},
			IsUp:      true,
		}}, nil
	}
	a.census = func() netinfo.Census {
		return netinfo.Census{Established: 3, TopPorts: []netinfo.PortCount{{Port: "443", Count: 3}}}
	}
	a.hostinfo = func() sysinfo.Host {
		return sysinfo.Host{Hostname: "testhost", CPUUsage: 10, RAMUsage: 40}
	}
	return a
}

func TestAnalyzeConnected(t *testing.T) {
	p := &scriptedProber{latencies: map[string]float64{
		"8.8.8.8":        12,
		"1.1.1.1":        14,
		"na.example.com": 30,
	}}
	a := newTestAnalyzer(testConfig(), p)

	analysis := a.Analyze(context.Background())

	if analysis.Status != "Connected" {
		t.Errorf("Status = %q, want %q", analysis.Status, "Connected")
	}
	if len(analysis.Connectivity) != connectivityTargets {
		t.Fatalf("got %d connectivity results, want %d", len(analysis.Connectivity), connectivityTargets)
	}
	if analysis.Connectivity[0].Server != "8.8.8.8" || !analysis.Connectivity[0].Reachable {
		t.Errorf("Connectivity[0] = %+v, want reachable 8.8.8.8", analysis.Connectivity[0])
	}
	if analysis.AvgLatencyMs != 13 {
		t.Errorf("AvgLatencyMs = %v, want 13", analysis.AvgLatencyMs)
	}
	if analysis.PacketLossPct != 0 {
		t.Errorf("PacketLossPct = %v, want 0", analysis.PacketLossPct)
	}
	if analysis.Quality.Value != 100 {
		t.Errorf("Quality.Value = %d, want 100", analysis.Quality.Value)
	}
	if analysis.Bandwidth.DownloadMbps <= 0 {
		t.Errorf("DownloadMbps = %v, want > 0", analysis.Bandwidth.DownloadMbps)
	}
	if len(analysis.Gaming) != 1 {
		t.Fatalf("got %d gaming entries, want 1", len(analysis.Gaming))
	}
	if analysis.Gaming[0].BestRegion != "NA (30.0ms)" {
		t.Errorf("BestRegion = %q, want %q", analysis.Gaming[0].BestRegion, "NA (30.0ms)")
	}
	if len(analysis.Interfaces) != 1 {
		t.Errorf("got %d interfaces, want 1", len(analysis.Interfaces))
	}
	if analysis.ActiveConnections.Established != 3 {
		t.Errorf("Established = %d, want 3", analysis.ActiveConnections.Established)
	}
	if analysis.Host.Hostname != "testhost" {
		t.Errorf("Host.Hostname = %q, want %q", analysis.Host.Hostname, "testhost")
	}
	if len(analysis.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want none for a healthy link", analysis.Recommendations)
	}
}

func TestAnalyzeBusyHostRecommendation(t *testing.T) {
	p := &scriptedProber{latencies: map[string]float64{"8.8.8.8": 12, "1.1.1.1": 14, "na.example.com": 30}}
	a := newTestAnalyzer(testConfig(), p)
	a.hostinfo = func() sysinfo.Host {
		return sysinfo.Host{Hostname: "testhost", CPUUsage: 95, RAMUsage: 40}
	}

	analysis := a.Analyze(context.Background())

	if len(analysis.Recommendations) != 1 {
		t.Fatalf("Recommendations = %v, want exactly the busy-host hint", analysis.Recommendations)
	}
	if !strings.Contains(analysis.Recommendations[0], "overloaded") {
		t.Errorf("Recommendations[0] = %q, want the busy-host hint", analysis.Recommendations[0])
	}
}

func TestAnalyzeDisconnected(t *testing.T) {
	a := newTestAnalyzer(testConfig(), &scriptedProber{})

	analysis := a.Analyze(context.Background())

	if analysis.Status != "Disconnected" {
		t.Errorf("Status = %q, want %q", analysis.Status, "Disconnected")
	}
	if analysis.Quality.Value != 0 {
		t.Errorf("Quality.Value = %d, want 0", analysis.Quality.Value)
	}
	if !analysis.Quality.HasIssue(quality.IssueUnreachable) {
		t.Error("expected an Unreachable issue")
	}
	if analysis.Bandwidth.DownloadMbps != 0 {
		t.Errorf("DownloadMbps = %v, want 0", analysis.Bandwidth.DownloadMbps)
	}
	if analysis.Gaming[0].BestRegion != profiler.NoServersReachable {
		t.Errorf("BestRegion = %q, want %q", analysis.Gaming[0].BestRegion, profiler.NoServersReachable)
	}
	want := "Unable to analyze network - check connection"
	if len(analysis.Recommendations) != 1 || analysis.Recommendations[0] != want {
		t.Errorf("Recommendations = %v, want [%q]", analysis.Recommendations, want)
	}
}

func TestAnalyzePartialReachability(t *testing.T) {
	// First target answers, second does not; status is still connected.
	p := &scriptedProber{latencies: map[string]float64{"8.8.8.8": 20}}
	a := newTestAnalyzer(testConfig(), p)

	analysis := a.Analyze(context.Background())

	if analysis.Status != "Connected" {
		t.Errorf("Status = %q, want %q", analysis.Status, "Connected")
	}
	if analysis.Connectivity[0].Reachable == analysis.Connectivity[1].Reachable {
		t.Errorf("Connectivity = %+v, want one reachable and one not", analysis.Connectivity)
	}
	if analysis.PacketLossPct != 50 {
		t.Errorf("PacketLossPct = %v, want 50", analysis.PacketLossPct)
	}
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name    string
		score   quality.Score
		avgMs   float64
		lossPct float64
		want    []string
	}{
		{
			name:  "healthy connection",
			score: quality.Score{Value: 100, Rating: quality.RatingExcellent},
			avgMs: 10,
		},
		{
			name:  "unreachable",
			score: quality.Score{Value: 0, Rating: quality.RatingPoor, Issues: []quality.Issue{quality.IssueUnreachable}},
			want:  []string{"Unable to analyze network - check connection"},
		},
		{
			name:  "high latency",
			score: quality.Score{Value: 85, Rating: quality.RatingExcellent},
			avgMs: 80,
			want: []string{
				"Try using a wired connection instead of WiFi",
				"Close unnecessary network applications",
			},
		},
		{
			name:    "packet loss",
			score:   quality.Score{Value: 90, Rating: quality.RatingExcellent},
			avgMs:   10,
			lossPct: 3,
			want: []string{
				"Check for network interference",
				"Restart your router and modem",
			},
		},
		{
			name:    "poor everything",
			score:   quality.Score{Value: 30, Rating: quality.RatingPoor},
			avgMs:   150,
			lossPct: 12,
			want: []string{
				"Consider upgrading your internet connection",
				"Try using a wired connection instead of WiFi",
				"Close unnecessary network applications",
				"Check for network interference",
				"Restart your router and modem",
				"Contact your ISP about connection issues",
				"Consider using a different DNS server (8.8.8.8)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommendations(tt.score, tt.avgMs, tt.lossPct)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d recommendations %v, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("recommendation[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
