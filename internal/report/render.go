package report

import (
	"fmt"
	"sort"
	"strings"
)

// Render formats an analysis as the multi-line text report shown by shells
// that do not consume the structured snapshot. Sections degrade to
// "unreachable" / "no data" labels; the report always renders.
func Render(a Analysis) string {
	var b strings.Builder
	b.WriteString("=== Network Analysis Report ===\n\n")

	if a.Host.Hostname != "" {
		fmt.Fprintf(&b, "Host: %s (%s)\n", a.Host.Hostname, a.Host.Platform)
		fmt.Fprintf(&b, "Uptime: %s, CPU: %.1f%%, RAM: %.1f%%\n\n", a.Host.Uptime, a.Host.CPUUsage, a.Host.RAMUsage)
	}

	b.WriteString("1. Basic Connectivity Test:\n")
	if len(a.Connectivity) == 0 {
		b.WriteString("   no probe targets configured\n")
	}
	for _, c := range a.Connectivity {
		if c.Reachable {
			fmt.Fprintf(&b, "   %s: %.2fms avg, %.1f%% loss\n", c.Server, c.LatencyMs, c.PacketLossPct)
		} else {
			fmt.Fprintf(&b, "   %s: unreachable\n", c.Server)
		}
	}
	b.WriteString("\n")

	b.WriteString("2. Game Server Latency:\n")
	if len(a.Gaming) == 0 {
		b.WriteString("   no server profiles configured\n")
	}
	for _, app := range a.Gaming {
		fmt.Fprintf(&b, "   %s:\n", app.App)
		for _, region := range sortedRegions(app) {
			rl := app.Regions[region]
			if rl.Reachable() {
				fmt.Fprintf(&b, "      %s: %.2fms avg (%.2f-%.2fms)\n", region, rl.AvgMs, rl.MinMs, rl.MaxMs)
				for _, host := range rl.UnreachableHosts {
					fmt.Fprintf(&b, "         %s: unreachable\n", host)
				}
			} else {
				fmt.Fprintf(&b, "      %s: unreachable\n", region)
			}
		}
		fmt.Fprintf(&b, "      Best: %s\n", app.BestRegion)
	}
	b.WriteString("\n")

	b.WriteString("3. Bandwidth Estimate (latency-derived, not measured):\n")
	if a.Bandwidth.DownloadMbps > 0 {
		fmt.Fprintf(&b, "   Download: %.1f Mbps\n", a.Bandwidth.DownloadMbps)
		fmt.Fprintf(&b, "   Upload: %.1f Mbps\n", a.Bandwidth.UploadMbps)
		fmt.Fprintf(&b, "   Ping: %.1f ms\n", a.AvgLatencyMs)
	} else {
		b.WriteString("   no data\n")
	}
	b.WriteString("\n")

	b.WriteString("4. Network Interfaces:\n")
	if len(a.Interfaces) == 0 {
		b.WriteString("   none detected\n")
	}
	for _, iface := range a.Interfaces {
		if !iface.IsUp || len(iface.Addresses) == 0 {
			continue
		}
		fmt.Fprintf(&b, "   %s (%s): %s\n", iface.Name, iface.Kind, iface.Addresses[0].IP)
	}
	b.WriteString("\n")

	b.WriteString("5. Active Connections:\n")
	fmt.Fprintf(&b, "   Total established connections: %d\n", a.ActiveConnections.Established)
	for _, pc := range a.ActiveConnections.TopPorts {
		fmt.Fprintf(&b, "   Port %s: %d connections\n", pc.Port, pc.Count)
	}
	b.WriteString("\n")

	b.WriteString("6. Connection Quality:\n")
	fmt.Fprintf(&b, "   Score: %d/100 (%s)\n", a.Quality.Value, a.Quality.Rating)
	for _, issue := range a.Quality.Issues {
		fmt.Fprintf(&b, "   Issue: %s\n", issue)
	}

	if len(a.Recommendations) > 0 {
		b.WriteString("\n7. Recommendations:\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(&b, "   - %s\n", rec)
		}
	}

	return b.String()
}

func sortedRegions(app AppLatency) []string {
	regions := make([]string, 0, len(app.Regions))
	for region := range app.Regions {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}
