package main

import (
	"context"
	"fmt"
	"os"

	"netforge/internal/config"
	"netforge/internal/log"
	"netforge/internal/monitor"
	"netforge/internal/probe"
	"netforge/internal/profiler"
	"netforge/internal/quality"
	"netforge/internal/report"
	"netforge/internal/selector"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

func runCLI(cfg config.Config, logger *log.Logger) {
	green := color.New(color.FgHiGreen, color.Bold)
	cyan := color.New(color.FgHiCyan)
	yellow := color.New(color.FgHiYellow)
	red := color.New(color.FgHiRed)

	green.Println("\n  ███╗   ██╗███████╗████████╗███████╗ ██████╗ ██████╗  ██████╗ ███████╗")
	green.Println("  ████╗  ██║██╔════╝╚══██╔══╝██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝")
	green.Println("  ██╔██╗ ██║█████╗     ██║   █████╗  ██║   ██║██████╔╝██║  ███╗█████╗  ")
	green.Println("  ██║╚██╗██║██╔══╝     ██║   ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝  ")
	green.Println("  ██║ ╚████║███████╗   ██║   ██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗")
	green.Println("  ╚═╝  ╚═══╝╚══════╝   ╚═╝   ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝")
	fmt.Println()
	cyan.Printf("  Network Quality & Adaptive Connection Engine v%s\n", Version)
	fmt.Println("  ─────────────────────────────────────────────")
	fmt.Println()

	prober := probe.NewDefault()
	sel := selector.New(prober, cfg.ProbeTargets)
	sel.SetTiming(2, cfg.ProbeTimeout())
	prof := profiler.New(prober)
	prof.SetTiming(3, cfg.ProbeTimeout())
	analyzer := report.NewAnalyzer(cfg, prober)
	mon := monitor.New(func(ctx context.Context) ([]selector.ConnectionQuality, error) {
		return sel.Rank(ctx)
	}, cfg.HistorySize, logger)
	defer mon.Stop()

	for {
		prompt := promptui.Select{
			Label: "What would you like to do?",
			Items: []string{
				"📊 Full Network Analysis",
				"⚡ Quick Quality Check",
				"🔌 Best Connection",
				"🔁 Failover Plan",
				"🎮 Game Server Latency",
				"📈 Continuous Monitor",
				"❌ Exit",
			},
			Size: 7,
		}

		i, _, err := prompt.Run()
		if err != nil {
			break
		}

		fmt.Println()

		switch i {
		case 0:
			cliAnalyze(analyzer, yellow)
		case 1:
			cliQuickCheck(cfg, prober, cyan, yellow)
		case 2:
			cliBestConnection(sel, cyan, yellow, red)
		case 3:
			cliFailover(cfg, sel, green, yellow, red)
		case 4:
			cliGameLatency(cfg, prof, cyan, yellow, red)
		case 5:
			cliMonitor(cfg, mon, green, yellow)
		case 6:
			mon.Stop()
			green.Println("  Thanks for using NetForge!")
			os.Exit(0)
		}
		fmt.Println()
	}
}

func cliAnalyze(analyzer *report.Analyzer, yellow *color.Color) {
	yellow.Println("  Running full network analysis (this takes a while)...")
	analysis := analyzer.Analyze(context.Background())
	fmt.Println()
	fmt.Println(report.Render(analysis))
}

func cliQuickCheck(cfg config.Config, prober *probe.Prober, cyan, yellow *color.Color) {
	yellow.Printf("  Probing %d targets...\n", len(cfg.ProbeTargets))

	ctx := context.Background()
	results := make([]probe.Result, 0, len(cfg.ProbeTargets))
	for _, target := range cfg.ProbeTargets {
		res := prober.Probe(ctx, target, cfg.ProbeAttempts, cfg.ProbeTimeout())
		results = append(results, res)
		if res.Reachable() {
			fmt.Printf("  %s: %.2fms avg, %.1f%% loss (%s)\n",
				target, res.Avg(), res.PacketLossPct(), res.Strategy)
		} else {
			fmt.Printf("  %s: unreachable\n", target)
		}
	}

	merged := probe.Merge("quick-check", results...)
	var bw quality.Bandwidth
	if merged.Reachable() {
		bw = quality.EstimateBandwidth(merged.Avg())
	}
	score := quality.Assess(merged, bw.DownloadMbps)
	cyan.Printf("\n  Quality: %d/100 (%s)\n", score.Value, score.Rating)
	for _, issue := range score.Issues {
		fmt.Printf("  Issue: %s\n", issue)
	}
}

func cliBestConnection(sel *selector.Selector, cyan, yellow, red *color.Color) {
	yellow.Println("  Ranking interfaces...")

	ranked, err := sel.Rank(context.Background())
	if err != nil {
		red.Printf("  Error: %v\n", err)
		return
	}
	if len(ranked) == 0 {
		red.Println("  No interface is up")
		return
	}

	for i, conn := range ranked {
		marker := "  "
		if i == 0 {
			marker = "★ "
		}
		fmt.Printf("  %s%s (%s): score %d/100, %.2fms avg, ~%.0f Mbps down\n",
			marker, conn.Interface.Name, conn.Interface.Kind,
			conn.Quality.Value, conn.Probe.Avg(), conn.Bandwidth.DownloadMbps)
	}
	cyan.Printf("\n  Best: %s\n", ranked[0].Interface.Name)
}

func cliFailover(cfg config.Config, sel *selector.Selector, green, yellow, red *color.Color) {
	yellow.Println("  Building failover plan...")

	ctx := context.Background()
	plan, err := sel.Plan(ctx, cfg.FailoverThresholdMs, cfg.AutoFailover)
	if err != nil {
		red.Printf("  Error: %v\n", err)
		return
	}
	if plan.Primary == nil {
		red.Println("  No primary connection available")
		return
	}

	fmt.Printf("  Primary: %s (score %d/100)\n", plan.Primary.Interface.Name, plan.Primary.Quality.Value)
	for i, backup := range plan.Backups {
		fmt.Printf("  Backup %d: %s (score %d/100)\n", i+1, backup.Interface.Name, backup.Quality.Value)
	}
	fmt.Printf("  Threshold: %.0fms, auto failover: %v\n", plan.FailoverThresholdMs, plan.AutoFailover)

	status, err := sel.TestFailover(ctx)
	if err != nil {
		red.Printf("  Error: %v\n", err)
		return
	}
	if status.Ready {
		green.Printf("  ✓ Failover ready (%d backup(s))\n", status.BackupCount)
	} else {
		yellow.Println("  ⚠ No backup available - failover not ready")
	}
}

func cliGameLatency(cfg config.Config, prof *profiler.Profiler, cyan, yellow, red *color.Color) {
	items := make([]string, len(cfg.Profiles)+1)
	for i, p := range cfg.Profiles {
		items[i] = p.App
	}
	items[len(cfg.Profiles)] = "Back"

	prompt := promptui.Select{
		Label: "Select Application",
		Items: items,
		Size:  len(items),
	}
	i, _, err := prompt.Run()
	if err != nil || i == len(cfg.Profiles) {
		return
	}

	profile := cfg.Profiles[i]
	yellow.Printf("  Probing %s servers...\n", profile.App)

	ctx := context.Background()
	byRegion := prof.LatencyByRegion(ctx, profile)
	for region, rl := range byRegion {
		if rl.Reachable() {
			fmt.Printf("  %s: %.2fms avg (%d/%d hosts reachable)\n",
				region, rl.AvgMs, rl.ReachableHosts, rl.Hosts)
		} else {
			red.Printf("  %s: unreachable\n", region)
		}
	}
	cyan.Printf("\n  Best region: %s\n", prof.BestRegion(ctx, profile))
}

func cliMonitor(cfg config.Config, mon *monitor.Monitor, green, yellow *color.Color) {
	for {
		state := "stopped"
		if mon.IsRunning() {
			state = "running"
		}

		prompt := promptui.Select{
			Label: fmt.Sprintf("Continuous Monitor (%s)", state),
			Items: []string{"Start", "Show Stats", "Show History", "Stop", "Back"},
			Size:  5,
		}
		i, _, err := prompt.Run()
		if err != nil {
			return
		}

		switch i {
		case 0:
			mon.Start(cfg.MonitorInterval())
			green.Printf("  ✓ Monitoring every %ds\n", cfg.MonitorIntervalSec)
		case 1:
			stats := mon.Stats()
			fmt.Printf("  Samples: %d\n", stats.SampleCount)
			fmt.Printf("  Tracked connections: %d (%d active)\n", stats.TotalConnections, stats.ActiveConnections)
			if stats.BestInterface != "" {
				fmt.Printf("  Best: %s (score %d/100)\n", stats.BestInterface, stats.BestScore)
			}
		case 2:
			history := mon.History()
			if len(history) == 0 {
				yellow.Println("  No samples yet")
				break
			}
			for _, sample := range history {
				best := "no interface up"
				if len(sample.Connections) > 0 {
					best = fmt.Sprintf("%s score %d/100",
						sample.Connections[0].Interface.Name, sample.Connections[0].Quality.Value)
				}
				fmt.Printf("  %s  %s\n", sample.Timestamp.Format("15:04:05"), best)
			}
		case 3:
			mon.Stop()
			green.Println("  ✓ Monitor stopped")
		case 4:
			return
		}
		fmt.Println()
	}
}
