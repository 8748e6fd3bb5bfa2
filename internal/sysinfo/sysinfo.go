// Package sysinfo collects the coarse host facts shown alongside a network
// analysis: identity, uptime, and how loaded the machine is. A saturated CPU
// or exhausted RAM is a common cause of apparent "network" lag, so the
// report surfaces both next to the latency figures.
package sysinfo

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// staticCache holds host facts that never change during a session.
var (
	staticOnce  sync.Once
	staticCache staticInfo
)

type staticInfo struct {
	OS       string
	Hostname string
	Platform string
	CPUModel string
	CPUCores int
}

// Host is the point-in-time host summary. Collection failures leave the
// affected fields at their zero values.
type Host struct {
	OS       string  `json:"os"`
	Hostname string  `json:"hostname"`
	Platform string  `json:"platform"`
	CPUModel string  `json:"cpuModel"`
	CPUCores int     `json:"cpuCores"`
	CPUUsage float64 `json:"cpuUsage"`
	RAMUsage float64 `json:"ramUsage"`
	Uptime   string  `json:"uptime"`
}

func loadStaticInfo() staticInfo {
	staticOnce.Do(func() {
		s := staticInfo{OS: runtime.GOOS}

		if hostInfo, err := host.Info(); err == nil {
			s.Hostname = hostInfo.Hostname
			s.Platform = hostInfo.Platform + " " + hostInfo.PlatformVersion
		}
		if cpuInfos, err := cpu.Info(); err == nil && len(cpuInfos) > 0 {
			s.CPUModel = cpuInfos[0].ModelName
		}
		if cores, err := cpu.Counts(true); err == nil {
			s.CPUCores = cores
		}

		staticCache = s
	})
	return staticCache
}

// Collect gathers the host summary. Static facts are cached after the first
// call; usage figures are refreshed every time.
func Collect() Host {
	s := loadStaticInfo()
	h := Host{
		OS:       s.OS,
		Hostname: s.Hostname,
		Platform: s.Platform,
		CPUModel: s.CPUModel,
		CPUCores: s.CPUCores,
	}

	// Sampling window kept short; the analysis pass already takes seconds.
	if percentages, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(percentages) > 0 {
		h.CPUUsage = round2(percentages[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		h.RAMUsage = round2(vm.UsedPercent)
	}
	if secs, err := host.Uptime(); err == nil {
		h.Uptime = formatUptime(secs)
	}
	return h
}

// Busy reports whether the host itself is loaded enough to distort latency
// measurements or cause in-app lag unrelated to the link.
func (h Host) Busy() bool {
	return h.CPUUsage >= 80 || h.RAMUsage >= 90
}

// formatUptime converts seconds into a short form like "3d 5h 23m".
func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
