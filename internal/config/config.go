// Package config is the engine's input boundary: probe targets, timing,
// thresholds, and server profiles, supplied as a plain JSON file. Nothing
// here is fatal; a missing or broken file degrades to compiled-in defaults.
package config

import (
	"encoding/json"
	"os"
	"time"

	"netforge/internal/profiler"
)

// Config carries every tunable the engine accepts from outside.
type Config struct {
	ProbeTargets        []string           `json:"probeTargets"`
	ProbeAttempts       int                `json:"probeAttempts"`
	ProbeTimeoutMs      int                `json:"probeTimeoutMs"`
	MonitorIntervalSec  int                `json:"monitorIntervalSec"`
	HistorySize         int                `json:"historySize"`
	FailoverThresholdMs float64            `json:"failoverThresholdMs"`
	AutoFailover        bool               `json:"autoFailover"`
	Profiles            []profiler.Profile `json:"profiles"`
}

// Default returns the compiled-in configuration: public resolver targets,
// a 5s per-attempt timeout, 30s monitoring interval, and the built-in
// server profiles.
func Default() Config {
	return Config{
		ProbeTargets:        []string{"8.8.8.8", "1.1.1.1", "208.67.222.222", "8.8.4.4"},
		ProbeAttempts:       4,
		ProbeTimeoutMs:      5000,
		MonitorIntervalSec:  30,
		HistorySize:         100,
		FailoverThresholdMs: 30.0,
		AutoFailover:        true,
		Profiles:            profiler.BuiltinProfiles(),
	}
}

// Load reads a JSON config file, filling gaps with defaults. Any read or
// parse failure returns Default(); callers always get a usable config.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg.normalized()
}

// Save writes the config as indented JSON.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// normalized clamps out-of-range values back to their defaults.
func (c Config) normalized() Config {
	def := Default()
	if len(c.ProbeTargets) == 0 {
		c.ProbeTargets = def.ProbeTargets
	}
	if c.ProbeAttempts < 1 {
		c.ProbeAttempts = def.ProbeAttempts
	}
	if c.ProbeTimeoutMs <= 0 {
		c.ProbeTimeoutMs = def.ProbeTimeoutMs
	}
	if c.MonitorIntervalSec < 1 {
		c.MonitorIntervalSec = def.MonitorIntervalSec
	}
	if c.HistorySize < 1 {
		c.HistorySize = def.HistorySize
	}
	if c.FailoverThresholdMs <= 0 {
		c.FailoverThresholdMs = def.FailoverThresholdMs
	}
	if len(c.Profiles) == 0 {
		c.Profiles = def.Profiles
	}
	return c
}

// ProbeTimeout returns the per-attempt timeout as a duration.
func (c Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMs) * time.Millisecond
}

// MonitorInterval returns the sampling interval as a duration.
func (c Config) MonitorInterval() time.Duration {
	return time.Duration(c.MonitorIntervalSec) * time.Second
}
