package probe

import (
	"context"
	"regexp"
	"runtime"
	"strconv"
	"time"

	"netforge/internal/cmd"
)

// timePattern matches the per-packet duration tokens ping prints across
// platforms and locales: "time=12.3 ms", "time<1ms", "tempo=12ms".
var timePattern = regexp.MustCompile(`(?i)(?:time|tempo)[=<]\s*([0-9.]+)\s*ms`)

// PingCommandStrategy invokes the platform ping utility and parses the
// textual duration tokens from its output.
type PingCommandStrategy struct {
	run cmd.Runner
	os  string
}

// NewPingCommandStrategy builds the strategy. A nil runner uses os/exec.
func NewPingCommandStrategy(run cmd.Runner) *PingCommandStrategy {
	if run == nil {
		run = cmd.Run
	}
	return &PingCommandStrategy{run: run, os: runtime.GOOS}
}

// Name identifies the strategy in probe results.
func (s *PingCommandStrategy) Name() string { return "ping" }

// Collect runs ping once with the full attempt count and parses every
// duration token from stdout. A non-zero exit or unparsable output yields
// an empty sample list so the prober falls through.
func (s *PingCommandStrategy) Collect(ctx context.Context, host string, attempts int, timeout time.Duration) []float64 {
	// Bound the whole invocation: one per-packet timeout per attempt plus
	// slack for name resolution.
	runCtx, cancel := context.WithTimeout(ctx, timeout*time.Duration(attempts)+2*time.Second)
	defer cancel()

	out, err := s.run(runCtx, "ping", pingArgs(s.os, host, attempts, timeout)...)
	if err != nil {
		return nil
	}
	return ParsePingTimes(out)
}

// pingArgs builds the platform-specific argument list. Windows takes the
// per-packet timeout in milliseconds, Linux in seconds, macOS (-W) in
// milliseconds.
func pingArgs(goos, host string, attempts int, timeout time.Duration) []string {
	count := strconv.Itoa(attempts)
	switch goos {
	case "windows":
		return []string{"-n", count, "-w", strconv.Itoa(int(timeout.Milliseconds())), host}
	case "darwin":
		return []string{"-n", "-c", count, "-W", strconv.Itoa(int(timeout.Milliseconds())), host}
	default:
		sec := int(timeout.Seconds() + 0.5)
		if sec < 1 {
			sec = 1
		}
		return []string{"-c", count, "-W", strconv.Itoa(sec), host}
	}
}

// ParsePingTimes extracts every per-packet duration from ping output, in
// milliseconds. Unparsable tokens are skipped.
func ParsePingTimes(output []byte) []float64 {
	var samples []float64
	for _, match := range timePattern.FindAllSubmatch(output, -1) {
		value, err := strconv.ParseFloat(string(match[1]), 64)
		if err != nil {
			continue
		}
		samples = append(samples, value)
	}
	return samples
}
