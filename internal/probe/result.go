// Package probe measures reachability and round-trip latency to single
// hosts using a chain of fallback strategies: ICMP echo, the OS ping
// utility, and finally TCP connect timing.
package probe

// Result captures the outcome of one probe call against a single host.
// Unreachability has exactly one representation: Succeeded == 0, in which
// case the latency accessors return 0 and PacketLossPct returns 100.
type Result struct {
	Target    string    `json:"target"`
	Samples   []float64 `json:"samples"` // round-trip times in milliseconds
	Attempted int       `json:"attempted"`
	Succeeded int       `json:"succeeded"`
	Strategy  string    `json:"strategy,omitempty"` // strategy that produced the samples
}

// Reachable reports whether at least one attempt produced a sample.
func (r Result) Reachable() bool {
	return r.Succeeded > 0
}

// Min returns the lowest sample in milliseconds, or 0 when unreachable.
func (r Result) Min() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	min := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s < min {
			min = s
		}
	}
	return min
}

// Max returns the highest sample in milliseconds, or 0 when unreachable.
func (r Result) Max() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	max := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s > max {
			max = s
		}
	}
	return max
}

// Avg returns the mean sample in milliseconds, or 0 when unreachable.
func (r Result) Avg() float64 {
	if len(r.Samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range r.Samples {
		sum += s
	}
	return sum / float64(len(r.Samples))
}

// PacketLossPct returns the share of attempts that produced no sample,
// in percent. A result with no attempts counts as total loss.
func (r Result) PacketLossPct() float64 {
	if r.Attempted <= 0 {
		return 100
	}
	lost := r.Attempted - r.Succeeded
	if lost < 0 {
		lost = 0
	}
	return float64(lost) / float64(r.Attempted) * 100
}

// Merge concatenates several results into one aggregate, used when a
// caller probes multiple targets and wants a single per-link figure.
// Sample order follows the order of the inputs.
func Merge(target string, results ...Result) Result {
	merged := Result{Target: target}
	for _, r := range results {
		merged.Samples = append(merged.Samples, r.Samples...)
		merged.Attempted += r.Attempted
		merged.Succeeded += r.Succeeded
		if merged.Strategy == "" {
			merged.Strategy = r.Strategy
		}
	}
	return merged
}
