package probe

import (
	"context"
	"time"
)

// DefaultTimeout bounds a single probe attempt.
const DefaultTimeout = 5 * time.Second

// Strategy collects latency samples for one host. An empty slice means the
// strategy failed entirely and the prober should fall through to the next.
// Strategies never return errors; partial failure shows up as fewer samples
// than attempts.
type Strategy interface {
	Name() string
	Collect(ctx context.Context, host string, attempts int, timeout time.Duration) []float64
}

// Prober measures latency to single hosts through an ordered strategy chain.
// The zero value is not usable; construct with New or NewDefault.
type Prober struct {
	strategies []Strategy
}

// New builds a prober over an explicit strategy chain, tried in order.
func New(strategies ...Strategy) *Prober {
	return &Prober{strategies: strategies}
}

// NewDefault builds the standard chain: ICMP echo, then the system ping
// command, then TCP connect timing against port 80.
func NewDefault() *Prober {
	return New(
		NewICMPStrategy(),
		NewPingCommandStrategy(nil),
		NewTCPConnectStrategy(0),
	)
}

// Probe measures round-trip latency to host. Strategies are tried in order
// until one yields at least one sample for the whole call; if every strategy
// comes back empty the result reports 100% loss. Probe never returns an
// error and never panics past the caller.
func (p *Prober) Probe(ctx context.Context, host string, attempts int, timeout time.Duration) Result {
	if attempts < 1 {
		attempts = 1
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	result := Result{Target: host, Attempted: attempts}
	for _, s := range p.strategies {
		if ctx.Err() != nil {
			break
		}
		samples := s.Collect(ctx, host, attempts, timeout)
		if len(samples) == 0 {
			continue
		}
		if len(samples) > attempts {
			samples = samples[:attempts]
		}
		result.Samples = samples
		result.Succeeded = len(samples)
		result.Strategy = s.Name()
		break
	}
	return result
}
