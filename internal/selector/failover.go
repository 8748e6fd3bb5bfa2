package selector

import "context"

// DefaultFailoverThresholdMs is the latency threshold above which a
// reporting layer would consider switching to a backup link.
const DefaultFailoverThresholdMs = 30.0

// FailoverPlan orders ranked interfaces into primary and backup roles.
// Built fresh from a ranking on every call; never persisted.
type FailoverPlan struct {
	Primary             *ConnectionQuality  `json:"primary"`
	Backups             []ConnectionQuality `json:"backups"`
	FailoverThresholdMs float64             `json:"failoverThresholdMs"`
	AutoFailover        bool                `json:"autoFailover"`
}

// FailoverStatus reports whether a failover would have somewhere to go.
// No actual cutover is performed anywhere in this package.
type FailoverStatus struct {
	Ready       bool   `json:"ready"`
	Primary     string `json:"primary"`
	BackupCount int    `json:"backupCount"`
}

// Plan wraps the current ranking into a failover plan. A threshold <= 0
// falls back to DefaultFailoverThresholdMs. Primary is nil when no
// interface is up.
func (s *Selector) Plan(ctx context.Context, thresholdMs float64, autoFailover bool) (FailoverPlan, error) {
	if thresholdMs <= 0 {
		thresholdMs = DefaultFailoverThresholdMs
	}

	ranked, err := s.Rank(ctx)
	if err != nil {
		return FailoverPlan{}, err
	}

	plan := FailoverPlan{FailoverThresholdMs: thresholdMs, AutoFailover: autoFailover}
	if len(ranked) > 0 {
		plan.Primary = &ranked[0]
		plan.Backups = ranked[1:]
	}
	return plan, nil
}

// TestFailover verifies a primary link exists and reports whether at least
// one backup is available to take over.
func (s *Selector) TestFailover(ctx context.Context) (FailoverStatus, error) {
	ranked, err := s.Rank(ctx)
	if err != nil {
		return FailoverStatus{}, err
	}
	if len(ranked) == 0 {
		return FailoverStatus{}, nil
	}
	return FailoverStatus{
		Ready:       len(ranked) > 1,
		Primary:     ranked[0].Interface.Name,
		BackupCount: len(ranked) - 1,
	}, nil
}
