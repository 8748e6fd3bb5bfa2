// Package quality converts raw probe measurements into bounded quality
// scores and coarse bandwidth estimates. Everything here is a pure function
// of its inputs.
package quality

import "netforge/internal/probe"

// Rating labels a score bracket.
type Rating string

const (
	RatingExcellent Rating = "Excellent" // score >= 80
	RatingGood      Rating = "Good"      // score >= 60
	RatingFair      Rating = "Fair"      // score >= 40
	RatingPoor      Rating = "Poor"      // score < 40
)

// Issue flags a specific problem detected during assessment.
type Issue string

const (
	IssueHighLatency Issue = "High latency"
	IssuePacketLoss  Issue = "Packet loss"
	IssueUnreachable Issue = "Unreachable"
)

// Score summarizes latency and loss (and optionally bandwidth) as a 0-100
// figure with a rating label. Recomputed on demand, never stored.
type Score struct {
	Value  int     `json:"score"`
	Rating Rating  `json:"rating"`
	Issues []Issue `json:"issues,omitempty"`
}

// HasIssue reports whether the assessment flagged the given issue.
func (s Score) HasIssue(issue Issue) bool {
	for _, i := range s.Issues {
		if i == issue {
			return true
		}
	}
	return false
}

// Assess scores a probe result. Pass bandwidthMbps <= 0 when no estimate is
// available; the bandwidth bonus is simply skipped. A result with zero
// successful attempts short-circuits to score 0 with an Unreachable flag.
func Assess(res probe.Result, bandwidthMbps float64) Score {
	if !res.Reachable() {
		return Score{Value: 0, Rating: RatingPoor, Issues: []Issue{IssueUnreachable}}
	}

	avg := res.Avg()
	loss := res.PacketLossPct()

	score := 100
	switch {
	case avg > 100:
		score -= 30
	case avg > 50:
		score -= 15
	case avg > 20:
		score -= 5
	}
	switch {
	case loss > 10:
		score -= 40
	case loss > 5:
		score -= 20
	case loss > 1:
		score -= 10
	}
	switch {
	case bandwidthMbps > 100:
		score += 10
	case bandwidthMbps > 50:
		score += 5
	}
	score = clampInt(score, 0, 100)

	var issues []Issue
	if avg > 50 {
		issues = append(issues, IssueHighLatency)
	}
	if loss > 1 {
		issues = append(issues, IssuePacketLoss)
	}

	return Score{Value: score, Rating: rate(score), Issues: issues}
}

func rate(score int) Rating {
	switch {
	case score >= 80:
		return RatingExcellent
	case score >= 60:
		return RatingGood
	case score >= 40:
		return RatingFair
	default:
		return RatingPoor
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
