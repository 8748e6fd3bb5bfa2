package quality

import (
	"testing"

	"netforge/internal/probe"
)

func result(samples []float64, attempted int) probe.Result {
	return probe.Result{
		Target:    "test",
		Samples:   samples,
		Attempted: attempted,
		Succeeded: len(samples),
	}
}

func TestAssess(t *testing.T) {
	tests := []struct {
		name       string
		res        probe.Result
		bandwidth  float64
		wantScore  int
		wantRating Rating
		wantIssues []Issue
	}{
		{
			name:       "fast and lossless",
			res:        result([]float64{10, 12, 11, 9}, 4),
			wantScore:  100,
			wantRating: RatingExcellent,
		},
		{
			name:       "moderate latency",
			res:        result([]float64{60, 60}, 2),
			wantScore:  85,
			wantRating: RatingExcellent,
			wantIssues: []Issue{IssueHighLatency},
		},
		{
			name:       "high latency",
			res:        result([]float64{150, 150}, 2),
			wantScore:  70,
			wantRating: RatingGood,
			wantIssues: []Issue{IssueHighLatency},
		},
		{
			name:       "slight latency penalty only",
			res:        result([]float64{30, 30}, 2),
			wantScore:  95,
			wantRating: RatingExcellent,
		},
		{
			name:       "half the packets lost",
			res:        result([]float64{10, 10}, 4),
			wantScore:  60,
			wantRating: RatingGood,
			wantIssues: []Issue{IssuePacketLoss},
		},
		{
			name:       "high latency and heavy loss",
			res:        result([]float64{150}, 4),
			wantScore:  30,
			wantRating: RatingPoor,
			wantIssues: []Issue{IssueHighLatency, IssuePacketLoss},
		},
		{
			name:       "bandwidth bonus capped at 100",
			res:        result([]float64{10, 10}, 2),
			bandwidth:  150,
			wantScore:  100,
			wantRating: RatingExcellent,
		},
		{
			name:       "bandwidth bonus lifts a degraded score",
			res:        result([]float64{60, 60}, 2),
			bandwidth:  60,
			wantScore:  90,
			wantRating: RatingExcellent,
			wantIssues: []Issue{IssueHighLatency},
		},
		{
			name:       "unreachable short-circuits to zero",
			res:        probe.Result{Target: "test", Attempted: 4},
			wantScore:  0,
			wantRating: RatingPoor,
			wantIssues: []Issue{IssueUnreachable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(tt.res, tt.bandwidth)

			if got.Value != tt.wantScore {
				t.Errorf("Value = %d, want %d", got.Value, tt.wantScore)
			}
			if got.Rating != tt.wantRating {
				t.Errorf("Rating = %q, want %q", got.Rating, tt.wantRating)
			}
			if len(got.Issues) != len(tt.wantIssues) {
				t.Fatalf("Issues = %v, want %v", got.Issues, tt.wantIssues)
			}
			for i, issue := range tt.wantIssues {
				if got.Issues[i] != issue {
					t.Errorf("Issues[%d] = %q, want %q", i, got.Issues[i], issue)
				}
			}
		})
	}
}

func TestRatingBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Rating
	}{
		{100, RatingExcellent},
		{80, RatingExcellent},
		{79, RatingGood},
		{60, RatingGood},
		{59, RatingFair},
		{40, RatingFair},
		{39, RatingPoor},
		{0, RatingPoor},
	}

	for _, tt := range tests {
		if got := rate(tt.score); got != tt.want {
			t.Errorf("rate(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestHasIssue(t *testing.T) {
	s := Score{Issues: []Issue{IssueHighLatency}}
	if !s.HasIssue(IssueHighLatency) {
		t.Error("expected HasIssue(IssueHighLatency) to be true")
	}
	if s.HasIssue(IssuePacketLoss) {
		t.Error("expected HasIssue(IssuePacketLoss) to be false")
	}
}
