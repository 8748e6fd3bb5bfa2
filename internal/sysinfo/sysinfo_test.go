package sysinfo

import "testing"

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "0m"},
		{59, "0m"},
		{60, "1m"},
		{3600, "1h 0m"},
		{3661, "1h 1m"},
		{86400, "1d 0h 0m"},
		{90061, "1d 1h 1m"},
		{300000, "3d 11h 20m"},
	}

	for _, tt := range tests {
		if got := formatUptime(tt.seconds); got != tt.want {
			t.Errorf("formatUptime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestBusy(t *testing.T) {
	tests := []struct {
		name string
		host Host
		want bool
	}{
		{"idle", Host{CPUUsage: 10, RAMUsage: 30}, false},
		{"cpu saturated", Host{CPUUsage: 85, RAMUsage: 30}, true},
		{"ram exhausted", Host{CPUUsage: 10, RAMUsage: 95}, true},
		{"just below thresholds", Host{CPUUsage: 79.9, RAMUsage: 89.9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.host.Busy(); got != tt.want {
				t.Errorf("Busy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	if got := round2(12.3456); got != 12.35 {
		t.Errorf("round2(12.3456) = %v, want 12.35", got)
	}
	if got := round2(0); got != 0 {
		t.Errorf("round2(0) = %v, want 0", got)
	}
}

func TestCollectDoesNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Collect panicked: %v", r)
		}
	}()

	h := Collect()
	if h.OS == "" {
		t.Error("Collect returned empty OS")
	}
	t.Logf("host: %+v", h)
}
