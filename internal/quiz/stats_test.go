package quiz

import (
	"testing"
)

func TestComputeStats(t *testing.T) {
	s := computeStats(3, 5, 62, []int{4, 30, 11, 9, 8})

	if s.Percentage != 60 {
		t.Errorf("Percentage = %v, want 60", s.Percentage)
	}
	// 62 / 5 = 12.4
	if s.AverageTime != 12 {
		t.Errorf("AverageTime = %d, want 12", s.AverageTime)
	}
	if s.Fastest != 4 || s.Slowest != 30 {
		t.Errorf("Fastest/Slowest = %d/%d, want 4/30", s.Fastest, s.Slowest)
	}
	if !s.Passed() {
		t.Error("expected 60% to pass")
	}
}

func TestComputeStats_RoundsHalfUp(t *testing.T) {
	// 12 / 8 = 1.5
	s := computeStats(0, 8, 12, []int{1, 1, 2, 2, 1, 1, 2, 2})
	if s.AverageTime != 2 {
		t.Errorf("AverageTime = %d, want 2", s.AverageTime)
	}
}

func TestComputeStats_PanicsOnEmptyTimes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty time list")
		}
	}()
	computeStats(0, 5, 0, nil)
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "Perfect Score! You're Amazing!"},
		{80, "Excellent Work! Almost Perfect!"},
		{60, "Good Job! Keep Learning!"},
		{40, "Keep Practicing! You'll Get Better!"},
		{0, "Keep Practicing! You'll Get Better!"},
	}
	for _, tt := range tests {
		if got := Verdict(tt.pct); got != tt.want {
			t.Errorf("Verdict(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{7, "0:07"},
		{30, "0:30"},
		{61, "1:01"},
		{150, "2:30"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
