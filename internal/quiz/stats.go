package quiz

import (
	"fmt"
	"math"
	"slices"
)

// Stats holds the derived statistics of a completed attempt. Times are in
// seconds.
type Stats struct {
	Score       int
	Total       int
	Percentage  float64
	TotalTime   int
	AverageTime int
	Fastest     int
	Slowest     int
	Times       []int
}

func computeStats(score, total, totalTime int, times []int) Stats {
	if len(times) == 0 {
		panic("quiz: statistics of a completed attempt with no recorded times")
	}
	return Stats{
		Score:       score,
		Total:       total,
		Percentage:  float64(score) / float64(total) * 100,
		TotalTime:   totalTime,
		AverageTime: int(math.Round(float64(totalTime) / float64(total))),
		Fastest:     slices.Min(times),
		Slowest:     slices.Max(times),
		Times:       slices.Clone(times),
	}
}

// Passed reports whether the attempt reached the 60% mark.
func (s Stats) Passed() bool {
	return s.Percentage >= 60
}

// Verdict returns the closing message for a percentage score.
func Verdict(percentage float64) string {
	switch {
	case percentage >= 100:
		return "Perfect Score! You're Amazing!"
	case percentage >= 80:
		return "Excellent Work! Almost Perfect!"
	case percentage >= 60:
		return "Good Job! Keep Learning!"
	default:
		return "Keep Practicing! You'll Get Better!"
	}
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
