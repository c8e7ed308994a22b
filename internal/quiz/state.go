package quiz

import "slices"

// Phase is the controller's position in the question/answer cycle.
type Phase int

const (
	PhaseUnlocked  Phase = iota // timer running, accepting input
	PhaseLocked                 // answer fixed, feedback on display
	PhaseCompleted              // all questions locked
)

func (p Phase) String() string {
	switch p {
	case PhaseUnlocked:
		return "unlocked"
	case PhaseLocked:
		return "locked"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Outcome records how the most recent question was locked.
type Outcome struct {
	Index    int
	Selected string
	Correct  bool
	TimedOut bool
	Taken    int // seconds consumed before the lock
}

// State is the mutable record of one attempt. Selected is empty when no option
// has been chosen for the current question.
type State struct {
	AttemptID        string
	CurrentIndex     int
	Selected         string
	Score            int
	Answered         bool
	TimeRemaining    int
	TimerActive      bool
	TotalTimeSpent   int
	PerQuestionTimes []int
	Completed        bool

	// LastOutcome is set on every lock and kept until the next one.
	LastOutcome *Outcome
}

// Phase derives the machine phase from the flags.
func (s State) Phase() Phase {
	switch {
	case s.Completed:
		return PhaseCompleted
	case s.Answered:
		return PhaseLocked
	default:
		return PhaseUnlocked
	}
}

// HasSelection reports whether an option is chosen for the current question.
func (s State) HasSelection() bool {
	return s.Selected != ""
}

func (s State) clone() State {
	c := s
	c.PerQuestionTimes = slices.Clone(s.PerQuestionTimes)
	if s.LastOutcome != nil {
		o := *s.LastOutcome
		c.LastOutcome = &o
	}
	return c
}

// Key identifies the armed question a scheduled callback belongs to. Drivers
// capture the key when scheduling a tick or an advance and hand it back; the
// controller drops callbacks whose key is no longer current.
type Key struct {
	Attempt int
	Index   int
}

// TickResult reports what a tick did.
type TickResult int

const (
	TickIgnored  TickResult = iota // stale key or timer not running
	TickCounted                    // one second consumed, timer still running
	TickTimedOut                   // last second consumed, question locked
)
