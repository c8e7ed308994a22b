package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTimeLimit is the per-question countdown in seconds.
const DefaultTimeLimit = 30

// Option configures a Controller.
type Option func(*Controller)

// WithTimeLimit sets the per-question countdown in whole seconds.
func WithTimeLimit(seconds int) Option {
	return func(c *Controller) { c.limit = seconds }
}

// WithLogger attaches a logger for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller runs one quiz: a fixed question list, a countdown per question,
// scoring and the final statistics. It is not safe for concurrent use; the
// driver serializes every call (Bubble Tea's update loop or the plain-mode run
// loop).
type Controller struct {
	questions []Question
	limit     int
	sink      Notifier
	log       zerolog.Logger

	attempt int
	state   State
}

// New builds a controller positioned on the first question with the timer
// armed. questions is not copied and must not be mutated afterwards.
func New(questions []Question, sink Notifier, opts ...Option) (*Controller, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	c := &Controller{
		questions: questions,
		limit:     DefaultTimeLimit,
		sink:      sink,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limit <= 0 {
		return nil, fmt.Errorf("invalid time limit %ds: must be positive", c.limit)
	}
	if c.sink == nil {
		c.sink = NotifierFunc(func(Notification) {})
	}
	c.reset()
	return c, nil
}

// State returns a copy of the attempt state.
func (c *Controller) State() State {
	return c.state.clone()
}

// Current returns the question at the current index.
func (c *Controller) Current() Question {
	return c.questions[c.state.CurrentIndex]
}

// QuestionCount returns the number of questions in an attempt.
func (c *Controller) QuestionCount() int {
	return len(c.questions)
}

// TimeLimit returns the per-question countdown in seconds.
func (c *Controller) TimeLimit() int {
	return c.limit
}

// Key returns the key of the currently armed question.
func (c *Controller) Key() Key {
	return Key{Attempt: c.attempt, Index: c.state.CurrentIndex}
}

// SelectAnswer records option for the current question. It is ignored once the
// question is locked.
func (c *Controller) SelectAnswer(option string) {
	if c.state.Answered || c.state.Completed {
		c.log.Debug().Str("option", option).Msg("selection ignored on locked question")
		return
	}
	c.state.Selected = option
}

// SubmitAnswer locks the current question. Without a selection a user submit
// fails with ErrNoAnswer and leaves the attempt untouched; a timeout submit
// always locks and always counts as incorrect.
func (c *Controller) SubmitAnswer(isTimeout bool) (Outcome, error) {
	if c.state.Answered || c.state.Completed {
		return Outcome{}, ErrLocked
	}
	if !isTimeout && !c.state.HasSelection() {
		c.sink.Notify(noAnswerNotification())
		return Outcome{}, ErrNoAnswer
	}

	q := c.Current()
	c.state.Answered = true
	c.state.TimerActive = false

	taken := c.limit - c.state.TimeRemaining
	c.state.PerQuestionTimes = append(c.state.PerQuestionTimes, taken)

	out := Outcome{
		Index:    c.state.CurrentIndex,
		Selected: c.state.Selected,
		Correct:  !isTimeout && q.IsCorrect(c.state.Selected),
		TimedOut: isTimeout,
		Taken:    taken,
	}
	c.state.LastOutcome = &out

	switch {
	case out.TimedOut:
		c.sink.Notify(timeUpNotification(q.Correct))
	case out.Correct:
		c.state.Score++
		c.sink.Notify(correctNotification())
	default:
		c.sink.Notify(incorrectNotification(q.Correct))
	}

	c.log.Debug().
		Str("attempt_id", c.state.AttemptID).
		Int("index", out.Index).
		Bool("correct", out.Correct).
		Bool("timed_out", out.TimedOut).
		Int("taken", taken).
		Int("score", c.state.Score).
		Msg("question locked")

	return out, nil
}

// Tick consumes one second of the question identified by k. When the last
// second runs out the question is submitted as a timeout.
func (c *Controller) Tick(k Key) TickResult {
	if k != c.Key() {
		return TickIgnored
	}
	if !c.state.TimerActive || c.state.Answered || c.state.Completed || c.state.TimeRemaining <= 0 {
		return TickIgnored
	}

	c.state.TimeRemaining--
	c.state.TotalTimeSpent++
	if c.state.TimeRemaining > 0 {
		return TickCounted
	}

	if _, err := c.SubmitAnswer(true); err != nil {
		// Unreachable: the guards above rule out a locked question.
		c.log.Error().Err(err).Msg("timeout submit failed")
		return TickIgnored
	}
	return TickTimedOut
}

// Advance moves past the locked question identified by k, either to the next
// question or to completion. It reports whether anything changed.
func (c *Controller) Advance(k Key) bool {
	if k != c.Key() || !c.state.Answered || c.state.Completed {
		return false
	}

	if c.state.CurrentIndex < len(c.questions)-1 {
		c.state.CurrentIndex++
		c.state.Selected = ""
		c.arm()
		return true
	}

	c.state.Completed = true
	c.state.TimerActive = false
	c.log.Info().
		Str("attempt_id", c.state.AttemptID).
		Int("score", c.state.Score).
		Int("questions", len(c.questions)).
		Int("total_time", c.state.TotalTimeSpent).
		Msg("attempt completed")
	return true
}

// Retry discards the attempt and starts a new one at the first question.
func (c *Controller) Retry() {
	c.attempt++
	c.reset()
}

// Stats computes the derived statistics of a completed attempt.
func (c *Controller) Stats() (Stats, error) {
	if !c.state.Completed {
		return Stats{}, ErrNotCompleted
	}
	return computeStats(c.state.Score, len(c.questions), c.state.TotalTimeSpent, c.state.PerQuestionTimes), nil
}

// reset replaces the state wholesale and arms the first question.
func (c *Controller) reset() {
	c.state = State{
		AttemptID:        uuid.NewString(),
		PerQuestionTimes: make([]int, 0, len(c.questions)),
	}
	c.arm()
	c.log.Info().
		Str("attempt_id", c.state.AttemptID).
		Int("questions", len(c.questions)).
		Int("time_limit", c.limit).
		Msg("attempt started")
}

// arm is the per-question reset and the only place the timer starts.
func (c *Controller) arm() {
	c.state.Answered = false
	c.state.TimeRemaining = c.limit
	c.state.TimerActive = true
}

// IsValidation reports whether err is a recoverable validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
