// Package plain runs the quiz as a line-oriented conversation on a reader and
// writer, for terminals that cannot host the TUI.
package plain

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/blitzquiz/internal/quiz"
)

// Options configures a Runner.
type Options struct {
	TimeLimit     int           // seconds per question
	TickInterval  time.Duration // wall time of one countdown second
	FeedbackDelay time.Duration
	Logger        zerolog.Logger
}

// Runner drives a quiz.Controller from input lines. Only the Run loop touches
// the controller.
type Runner struct {
	in   io.Reader
	out  io.Writer
	ctrl *quiz.Controller
	opts Options
	log  zerolog.Logger
}

var _ quiz.Notifier = (*Runner)(nil)

// New creates a Runner over questions.
func New(in io.Reader, out io.Writer, questions []quiz.Question, opts Options) (*Runner, error) {
	if opts.TimeLimit == 0 {
		opts.TimeLimit = quiz.DefaultTimeLimit
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.FeedbackDelay < 0 {
		opts.FeedbackDelay = 0
	}

	r := &Runner{
		in:   in,
		out:  out,
		opts: opts,
		log:  opts.Logger.With().Str("component", "plain").Logger(),
	}
	ctrl, err := quiz.New(questions, r, quiz.WithTimeLimit(opts.TimeLimit), quiz.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}
	r.ctrl = ctrl
	return r, nil
}

// Controller exposes the underlying controller.
func (r *Runner) Controller() *quiz.Controller {
	return r.ctrl
}

// Notify prints a notification as one line.
func (r *Runner) Notify(n quiz.Notification) {
	line := fmt.Sprintf("[%s] %s", n.Level, n.Title)
	if n.Detail != "" {
		line += " " + n.Detail
	}
	r.printf("%s\n", line)
}

// Run plays attempts until the input declines a retry, the input ends after a
// completed attempt, or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go scanLines(ctx, r.in, lines)

	ticker := time.NewTicker(r.opts.TickInterval)
	defer ticker.Stop()

	var (
		advanceC   <-chan time.Time
		advanceKey quiz.Key
		inputOpen  = true
	)

	// schedule arms the post-lock advance and pauses input until it fires.
	schedule := func() {
		advanceKey = r.ctrl.Key()
		advanceC = time.After(r.opts.FeedbackDelay)
	}

	r.printQuestion()

	for {
		// Input typed during feedback waits for the next question.
		var input <-chan string
		if inputOpen && advanceC == nil {
			input = lines
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-input:
			if !ok {
				inputOpen = false
				if r.ctrl.State().Completed {
					return nil
				}
				continue
			}
			switch r.handleLine(strings.TrimSpace(line)) {
			case lineQuit:
				return nil
			case lineLocked:
				schedule()
			case lineRestarted:
				ticker.Reset(r.opts.TickInterval)
			}

		case <-ticker.C:
			switch r.ctrl.Tick(r.ctrl.Key()) {
			case quiz.TickTimedOut:
				schedule()
			case quiz.TickCounted:
				if rem := r.ctrl.State().TimeRemaining; rem == 10 || rem == 5 {
					r.printf("  %d seconds left\n", rem)
				}
			}

		case <-advanceC:
			advanceC = nil
			if !r.ctrl.Advance(advanceKey) {
				continue
			}
			if !r.ctrl.State().Completed {
				ticker.Reset(r.opts.TickInterval)
				r.printQuestion()
				continue
			}
			if err := r.printSummary(); err != nil {
				return err
			}
			if !inputOpen {
				return nil
			}
			r.printf("Play again? [y/N] ")
		}
	}
}

type lineResult int

const (
	lineHandled lineResult = iota
	lineLocked
	lineRestarted
	lineQuit
)

// handleLine applies one input line to the controller.
func (r *Runner) handleLine(line string) lineResult {
	if r.ctrl.State().Completed {
		if !strings.EqualFold(line, "y") {
			return lineQuit
		}
		r.ctrl.Retry()
		r.printf("\n")
		r.printQuestion()
		return lineRestarted
	}

	if line == "" {
		if _, err := r.ctrl.SubmitAnswer(false); err != nil {
			r.log.Debug().Err(err).Msg("submit rejected")
			return lineHandled
		}
		return lineLocked
	}

	q := r.ctrl.Current()
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(q.Options) {
		r.printf("  Enter 1-%d to choose, or an empty line to submit\n", len(q.Options))
		return lineHandled
	}
	r.ctrl.SelectAnswer(q.Options[n-1])
	r.printf("  Selected: %s\n", q.Options[n-1])
	return lineHandled
}

func (r *Runner) printQuestion() {
	st := r.ctrl.State()
	q := r.ctrl.Current()
	r.printf("Question %d of %d (%ds, score %d)\n", st.CurrentIndex+1, r.ctrl.QuestionCount(), st.TimeRemaining, st.Score)
	r.printf("%s\n", q.Prompt)
	for i, opt := range q.Options {
		r.printf("  %d) %s\n", i+1, opt)
	}
}

func (r *Runner) printSummary() error {
	stats, err := r.ctrl.Stats()
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	r.printf("\nQuiz Complete!\n")
	r.printf("Score: %d/%d (%.0f%%)\n", stats.Score, stats.Total, stats.Percentage)
	r.printf("%s\n", quiz.Verdict(stats.Percentage))
	r.printf("Total time: %s  Average: %ds  Fastest: %ds  Slowest: %ds\n",
		quiz.FormatClock(stats.TotalTime), stats.AverageTime, stats.Fastest, stats.Slowest)
	return nil
}

func (r *Runner) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		r.log.Warn().Err(err).Msg("write failed")
	}
}

// scanLines forwards lines from in until EOF or cancellation, then closes out.
func scanLines(ctx context.Context, in io.Reader, out chan<- string) {
	defer close(out)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case out <- sc.Text():
		case <-ctx.Done():
			return
		}
	}
}
