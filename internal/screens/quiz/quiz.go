package quiz

import (
	"errors"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	qz "github.com/abhisek/blitzquiz/internal/quiz"
	"github.com/abhisek/blitzquiz/internal/router"
	"github.com/abhisek/blitzquiz/internal/screen"
	"github.com/abhisek/blitzquiz/internal/ui/components"
	"github.com/abhisek/blitzquiz/internal/ui/layout"
)

const (
	tickInterval = time.Second
	maxToasts    = 3
)

// SummaryFactory builds the screen shown when an attempt completes. retry
// restarts the attempt and returns the quiz screen to show again.
type SummaryFactory func(stats qz.Stats, retry func() screen.Screen) screen.Screen

// Options configures a QuizScreen.
type Options struct {
	TimeLimit     int // seconds
	FeedbackDelay time.Duration
	ToastDuration time.Duration
	Summary       SummaryFactory
	Logger        zerolog.Logger
}

// QuizScreen drives a quiz.Controller from Bubble Tea messages.
type QuizScreen struct {
	ctrl    *qz.Controller
	choices components.ChoiceList
	toasts  *components.ToastStack
	keys    keyMap
	opts    Options
	log     zerolog.Logger

	// notifications raised by the controller during the current Update
	pending []qz.Notification

	// key of the live countdown chain; at most one chain runs per armed key
	chain     qz.Key
	chainLive bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ qz.Notifier = (*QuizScreen)(nil)

// New creates a QuizScreen over questions.
func New(questions []qz.Question, opts Options) (*QuizScreen, error) {
	if opts.TimeLimit == 0 {
		opts.TimeLimit = qz.DefaultTimeLimit
	}
	if opts.FeedbackDelay < 0 {
		opts.FeedbackDelay = 0
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 2 * time.Second
	}

	s := &QuizScreen{
		toasts: components.NewToastStack(maxToasts),
		keys:   newKeyMap(),
		opts:   opts,
		log:    opts.Logger.With().Str("component", "quiz_screen").Logger(),
	}
	ctrl, err := qz.New(questions, s, qz.WithTimeLimit(opts.TimeLimit), qz.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	s.resetChoices()
	return s, nil
}

// Controller exposes the underlying controller.
func (s *QuizScreen) Controller() *qz.Controller {
	return s.ctrl
}

// Notify buffers a controller notification until the end of the update.
func (s *QuizScreen) Notify(n qz.Notification) {
	s.pending = append(s.pending, n)
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.startCountdown()
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	st := s.ctrl.State()
	return statusLine(st.CurrentIndex, s.ctrl.QuestionCount(), st.Score)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.ctrl.State().Answered {
		return []layout.KeyHint{{Key: "…", Description: "Next question"}}
	}
	return layout.HintsFor(s.keys.Up, s.keys.Number, s.keys.Pick, s.keys.Submit)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s, s.handleTick(msg.key)
	case advanceMsg:
		return s, s.handleAdvance(msg.key)
	case toastExpiredMsg:
		s.toasts.Dismiss(msg.id)
		return s, nil
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Up):
		s.choices = s.choices.Up()
	case key.Matches(msg, s.keys.Down):
		s.choices = s.choices.Down()
	case key.Matches(msg, s.keys.Pick):
		s.selectOption(s.choices.Cursor)
	case key.Matches(msg, s.keys.Number):
		s.selectOption(int(msg.String()[0] - '1'))
	case key.Matches(msg, s.keys.Submit):
		return s.submit()
	}
	return nil
}

func (s *QuizScreen) selectOption(i int) {
	q := s.ctrl.Current()
	if i < 0 || i >= len(q.Options) {
		return
	}
	s.ctrl.SelectAnswer(q.Options[i])
	s.choices = s.choices.Choose(i)
}

func (s *QuizScreen) submit() tea.Cmd {
	_, err := s.ctrl.SubmitAnswer(false)
	switch {
	case err == nil:
		return tea.Batch(s.lock(), s.flush())
	case qz.IsValidation(err):
		return s.flush()
	case errors.Is(err, qz.ErrLocked):
		return nil
	default:
		s.log.Error().Err(err).Msg("submit failed")
		return nil
	}
}

func (s *QuizScreen) handleTick(k qz.Key) tea.Cmd {
	res := s.ctrl.Tick(k)
	if res != qz.TickCounted && s.chainLive && k == s.chain {
		s.chainLive = false
	}
	switch res {
	case qz.TickCounted:
		return tickAfter(k)
	case qz.TickTimedOut:
		return tea.Batch(s.lock(), s.flush())
	default:
		return nil
	}
}

func (s *QuizScreen) handleAdvance(k qz.Key) tea.Cmd {
	if !s.ctrl.Advance(k) {
		return nil
	}
	if !s.ctrl.State().Completed {
		s.resetChoices()
		return s.startCountdown()
	}

	stats, err := s.ctrl.Stats()
	if err != nil {
		s.log.Error().Err(err).Msg("stats unavailable after completion")
		return nil
	}
	if s.opts.Summary == nil {
		return tea.Quit
	}
	next := s.opts.Summary(stats, s.retry)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// retry starts a new attempt; the router calls Init again to restart the
// countdown.
func (s *QuizScreen) retry() screen.Screen {
	s.ctrl.Retry()
	s.toasts.Clear()
	s.pending = nil
	s.resetChoices()
	return s
}

// lock reveals the answer and schedules the advance for the locked question.
func (s *QuizScreen) lock() tea.Cmd {
	q := s.ctrl.Current()
	s.choices.Revealed = true
	s.choices.Correct = q.OptionIndex(q.Correct)
	s.keys.setLocked(true)

	k := s.ctrl.Key()
	return tea.Tick(s.opts.FeedbackDelay, func(time.Time) tea.Msg {
		return advanceMsg{key: k}
	})
}

// startCountdown starts the tick chain for the armed question. It returns nil
// when a chain for that key is already running.
func (s *QuizScreen) startCountdown() tea.Cmd {
	k := s.ctrl.Key()
	if s.chainLive && s.chain == k {
		return nil
	}
	s.chain, s.chainLive = k, true
	return tickAfter(k)
}

func tickAfter(k qz.Key) tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{key: k}
	})
}

// flush turns buffered notifications into toasts with expiry timers.
func (s *QuizScreen) flush() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range s.pending {
		id := s.toasts.Push(toastLevel(n.Level), n.Title, n.Detail)
		cmds = append(cmds, tea.Tick(s.opts.ToastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *QuizScreen) resetChoices() {
	s.choices = components.NewChoiceList(s.ctrl.Current().Options)
	s.keys.setLocked(false)
}

func toastLevel(l qz.Level) components.ToastLevel {
	switch l {
	case qz.LevelSuccess:
		return components.ToastSuccess
	case qz.LevelWarning:
		return components.ToastWarning
	case qz.LevelError:
		return components.ToastError
	default:
		return components.ToastInfo
	}
}
