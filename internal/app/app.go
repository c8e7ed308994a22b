package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/blitzquiz/internal/config"
	"github.com/abhisek/blitzquiz/internal/quiz"
	"github.com/abhisek/blitzquiz/internal/router"
	"github.com/abhisek/blitzquiz/internal/screen"
	quizscreen "github.com/abhisek/blitzquiz/internal/screens/quiz"
	"github.com/abhisek/blitzquiz/internal/screens/summary"
	"github.com/abhisek/blitzquiz/internal/screens/welcome"
	"github.com/abhisek/blitzquiz/internal/ui/layout"
	"github.com/abhisek/blitzquiz/internal/ui/theme"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Questions []quiz.Question
	Config    config.Config
	Logger    zerolog.Logger

	// SkipWelcome starts directly on the quiz screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    zerolog.Logger
	width  int
	height int
}

// newAppModel creates an AppModel starting on the welcome screen.
func newAppModel(opts Options) (AppModel, error) {
	theme.Apply(theme.ParseMode(opts.Config.UI.Theme))

	qs, err := quizscreen.New(opts.Questions, quizscreen.Options{
		TimeLimit:     opts.Config.TimeLimitSeconds(),
		FeedbackDelay: opts.Config.Quiz.FeedbackDelay.Std(),
		ToastDuration: opts.Config.Quiz.ToastDuration.Std(),
		Summary: func(stats quiz.Stats, retry func() screen.Screen) screen.Screen {
			return summary.New(stats, retry)
		},
		Logger: opts.Logger,
	})
	if err != nil {
		return AppModel{}, fmt.Errorf("create quiz screen: %w", err)
	}

	var initial screen.Screen = qs
	if !opts.SkipWelcome {
		initial = welcome.New(func() screen.Screen { return qs }, len(opts.Questions), opts.Config.TimeLimitSeconds())
	}

	return AppModel{
		router: router.New(initial),
		log:    opts.Logger,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			mode := theme.Current().Toggle()
			theme.Apply(mode)
			m.log.Debug().Str("theme", mode.String()).Msg("theme toggled")
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, kp.KeyHints()...)
	} else if active != nil {
		hints = append(hints, layout.KeyHint{Key: "any key", Description: "Start"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+T", Description: "Theme"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	opts.Logger.Info().Int("questions", len(opts.Questions)).Msg("starting tui")
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
