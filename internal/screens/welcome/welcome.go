package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/blitzquiz/internal/router"
	"github.com/abhisek/blitzquiz/internal/screen"
	"github.com/abhisek/blitzquiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 300 * time.Millisecond
	phase2End    = 800 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

const stopwatchArt = `     ┌─┐
  ╭──┴─┴──╮
 ╱    │    ╲
│     ●     │
│      ╲    │
 ╲         ╱
  ╰───────╯`

// spark frames blink beside the stopwatch
var sparkFrames = []string{"⚡", " "}

type tickMsg time.Time

// WelcomeScreen shows a short splash before the quiz starts.
type WelcomeScreen struct {
	quizFactory  func() screen.Screen
	questions    int
	timeLimit    int
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that transitions to the screen produced by
// quizFactory. questions and timeLimit only feed the tagline.
func New(quizFactory func() screen.Screen, questions, timeLimit int) *WelcomeScreen {
	return &WelcomeScreen{
		quizFactory: quizFactory,
		questions:   questions,
		timeLimit:   timeLimit,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.quizFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(stopwatchArt)

	if w.elapsed >= phase1End {
		spark := lipgloss.NewStyle().Foreground(theme.Accent).
			Render(sparkFrames[w.tickCount%len(sparkFrames)])

		lines := strings.Split(rendered, "\n")
		if len(lines) > 3 {
			lines[3] = spark + "  " + lines[3] + "  " + spark
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("%d questions. %d seconds each.", w.questions, w.timeLimit))
		sections = append(sections, tagline)
	}

	if w.elapsed >= totalDur {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to start")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
