package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/blitzquiz/internal/quiz"
	"github.com/abhisek/blitzquiz/internal/router"
	"github.com/abhisek/blitzquiz/internal/screen"
	"github.com/abhisek/blitzquiz/internal/ui/components"
	"github.com/abhisek/blitzquiz/internal/ui/layout"
	"github.com/abhisek/blitzquiz/internal/ui/theme"
)

type keyMap struct {
	Retry key.Binding
	Quit  key.Binding
}

// SummaryScreen displays the statistics of a completed attempt.
type SummaryScreen struct {
	stats quiz.Stats
	retry func() screen.Screen
	keys  keyMap

	// set once retry has been requested; later presses are dropped
	retried bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. retry restarts the quiz and returns the screen
// to show; a nil retry disables the retry key.
func New(stats quiz.Stats, retry func() screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		stats: stats,
		retry: retry,
		keys: keyMap{
			Retry: key.NewBinding(
				key.WithKeys("enter", "r"),
				key.WithHelp("Enter", "Try again"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("Q", "Quit"),
			),
		},
	}
	s.keys.Retry.SetEnabled(retry != nil)
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) Status() string {
	return fmt.Sprintf("Score %d/%d", s.stats.Score, s.stats.Total)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFor(s.keys.Retry, s.keys.Quit)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, s.keys.Retry):
		return s, s.startRetry()
	case key.Matches(kmsg, s.keys.Quit):
		return s, tea.Quit
	}
	return s, nil
}

func (s *SummaryScreen) startRetry() tea.Cmd {
	if s.retried {
		return nil
	}
	s.retried = true
	s.keys.Retry.SetEnabled(false)
	next := s.retry()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.stats
	cw := components.ContentWidth(width)

	scoreColor := theme.Error
	if st.Passed() {
		scoreColor = theme.Success
	}

	var card strings.Builder
	card.WriteString(theme.Title.Render("Quiz Complete!"))
	card.WriteString("\n\n")
	card.WriteString(lipgloss.NewStyle().
		Foreground(scoreColor).
		Bold(true).
		Render(fmt.Sprintf("%.0f%%", st.Percentage)))
	card.WriteString("\n")
	card.WriteString(theme.Body.Render(fmt.Sprintf("%d out of %d correct", st.Score, st.Total)))
	card.WriteString("\n\n")
	card.WriteString(theme.Subtitle.Render(quiz.Verdict(st.Percentage)))
	card.WriteString("\n\n")
	card.WriteString(renderTimes(st))

	var b strings.Builder
	b.WriteString(components.Card(card.String(), cw))
	b.WriteString("\n\n")
	if s.retry != nil {
		b.WriteString(components.Button("Try Again", true, 20))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, b.String()))
}

func renderTimes(st quiz.Stats) string {
	rows := [][2]string{
		{"Total time", quiz.FormatClock(st.TotalTime)},
		{"Average", fmt.Sprintf("%ds", st.AverageTime)},
		{"Fastest", fmt.Sprintf("%ds", st.Fastest)},
		{"Slowest", fmt.Sprintf("%ds", st.Slowest)},
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	lines := make([]string, 0, len(rows)+2)
	for _, r := range rows {
		lines = append(lines, label.Render(r[0])+value.Render(r[1]))
	}

	per := make([]string, len(st.Times))
	for i, t := range st.Times {
		per[i] = fmt.Sprintf("Q%d %ds", i+1, t)
	}
	lines = append(lines, "", theme.Hint.Render(strings.Join(per, "  ")))
	return strings.Join(lines, "\n")
}
