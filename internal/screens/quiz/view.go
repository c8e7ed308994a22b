package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/blitzquiz/internal/quiz"
	"github.com/abhisek/blitzquiz/internal/ui/components"
	"github.com/abhisek/blitzquiz/internal/ui/theme"
)

// lowTime is the remaining seconds at which the timer bar turns red.
const lowTime = 10

func statusLine(index, total, score int) string {
	return fmt.Sprintf("Q %d/%d  Score %d", index+1, total, score)
}

func (s *QuizScreen) View(width, height int) string {
	st := s.ctrl.State()
	q := s.ctrl.Current()
	cw := components.ContentWidth(width)

	var b strings.Builder

	if toasts := s.toasts.View(width); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}

	counter := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d", st.CurrentIndex+1, s.ctrl.QuestionCount()))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counter))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.timerBar(st, cw)))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	if st.Answered && st.LastOutcome != nil {
		b.WriteString("\n")
		b.WriteString(renderFeedback(*st.LastOutcome, q, width))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *QuizScreen) timerBar(st qz.State, width int) string {
	limit := s.ctrl.TimeLimit()
	bar := components.NewProgressBar("Time", float64(st.TimeRemaining)/float64(limit), width)
	bar.Suffix = qz.FormatClock(st.TimeRemaining)
	bar.Low = st.TimeRemaining <= lowTime
	return bar.View()
}

func renderFeedback(out qz.Outcome, q qz.Question, width int) string {
	var title string
	var style lipgloss.Style
	switch {
	case out.TimedOut:
		title, style = "Time's up!", theme.Incorrect
	case out.Correct:
		title, style = "Correct!", theme.Correct
	default:
		title, style = "Incorrect", theme.Incorrect
	}

	lines := []string{style.Render(title)}
	if !out.Correct {
		lines = append(lines, theme.Hint.Render("The correct answer was "+q.Correct))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}
