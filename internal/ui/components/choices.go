package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/blitzquiz/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// ChoiceList renders answer options. Cursor is the highlighted row; Chosen is
// the row marked as the current selection (-1 for none). Once Revealed, the
// correct row is shown in green and a wrong chosen row in red.
type ChoiceList struct {
	Options  []string
	Cursor   int
	Chosen   int
	Revealed bool
	Correct  int
}

// NewChoiceList creates a list with the cursor on the first option and
// nothing chosen.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options: options,
		Chosen:  -1,
		Correct: -1,
	}
}

// Up moves the cursor one row up.
func (c ChoiceList) Up() ChoiceList {
	if c.Cursor > 0 {
		c.Cursor--
	}
	return c
}

// Down moves the cursor one row down.
func (c ChoiceList) Down() ChoiceList {
	if c.Cursor < len(c.Options)-1 {
		c.Cursor++
	}
	return c
}

// Choose marks row i as chosen and moves the cursor there. Out-of-range rows
// are ignored.
func (c ChoiceList) Choose(i int) ChoiceList {
	if i < 0 || i >= len(c.Options) {
		return c
	}
	c.Cursor = i
	c.Chosen = i
	return c
}

// View renders the options, one per line.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		label := fmt.Sprint(i + 1)
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}

		prefix := "  "
		if i == c.Cursor && !c.Revealed {
			prefix = "▸ "
		}
		mark := "( )"
		if i == c.Chosen {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		var style lipgloss.Style
		switch {
		case c.Revealed && i == c.Correct:
			style = theme.Correct
		case c.Revealed && i == c.Chosen:
			style = theme.Incorrect
		case c.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
