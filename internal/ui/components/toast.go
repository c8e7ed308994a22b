package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/blitzquiz/internal/ui/theme"
)

// ToastLevel selects a toast's color.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Toast is a transient message shown above the screen content.
type Toast struct {
	ID     int
	Level  ToastLevel
	Title  string
	Detail string
}

// ToastStack holds the visible toasts, newest last.
type ToastStack struct {
	toasts []Toast
	nextID int
	limit  int
}

// NewToastStack creates a stack showing at most limit toasts.
func NewToastStack(limit int) *ToastStack {
	if limit < 1 {
		limit = 1
	}
	return &ToastStack{limit: limit}
}

// Push adds a toast and returns its id. The oldest toast is dropped when the
// stack is full.
func (s *ToastStack) Push(level ToastLevel, title, detail string) int {
	s.nextID++
	s.toasts = append(s.toasts, Toast{ID: s.nextID, Level: level, Title: title, Detail: detail})
	if len(s.toasts) > s.limit {
		s.toasts = s.toasts[len(s.toasts)-s.limit:]
	}
	return s.nextID
}

// Dismiss removes the toast with id, if still shown.
func (s *ToastStack) Dismiss(id int) {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Clear removes every toast.
func (s *ToastStack) Clear() {
	s.toasts = nil
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// Toasts returns the visible toasts, oldest first.
func (s *ToastStack) Toasts() []Toast {
	return append([]Toast(nil), s.toasts...)
}

// View renders the stack centered in width.
func (s *ToastStack) View(width int) string {
	if len(s.toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		text := t.Title
		if t.Detail != "" {
			text += "  " + t.Detail
		}
		box := lipgloss.NewStyle().
			Foreground(toastColor(t.Level)).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(toastColor(t.Level)).
			Padding(0, 1).
			Render(text)
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	}
	return strings.Join(lines, "\n")
}

func toastColor(l ToastLevel) color.Color {
	switch l {
	case ToastSuccess:
		return theme.Success
	case ToastWarning:
		return theme.Warning
	case ToastError:
		return theme.Error
	default:
		return theme.Secondary
	}
}
