package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestChoiceListNavigation(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c", "d"})
	if c.Cursor != 0 || c.Chosen != -1 {
		t.Fatalf("unexpected initial state: cursor=%d chosen=%d", c.Cursor, c.Chosen)
	}

	c = c.Up()
	if c.Cursor != 0 {
		t.Errorf("cursor should stay at top, got %d", c.Cursor)
	}
	c = c.Down().Down().Down().Down()
	if c.Cursor != 3 {
		t.Errorf("cursor should stop at bottom, got %d", c.Cursor)
	}
}

func TestChoiceListChoose(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c", "d"})
	c = c.Choose(2)
	if c.Chosen != 2 || c.Cursor != 2 {
		t.Errorf("expected row 2 chosen, got chosen=%d cursor=%d", c.Chosen, c.Cursor)
	}
	c = c.Choose(7)
	if c.Chosen != 2 {
		t.Errorf("out-of-range choose should be ignored, got %d", c.Chosen)
	}
}

func TestChoiceListView(t *testing.T) {
	c := NewChoiceList([]string{"Paris", "Rome"}).Choose(1)
	view := c.View()
	for _, want := range []string{"A)  Paris", "B)  Rome", "(•)", "▸"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	c.Revealed = true
	c.Correct = 0
	if strings.Contains(c.View(), "▸") {
		t.Error("cursor should be hidden once revealed")
	}
}

func TestProgressBarWidth(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
	}{
		{"empty", 0},
		{"half", 0.5},
		{"full", 1},
		{"overflow", 1.5},
		{"negative", -0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewProgressBar("", tt.percent, 40)
			if w := lipgloss.Width(bar.View()); w != 40 {
				t.Errorf("width = %d, want 40", w)
			}
		})
	}
}

func TestProgressBarSuffix(t *testing.T) {
	bar := NewProgressBar("Time", 0.3, 50)
	bar.Suffix = "0:09"
	bar.Low = true
	view := bar.View()
	if !strings.Contains(view, "Time") || !strings.Contains(view, "0:09") {
		t.Errorf("expected label and suffix in %q", view)
	}
}

func TestToastStackPushDismiss(t *testing.T) {
	s := NewToastStack(2)
	a := s.Push(ToastWarning, "first", "")
	b := s.Push(ToastSuccess, "second", "ok")
	if a == b {
		t.Fatal("toast ids must be unique")
	}

	s.Dismiss(a)
	if s.Len() != 1 || s.Toasts()[0].ID != b {
		t.Errorf("expected only %d left, got %+v", b, s.Toasts())
	}

	s.Dismiss(a)
	if s.Len() != 1 {
		t.Error("dismissing twice should be a no-op")
	}
}

func TestToastStackDropsOldest(t *testing.T) {
	s := NewToastStack(2)
	s.Push(ToastInfo, "one", "")
	s.Push(ToastInfo, "two", "")
	s.Push(ToastInfo, "three", "")

	got := s.Toasts()
	if len(got) != 2 || got[0].Title != "two" || got[1].Title != "three" {
		t.Errorf("unexpected toasts %+v", got)
	}
}

func TestToastStackView(t *testing.T) {
	s := NewToastStack(3)
	if s.View(60) != "" {
		t.Error("empty stack should render nothing")
	}
	s.Push(ToastError, "Time's up!", "The correct answer was Au")
	if !strings.Contains(s.View(60), "Time's up!") {
		t.Error("expected toast title in view")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Error("expected empty stack after Clear")
	}
}

func TestCardAndButton(t *testing.T) {
	if !strings.Contains(Card("hello", 30), "hello") {
		t.Error("card should contain its content")
	}
	if !strings.Contains(Button("Try Again", true, 20), "▸ Try Again") {
		t.Error("selected button should carry the cursor")
	}
	if w := ContentWidth(200); w != 64 {
		t.Errorf("ContentWidth(200) = %d, want 64", w)
	}
	if w := ContentWidth(10); w != 20 {
		t.Errorf("ContentWidth(10) = %d, want 20", w)
	}
}
