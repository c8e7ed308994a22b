package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/blitzquiz/internal/screen"
)

type pingMsg struct{}

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan int
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestNewDoesNotInit(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	if r.Active() != s1 {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
	if s1.initRan != 0 {
		t.Error("New should leave Init() to the caller")
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if s2.initRan != 1 {
		t.Errorf("expected Init() once on replaced screen, got %d", s2.initRan)
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if s2.initRan != 1 {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
	if s1.updates != 0 {
		t.Error("navigation messages should not reach the outgoing screen")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Update(pingMsg{})
	r.Update(pingMsg{})

	if s1.updates != 2 {
		t.Errorf("expected 2 forwarded updates, got %d", s1.updates)
	}
}

func TestViewRendersActive(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	if got := r.View(80, 24); got != "first" {
		t.Errorf("View = %q, want %q", got, "first")
	}

	empty := New(nil)
	if got := empty.View(80, 24); got != "" {
		t.Errorf("View with no screen = %q, want empty", got)
	}
	if cmd := empty.Update(pingMsg{}); cmd != nil {
		t.Error("Update with no screen should do nothing")
	}
}
