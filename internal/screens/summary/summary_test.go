package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/blitzquiz/internal/quiz"
	"github.com/abhisek/blitzquiz/internal/router"
	"github.com/abhisek/blitzquiz/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "Quiz" }

func testStats() quiz.Stats {
	return quiz.Stats{
		Score:       4,
		Total:       5,
		Percentage:  80,
		TotalTime:   75,
		AverageTime: 15,
		Fastest:     6,
		Slowest:     30,
		Times:       []int{6, 12, 30, 10, 17},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testStats(), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
	if s.Status() != "Score 4/5" {
		t.Errorf("Status = %q, want %q", s.Status(), "Score 4/5")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testStats(), func() screen.Screen { return &stubScreen{} })
	view := s.View(80, 30)

	for _, want := range []string{"80%", "4 out of 5 correct", "Excellent Work!", "1:15", "15s", "6s", "30s", "Try Again"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Retry(t *testing.T) {
	calls := 0
	next := &stubScreen{}
	s := New(testStats(), func() screen.Screen {
		calls++
		return next
	})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen != next {
		t.Error("expected the retried screen")
	}
	if calls != 1 {
		t.Errorf("retry called %d times, want 1", calls)
	}
}

func TestSummaryScreen_RetryOnlyOnce(t *testing.T) {
	calls := 0
	s := New(testStats(), func() screen.Screen {
		calls++
		return &stubScreen{}
	})

	_, first := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, second := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, third := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})

	if first == nil {
		t.Fatal("expected a command on the first Enter")
	}
	if second != nil || third != nil {
		t.Error("repeated retry presses should produce no command")
	}
	if calls != 1 {
		t.Errorf("retry called %d times, want 1", calls)
	}
}

func TestSummaryScreen_RetryKeyR(t *testing.T) {
	calls := 0
	s := New(testStats(), func() screen.Screen {
		calls++
		return &stubScreen{}
	})
	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if calls != 1 {
		t.Errorf("retry called %d times, want 1", calls)
	}
}

func TestSummaryScreen_RetryDisabled(t *testing.T) {
	s := New(testStats(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command when retry is disabled")
	}
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}

func TestSummaryScreen_Quit(t *testing.T) {
	s := New(testStats(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testStats(), func() screen.Screen { return &stubScreen{} })
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
