package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/blitzquiz/internal/config"
	"github.com/abhisek/blitzquiz/internal/questionbank"
	"github.com/abhisek/blitzquiz/internal/ui/theme"
)

func testModel(t *testing.T, skipWelcome bool) AppModel {
	t.Helper()
	m, err := newAppModel(Options{
		Questions:   questionbank.Default(),
		Config:      config.Default(),
		SkipWelcome: skipWelcome,
	})
	if err != nil {
		t.Fatalf("newAppModel: %v", err)
	}
	return m
}

func resize(m AppModel, w, h int) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(AppModel)
}

func TestNewAppModelRejectsEmptyQuestions(t *testing.T) {
	if _, err := newAppModel(Options{Config: config.Default()}); err == nil {
		t.Error("expected error without questions")
	}
}

func TestStartsOnWelcome(t *testing.T) {
	m := testModel(t, false)
	if got := m.router.Active().Title(); got != "" {
		t.Errorf("expected welcome screen, got %q", got)
	}
	if m.Init() == nil {
		t.Error("expected welcome animation to start")
	}
}

func TestSkipWelcome(t *testing.T) {
	m := testModel(t, true)
	if got := m.router.Active().Title(); got != "Quiz" {
		t.Errorf("expected quiz screen, got %q", got)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t, true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestCtrlTTogglesTheme(t *testing.T) {
	m := testModel(t, true)
	before := theme.Current()
	m.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	if theme.Current() != before.Toggle() {
		t.Errorf("expected theme %v, got %v", before.Toggle(), theme.Current())
	}
	theme.Apply(before)
}

func TestViewShowsHeaderStatusAndFooter(t *testing.T) {
	m := resize(testModel(t, true), 100, 40)
	content := m.render()

	for _, want := range []string{"BlitzQuiz", "Q 1/5  Score 0", "Submit", "Theme"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m := resize(testModel(t, true), 40, 10)
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}
