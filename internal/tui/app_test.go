package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/wordle-demo/internal/config"
	"github.com/f3rmion/wordle-demo/internal/wordle"
	"github.com/rs/zerolog"
)

type stubAPI struct{}

func (stubAPI) WordOfDay(context.Context) (wordle.WordOfDay, error) {
	return wordle.WordOfDay{Solution: "crane"}, nil
}

func (stubAPI) WordForDate(context.Context, time.Time) (wordle.WordOfDay, error) {
	return wordle.WordOfDay{}, context.Canceled
}

func (stubAPI) Valid(context.Context, string) (wordle.ValidityResult, error) {
	return wordle.ValidityResult{Valid: true}, nil
}

func (stubAPI) Check(context.Context, string) (wordle.CheckResult, error) {
	return wordle.CheckResult{}, nil
}

func newTestApp() AppModel {
	app := NewApp(stubAPI{}, Options{Config: config.Default(), Logger: zerolog.Nop()})
	tm, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return tm.(AppModel)
}

func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	tm, cmd := m.Update(msg)
	return tm.(AppModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDigitsTypeIntoPlayView(t *testing.T) {
	m := newTestApp()

	m, _ = send(m, runes("2"))
	if m.currentView != ViewPlay {
		t.Fatalf("digit must not switch views while the play view has focus")
	}
}

func TestSidebarNavigation(t *testing.T) {
	m := newTestApp()

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.sidebarActive {
		t.Fatalf("expected esc to focus sidebar")
	}

	m, _ = send(m, runes("2"))
	if m.currentView != ViewSettings || m.sidebarActive {
		t.Fatalf("expected settings view with content focus")
	}
	if !strings.Contains(m.View(), "Wordle Demo Configuration") {
		t.Fatalf("expected settings content")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentView != ViewPlay {
		t.Fatalf("expected play view after selecting first item")
	}
}

func TestEscTwiceQuits(t *testing.T) {
	m := newTestApp()

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestApp()

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyF1})
	if !m.showHelp || !strings.Contains(m.View(), "ctrl+y") {
		t.Fatalf("expected help overlay listing keys")
	}
	m, _ = send(m, runes("x"))
	if m.showHelp {
		t.Fatalf("expected any key to close help")
	}
}

func TestSafeModelWrapsApp(t *testing.T) {
	s := wrapSafe(newTestApp(), zerolog.Nop())
	tm, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm, ok := tm.(safeModel)
	if !ok || !sm.m.sidebarActive {
		t.Fatalf("expected wrapped update to reach the app")
	}
	if !strings.Contains(sm.View(), "Play") {
		t.Fatalf("expected sidebar in view")
	}
}
