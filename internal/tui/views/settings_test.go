package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/wordle-demo/internal/config"
)

func TestSettingsTabs(t *testing.T) {
	cfg := config.Default()
	cfg.API.Timeout = 5 * time.Second
	cfg.Future.MaxDays = 14

	m := NewSettingsModel(cfg, "/tmp/wordle-demo/config.yaml", "")
	m.SetSize(80, 30)

	view := m.View()
	for _, want := range []string{"/tmp/wordle-demo/config.yaml", cfg.API.BaseURL, "5s"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q on API tab", want)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "14") {
		t.Errorf("expected max days on display tab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "disabled") {
		t.Errorf("expected disabled log file on logging tab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != 0 {
		t.Fatalf("expected tabs to wrap, got %d", m.tab)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != 2 {
		t.Fatalf("expected shift+tab to wrap backwards, got %d", m.tab)
	}
}

func TestSettingsShowsActiveLogFile(t *testing.T) {
	m := NewSettingsModel(config.Default(), "", "/var/log/wordle-demo.log")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if !strings.Contains(m.View(), "/var/log/wordle-demo.log") {
		t.Fatalf("expected log path on logging tab")
	}
}
