package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/wordle-demo/internal/config"
	"github.com/f3rmion/wordle-demo/internal/tui/components"
	"github.com/samber/lo"
)

// Settings view styles
var (
	settingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B")).
				MarginBottom(1)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 2)

	settingsTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	settingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	settingsRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	settingsHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				MarginTop(1)
)

var settingsTabs = []string{"API", "Display", "Logging"}

// SettingsModel shows the effective configuration. It is read-only;
// changes go through the config file, flags or WORDLE_DEMO_* variables.
type SettingsModel struct {
	config     config.Config
	configPath string
	logPath    string

	tab int

	width  int
	height int
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(cfg config.Config, configPath, logPath string) SettingsModel {
	return SettingsModel{
		config:     cfg,
		configPath: configPath,
		logPath:    logPath,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % len(settingsTabs)
		case "shift+tab", "left", "h":
			m.tab--
			if m.tab < 0 {
				m.tab = len(settingsTabs) - 1
			}
		}
	}
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(settingsTitleStyle.Render("Wordle Demo Configuration"))
	b.WriteString("\n")

	path := m.configPath
	if path == "" {
		path = "(defaults)"
	}
	b.WriteString(settingsPathStyle.Render("Config: " + path))
	b.WriteString("\n\n")

	tabViews := lo.Map(settingsTabs, func(t string, i int) string {
		return lo.Ternary(i == m.tab, settingsTabActiveStyle, settingsTabStyle).Render(t)
	})
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#3d5a80")).Render(strings.Repeat("─", min(max(m.width-4, 10), 60))))
	b.WriteString("\n\n")

	var rows []components.Row
	switch m.tab {
	case 0:
		b.WriteString(settingsHeaderStyle.Render("Remote API"))
		rows = []components.Row{
			{Label: "Base URL", Value: m.config.API.BaseURL},
			{Label: "Timeout", Value: lo.Ternary(m.config.API.Timeout > 0, m.config.API.Timeout.String(), "none")},
			{Label: "Rate limit", Value: lo.Ternary(m.config.API.RateLimit > 0, fmt.Sprintf("%g req/s", m.config.API.RateLimit), "off")},
			{Label: "Burst", Value: fmt.Sprint(m.config.API.Burst)},
			{Label: "User agent", Value: lo.Ternary(m.config.API.UserAgent != "", m.config.API.UserAgent, "(default)")},
		}
	case 1:
		b.WriteString(settingsHeaderStyle.Render("Display"))
		rows = []components.Row{
			{Label: "Banner", Value: lo.Ternary(m.config.UI.Banner, "on", "off")},
			{Label: "Future max days", Value: lo.Ternary(m.config.Future.MaxDays > 0, fmt.Sprint(m.config.Future.MaxDays), "unlimited")},
		}
	case 2:
		b.WriteString(settingsHeaderStyle.Render("Logging"))
		rows = []components.Row{
			{Label: "Level", Value: m.config.Log.Level},
			{Label: "File", Value: lo.Ternary(m.logPath != "", m.logPath, "disabled")},
		}
	}
	b.WriteString("\n\n")
	b.WriteString(components.Card(rows, settingsMutedStyle, settingsRowStyle))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(settingsHelpStyle.Render("tab/←→: switch tabs • edit the config file or run 'wordle-demo init' to change"))

	return b.String()
}
