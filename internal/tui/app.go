package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/wordle-demo/internal/config"
	"github.com/f3rmion/wordle-demo/internal/demo"
	"github.com/f3rmion/wordle-demo/internal/tui/views"
	"github.com/rs/zerolog"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewPlay ViewType = iota
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// Options carries what the app needs beyond the API client.
type Options struct {
	Config     config.Config
	ConfigPath string
	LogPath    string
	APIURL     string
	Logger     zerolog.Logger
}

// AppModel is the top-level TUI model: a sidebar plus the active view.
type AppModel struct {
	log zerolog.Logger

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	playView     views.WordleModel
	settingsView views.SettingsModel

	showHelp bool
	errText  string // set after a recovered panic
}

// NewApp creates the TUI application.
func NewApp(client demo.API, opts Options) AppModel {
	return AppModel{
		log:          opts.Logger,
		sidebarWidth: 18,
		currentView:  ViewPlay,
		menuItems: []MenuItem{
			{Label: "Play", View: ViewPlay, Shortcut: "1"},
			{Label: "Settings", View: ViewSettings, Shortcut: "2"},
		},

		playView: views.NewWordleModel(client, views.WordleOptions{
			Logger:      opts.Logger,
			FutureLimit: opts.Config.Future.MaxDays,
			Banner:      opts.Config.UI.Banner,
			APIURL:      opts.APIURL,
		}),
		settingsView: views.NewSettingsModel(opts.Config, opts.ConfigPath, opts.LogPath),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AppModel) switchTo(v ViewType) AppModel {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
	return m
}

// Update handles messages. The play view owns the keyboard while it has
// focus, so plain letters and digits only navigate from the sidebar.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			m.showHelp = true
			return m, nil
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			m.errText = ""
			return m, nil
		}

		if m.sidebarActive {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1":
				return m.switchTo(ViewPlay), nil
			case "2":
				return m.switchTo(ViewSettings), nil
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right", "tab":
				return m.switchTo(m.menuItems[m.selectedMenu].View), nil
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.playView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		return m, nil
	}

	// Key presses go to the active view; everything else (API results,
	// spinner ticks) belongs to the play view even while it is hidden.
	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey && m.currentView == ViewSettings {
		m.settingsView, cmd = m.settingsView.Update(msg)
	} else {
		m.playView, cmd = m.playView.Update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewPlay:
		content = m.playView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}
	if m.errText != "" {
		content = ErrorBannerStyle.Render(m.errText) + "\n\n" + content
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" WORDLE "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	help := "F1 Help  Esc Menu"
	if m.sidebarActive {
		help = "? Help  q Quit"
	}
	items = append(items, SidebarHelpStyle.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

func (m AppModel) renderHelp() string {
	line := func(k, d string) string {
		return HelpKeyStyle.Render(k) + HelpDescStyle.Render(d) + "\n"
	}

	helpText := HelpTitleStyle.Render("Slack Wordle API Demo") + "\n\n"

	helpText += HelpSectionStyle.Render("Global Keys") + "\n"
	helpText += line("esc", "Focus menu (again to quit)")
	helpText += line("1-2", "Switch views from the menu")
	helpText += line("f1 / ?", "Show this help")
	helpText += line("ctrl+c", "Quit")

	helpText += HelpSectionStyle.Render("Play View") + "\n"
	helpText += line("ctrl+t", "Show/hide today's word")
	helpText += line("ctrl+o", "Show/hide future words")
	helpText += line("pgup/pgdn", "Scroll future words")
	helpText += line("ctrl+r", "Validate the typed word")
	helpText += line("enter", "Check against word of day")
	helpText += line("ctrl+y", "Copy result as emoji")

	helpText += HelpSectionStyle.Render("Settings View") + "\n"
	helpText += line("tab/←→", "Switch tabs")

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(helpText))
}

// Run starts the TUI and blocks until it exits.
func Run(client demo.API, opts Options) error {
	p := tea.NewProgram(
		wrapSafe(NewApp(client, opts), opts.Logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
