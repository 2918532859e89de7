// Package views provides the individual views for the TUI.
package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/wordle-demo/internal/api"
	"github.com/f3rmion/wordle-demo/internal/clipboard"
	"github.com/f3rmion/wordle-demo/internal/demo"
	"github.com/f3rmion/wordle-demo/internal/tui/bigchar"
	"github.com/f3rmion/wordle-demo/internal/tui/components"
	"github.com/f3rmion/wordle-demo/internal/wordle"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Foreground(lipgloss.Color("#f1faee")).
			Padding(0, 1).
			MarginRight(1)

	buttonDisabledStyle = buttonStyle.
				Foreground(lipgloss.Color("#666666"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	yesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	noStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// Message types
type wordOfDayMsg struct {
	word wordle.WordOfDay
	err  error
}

type futureWordsMsg struct {
	words []wordle.WordOfDay
}

type validatedMsg struct {
	id    string
	word  string
	valid bool
	err   error
}

type checkedMsg struct {
	id      string
	word    string
	outcome demo.Outcome
	err     error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// WordleOptions tunes the Wordle view.
type WordleOptions struct {
	Logger      zerolog.Logger
	Now         func() time.Time // clock used for the first future date
	FutureLimit int              // 0 = until the API runs out
	Banner      bool             // block-letter solution
	APIURL      string           // shown under the title
}

// WordleModel is the demo screen: today's word, future words, and the
// validate/check form. All of its state lives here and is only changed
// from Update.
type WordleModel struct {
	client demo.API
	opts   WordleOptions
	log    zerolog.Logger

	input   textinput.Model
	spinner spinner.Model
	future  viewport.Model

	// Word of day panel
	wordOfDay   *wordle.WordOfDay
	showWord    bool
	wordPending bool

	// Future words panel
	futureWords []wordle.WordOfDay
	showFuture  bool
	loading     bool

	// Validate / check form
	valid       *bool
	checkResult *wordle.CheckResult
	latestID    string // tag of the newest validate/check request

	canCopy bool // a clipboard tool is installed
	copied  bool

	width  int
	height int
}

// NewWordleModel creates the demo view.
func NewWordleModel(client demo.API, opts WordleOptions) WordleModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "e.g. slate"
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	return WordleModel{
		client:  client,
		opts:    opts,
		log:     opts.Logger,
		input:   ti,
		spinner: sp,
		future:  viewport.New(40, 12),
		canCopy: clipboard.Available(),
	}
}

// SetSize updates the view dimensions.
func (m *WordleModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.future.Width = max(width-8, 20)
	m.future.Height = max(height/3, 6)
	m.refreshFuture()
}

// Update handles messages.
func (m WordleModel) Update(msg tea.Msg) (WordleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			return m.toggleWordOfDay()
		case "ctrl+o":
			return m.toggleFutureWords()
		case "ctrl+r":
			return m.validate()
		case "enter":
			return m.check()
		case "ctrl+y":
			if m.checkResult != nil && m.canCopy {
				if err := clipboard.Write(m.checkResult.Share()); err != nil {
					m.log.Warn().Err(err).Msg("clipboard.write_failed")
					return m, nil
				}
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
			return m, nil
		case "pgup", "pgdown":
			if m.showFuture {
				var cmd tea.Cmd
				m.future, cmd = m.future.Update(msg)
				return m, cmd
			}
			return m, nil
		}

	case wordOfDayMsg:
		m.wordPending = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("word_of_day.failed")
			return m, nil
		}
		w := msg.word
		m.wordOfDay = &w
		m.showWord = true
		return m, nil

	case futureWordsMsg:
		m.loading = false
		m.futureWords = msg.words
		m.showFuture = true
		m.refreshFuture()
		m.future.GotoTop()
		m.log.Info().Int("count", len(msg.words)).Msg("future_words.loaded")
		return m, nil

	case validatedMsg:
		if msg.id != m.latestID {
			m.log.Debug().Str("request_id", msg.id).Str("word", msg.word).Msg("validate.stale_dropped")
			return m, nil
		}
		if msg.err != nil {
			m.log.Error().Str("request_id", msg.id).Str("word", msg.word).Err(msg.err).Msg("validate.failed")
			return m, nil
		}
		m.valid = lo.ToPtr(msg.valid)
		if !msg.valid {
			m.checkResult = nil
			m.copied = false
		}
		return m, nil

	case checkedMsg:
		if msg.id != m.latestID {
			m.log.Debug().Str("request_id", msg.id).Str("word", msg.word).Msg("check.stale_dropped")
			return m, nil
		}
		return m.applyCheck(msg), nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m WordleModel) toggleWordOfDay() (WordleModel, tea.Cmd) {
	if m.showWord {
		m.showWord = false
		return m, nil
	}
	if m.wordOfDay != nil {
		m.showWord = true
		return m, nil
	}
	if m.wordPending {
		return m, nil
	}

	m.wordPending = true
	client := m.client
	return m, func() tea.Msg {
		w, err := client.WordOfDay(context.Background())
		return wordOfDayMsg{word: w, err: err}
	}
}

func (m WordleModel) toggleFutureWords() (WordleModel, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if m.showFuture {
		m.showFuture = false
		return m, nil
	}
	if len(m.futureWords) > 0 {
		m.showFuture = true
		return m, nil
	}

	m.loading = true
	client := m.client
	start := m.opts.Now()
	opts := []demo.Option{demo.WithLimit(m.opts.FutureLimit), demo.WithLogger(m.log)}
	fetch := func() tea.Msg {
		return futureWordsMsg{words: demo.FutureWords(context.Background(), client, start, opts...)}
	}
	return m, tea.Batch(fetch, m.spinner.Tick)
}

// validate tags a new request; anything still in flight becomes stale.
func (m WordleModel) validate() (WordleModel, tea.Cmd) {
	id := uuid.NewString()
	word := m.input.Value()
	m.latestID = id
	m.log.Debug().Str("request_id", id).Str("word", word).Msg("validate.dispatched")

	client := m.client
	return m, func() tea.Msg {
		ctx := api.WithRequestID(context.Background(), id)
		v, err := client.Valid(ctx, word)
		return validatedMsg{id: id, word: word, valid: v.Valid, err: err}
	}
}

func (m WordleModel) check() (WordleModel, tea.Cmd) {
	id := uuid.NewString()
	word := m.input.Value()
	m.latestID = id
	m.log.Debug().Str("request_id", id).Str("word", word).Msg("check.dispatched")

	client := m.client
	return m, func() tea.Msg {
		ctx := api.WithRequestID(context.Background(), id)
		out, err := demo.Check(ctx, client, word)
		return checkedMsg{id: id, word: word, outcome: out, err: err}
	}
}

func (m WordleModel) applyCheck(msg checkedMsg) WordleModel {
	if msg.err != nil {
		m.log.Error().Str("request_id", msg.id).Str("word", msg.word).Err(msg.err).Msg("check.failed")
		// The validity answer arrived before the scoring call failed.
		if msg.outcome.Valid {
			m.valid = lo.ToPtr(true)
		}
		return m
	}

	m.valid = lo.ToPtr(msg.outcome.Valid)
	if !msg.outcome.Valid {
		m.checkResult = nil
		m.copied = false
		return m
	}
	m.checkResult = msg.outcome.Result
	return m
}

func (m *WordleModel) refreshFuture() {
	if len(m.futureWords) == 0 {
		m.future.SetContent("")
		return
	}

	cards := lo.Map(m.futureWords, func(w wordle.WordOfDay, _ int) string {
		return components.Card(components.WordRows(w), labelStyle, valueStyle)
	})
	divider := helpStyle.Render(strings.Repeat("─", max(m.future.Width-2, 10)))
	m.future.SetContent(strings.Join(cards, "\n"+divider+"\n"))
}

// View renders the demo view.
func (m WordleModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Slack Wordle API Demo"))
	b.WriteString("\n")
	if m.opts.APIURL != "" {
		b.WriteString(subtitleStyle.Render("API: " + m.opts.APIURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderButtons())
	b.WriteString("\n")

	if m.showWord && m.wordOfDay != nil {
		b.WriteString(m.renderWordOfDay(*m.wordOfDay))
		b.WriteString("\n")
	}

	if m.showFuture && len(m.futureWords) > 0 {
		header := subtitleStyle.Render(fmt.Sprintf("Future Words (%d)", len(m.futureWords)))
		scroll := helpStyle.Render(fmt.Sprintf("%3.f%%", m.future.ScrollPercent()*100))
		b.WriteString(boxStyle.Render(header + "  " + scroll + "\n\n" + m.future.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Enter a 5-letter Word:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(buttonStyle.Render(keyStyle.Render("ctrl+r") + " Validate Word"))
	b.WriteString(buttonStyle.Render(keyStyle.Render("enter") + " Check Against Word of Day"))
	b.WriteString("\n")

	if m.valid != nil {
		answer := lo.Ternary(*m.valid, yesStyle.Render("Yes"), noStyle.Render("No"))
		b.WriteString(labelStyle.Render("Word is Valid: ") + answer)
		b.WriteString("\n")
	}

	if m.checkResult != nil && m.checkResult.Result != nil {
		b.WriteString(m.renderCheck(*m.checkResult))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := []string{"ctrl+t: today", "ctrl+o: future", "ctrl+r: validate", "enter: check"}
	if m.showFuture {
		help = append(help, "pgup/pgdn: scroll")
	}
	if m.checkResult != nil && m.canCopy {
		help = append(help, "ctrl+y: copy")
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return b.String()
}

func (m WordleModel) renderButtons() string {
	wordLabel := lo.Ternary(m.showWord, "Hide Word Info", "Get Today's Word Info")

	var futureBtn string
	switch {
	case m.loading:
		futureBtn = buttonDisabledStyle.Render(m.spinner.View() + " Loading...")
	case m.showFuture:
		futureBtn = buttonStyle.Render(keyStyle.Render("ctrl+o") + " Hide Future Word Info")
	default:
		futureBtn = buttonStyle.Render(keyStyle.Render("ctrl+o") + " Get Future Word Info")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render(keyStyle.Render("ctrl+t")+" "+wordLabel),
		futureBtn,
	)
}

func (m WordleModel) renderWordOfDay(w wordle.WordOfDay) string {
	var parts []string

	cols := 6 * runewidth.StringWidth(w.Solution)
	if m.opts.Banner && bigchar.IsAvailable() && cols > 0 && (m.width == 0 || cols+8 < m.width) {
		if art := bigchar.GetCached(w.Solution, cols, 4); art != "" {
			parts = append(parts, bannerStyle.Render(art), "")
		}
	}

	parts = append(parts, components.Card(components.WordRows(w), labelStyle, valueStyle))
	return boxStyle.Render(strings.Join(parts, "\n"))
}

func (m WordleModel) renderCheck(r wordle.CheckResult) string {
	header := subtitleStyle.Render("Check Result")
	if m.copied {
		header += "  " + copiedStyle.Render("Copied!")
	}

	rows := []components.Row{
		{Label: "Guess", Value: r.Guess},
		{Label: "Correct", Value: lo.Ternary(r.Correct, "Yes", "No")},
		{Label: "Result", Value: r.Codes()},
	}

	width := 60
	if m.width > 0 && m.width-10 < width {
		width = max(m.width-10, 20)
	}

	body := header + "\n\n" +
		components.Card(rows, labelStyle, valueStyle) + "\n\n" +
		components.Tiles(r.Guess, r.Result) + "\n\n" +
		helpStyle.Render(wordWrap(wordle.ScoreLegend, width))
	return boxStyle.Render(body)
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
