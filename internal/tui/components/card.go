// Package components provides shared UI components for the TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/wordle-demo/internal/wordle"
	"github.com/mattn/go-runewidth"
)

// Tile colors for each score.
var (
	tileBase = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	tileStyles = map[wordle.Score]lipgloss.Style{
		wordle.ScoreCorrect: tileBase.Background(lipgloss.Color("#6aaa64")),
		wordle.ScorePresent: tileBase.Background(lipgloss.Color("#c9b458")),
		wordle.ScoreAbsent:  tileBase.Foreground(lipgloss.Color("#f1faee")).Background(lipgloss.Color("#3a3a3c")),
	}

	tileUnknown = tileBase.Background(lipgloss.Color("#666666"))
)

// Row is a label/value pair shown in a card.
type Row struct {
	Label string
	Value string
}

// WordRows lists the fields of a word entry in display order.
func WordRows(w wordle.WordOfDay) []Row {
	return []Row{
		{Label: "Date", Value: w.Date},
		{Label: "Solution", Value: w.Solution},
		{Label: "Day #", Value: strconv.Itoa(w.Day)},
	}
}

// Card renders rows with labels padded to a common width.
func Card(rows []Row, label, value lipgloss.Style) string {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r.Label)+1)
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		l := runewidth.FillRight(r.Label+":", width)
		lines = append(lines, label.Render(l)+" "+value.Render(r.Value))
	}
	return strings.Join(lines, "\n")
}

// Tiles renders each letter of guess on a colored tile. Letters beyond
// the result, or scores outside 0..2, use a neutral tile.
func Tiles(guess string, result []wordle.Score) string {
	letters := []rune(strings.ToUpper(guess))
	n := max(len(letters), len(result))

	tiles := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ch := " "
		if i < len(letters) {
			ch = string(letters[i])
		}
		style := tileUnknown
		if i < len(result) {
			if s, ok := tileStyles[result[i]]; ok {
				style = s
			}
		}
		tiles = append(tiles, style.Render(ch))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
