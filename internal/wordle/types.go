// Package wordle provides the data types returned by the Slack Wordle API.
package wordle

import (
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DateLayout is the calendar date format used by the API.
const DateLayout = "2006-01-02"

// Score is the per-letter result code returned by the check endpoint.
type Score int

const (
	ScoreCorrect Score = 0 // Letter is in the correct position
	ScorePresent Score = 1 // Letter is in the word but in the wrong position
	ScoreAbsent  Score = 2 // Letter is not in the word
)

// String returns a readable name for the score.
func (s Score) String() string {
	switch s {
	case ScoreCorrect:
		return "correct"
	case ScorePresent:
		return "present"
	case ScoreAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// Emoji returns the tile used in share text.
func (s Score) Emoji() string {
	switch s {
	case ScoreCorrect:
		return "🟩"
	case ScorePresent:
		return "🟨"
	case ScoreAbsent:
		return "⬛"
	default:
		return "❔"
	}
}

// ScoreLegend explains the result codes.
const ScoreLegend = "0 = letter is in correct position, 1 = letter is in word but is wrong position, 2 = letter is not in word"

// WordOfDay is the designated answer for a calendar date.
type WordOfDay struct {
	Solution string `json:"solution" yaml:"solution"` // The answer word
	Date     string `json:"date" yaml:"date"`         // Calendar date (YYYY-MM-DD)
	Day      int    `json:"day" yaml:"day"`           // Sequential day index
}

// ValidityResult reports whether a word is accepted as a guess.
type ValidityResult struct {
	Valid bool `json:"valid"`
}

// CheckResult is the per-letter scoring of a guess against the day's word.
type CheckResult struct {
	Guess   string  `json:"guess"`
	Correct bool    `json:"correct"`
	Result  []Score `json:"result"`
}

// Codes joins the raw result codes, e.g. "1, 2, 0, 2, 2".
func (c CheckResult) Codes() string {
	return strings.Join(lo.Map(c.Result, func(s Score, _ int) string {
		return strconv.Itoa(int(s))
	}), ", ")
}

// Share renders the result as a row of emoji tiles.
func (c CheckResult) Share() string {
	return strings.Join(lo.Map(c.Result, func(s Score, _ int) string {
		return s.Emoji()
	}), "")
}

// DateKey formats t as the UTC calendar date used in API requests.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
