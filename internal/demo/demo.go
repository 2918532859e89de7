// Package demo implements the request flows behind the demo screens:
// accumulating future words and validating a guess before scoring it.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/f3rmion/wordle-demo/internal/wordle"
	"github.com/rs/zerolog"
)

// API is the subset of the Slack Wordle API the demo uses.
type API interface {
	WordOfDay(ctx context.Context) (wordle.WordOfDay, error)
	WordForDate(ctx context.Context, date time.Time) (wordle.WordOfDay, error)
	Valid(ctx context.Context, word string) (wordle.ValidityResult, error)
	Check(ctx context.Context, word string) (wordle.CheckResult, error)
}

type futureOptions struct {
	limit int
	log   zerolog.Logger
}

// Option configures FutureWords.
type Option func(*futureOptions)

// WithLimit caps the number of entries collected. Zero means no cap.
func WithLimit(n int) Option {
	return func(o *futureOptions) { o.limit = n }
}

// WithLogger logs why accumulation stopped.
func WithLogger(l zerolog.Logger) Option {
	return func(o *futureOptions) { o.log = l }
}

// FutureWords queries one calendar date at a time starting at start,
// moving forward a day after every successful response. It stops at the
// first failed lookup and returns what it gathered; a failure is the
// normal end of the list, not an error.
//
// Each entry's Date is the date that was requested.
func FutureWords(ctx context.Context, api API, start time.Time, opts ...Option) []wordle.WordOfDay {
	o := futureOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	day := start.UTC()
	var out []wordle.WordOfDay
	for {
		if o.limit > 0 && len(out) >= o.limit {
			o.log.Debug().Int("count", len(out)).Msg("future_words.limit_reached")
			break
		}

		w, err := api.WordForDate(ctx, day)
		if err != nil {
			o.log.Debug().
				Str("date", wordle.DateKey(day)).
				Int("count", len(out)).
				Err(err).
				Msg("future_words.stopped")
			break
		}

		w.Date = wordle.DateKey(day)
		out = append(out, w)
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// Outcome is the result of validating and then checking a word.
type Outcome struct {
	Valid  bool                `json:"valid"`
	Result *wordle.CheckResult `json:"result,omitempty"` // nil when the word was not valid
}

// Check validates word and, only if the API accepts it, scores it.
func Check(ctx context.Context, api API, word string) (Outcome, error) {
	v, err := api.Valid(ctx, word)
	if err != nil {
		return Outcome{}, fmt.Errorf("validating %q: %w", word, err)
	}
	if !v.Valid {
		return Outcome{Valid: false}, nil
	}

	res, err := api.Check(ctx, word)
	if err != nil {
		return Outcome{Valid: true}, fmt.Errorf("checking %q: %w", word, err)
	}
	return Outcome{Valid: true, Result: &res}, nil
}
