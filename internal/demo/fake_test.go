package demo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/f3rmion/wordle-demo/internal/wordle"
)

var errNetwork = errors.New("connection reset")

// scriptedAPI serves words for a fixed number of dates and then fails.
type scriptedAPI struct {
	mu sync.Mutex

	available int   // dates with data, counted from the first request
	failWith  error // returned once available is exhausted
	valid     bool
	check     wordle.CheckResult

	dates       []string
	validCalls  int
	checkCalls  int
	wordOfDayCt int
}

func (s *scriptedAPI) WordOfDay(ctx context.Context) (wordle.WordOfDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordOfDayCt++
	return wordle.WordOfDay{Solution: "crane", Date: "2025-06-01", Day: 1}, nil
}

func (s *scriptedAPI) WordForDate(ctx context.Context, date time.Time) (wordle.WordOfDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dates = append(s.dates, wordle.DateKey(date))
	if len(s.dates) > s.available {
		return wordle.WordOfDay{}, s.failWith
	}
	return wordle.WordOfDay{Solution: "w" + wordle.DateKey(date), Date: "ignored", Day: len(s.dates)}, nil
}

func (s *scriptedAPI) Valid(ctx context.Context, word string) (wordle.ValidityResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validCalls++
	return wordle.ValidityResult{Valid: s.valid}, nil
}

func (s *scriptedAPI) Check(ctx context.Context, word string) (wordle.CheckResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkCalls++
	return s.check, nil
}
