package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/f3rmion/wordle-demo/internal/wordle"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	return New(Config{BaseURL: server.URL + "/api/", Timeout: 2 * time.Second})
}

func TestWordOfDay(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/wordle" {
			t.Errorf("expected path /api/wordle, got %s", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query, got %q", r.URL.RawQuery)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("expected request id header")
		}
		w.Write([]byte(`{"solution":"crane","date":"2025-06-01","day":1443}`))
	})

	got, err := c.WordOfDay(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := wordle.WordOfDay{Solution: "crane", Date: "2025-06-01", Day: 1443}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestWordForDateSendsTimestamp(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if ts := r.URL.Query().Get("timestamp"); ts != "2025-06-03" {
			t.Errorf("expected timestamp 2025-06-03, got %q", ts)
		}
		w.Write([]byte(`{"solution":"slate","date":"2025-06-03","day":1445}`))
	})

	date := time.Date(2025, 6, 3, 18, 30, 0, 0, time.UTC)
	got, err := c.WordForDate(context.Background(), date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Solution != "slate" || got.Day != 1445 {
		t.Fatalf("unexpected word: %+v", got)
	}
}

func TestWordForDateNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no data"}`, http.StatusNotFound)
	})

	_, err := c.WordForDate(context.Background(), time.Now())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if !IsKind(err, KindStatus) {
		t.Fatalf("expected status kind, got %v", err)
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("expected status 404 in error, got %v", err)
	}
}

func TestValidEscapesWord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/game/valid" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("word"); got != "a&b c" {
			t.Errorf("expected word to round-trip, got %q", got)
		}
		w.Write([]byte(`{"valid":false}`))
	})

	got, err := c.Valid(context.Background(), "a&b c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Valid {
		t.Fatalf("expected invalid")
	}
}

func TestCheck(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/game/check" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"guess":"slate","correct":false,"result":[1,2,0,2,2]}`))
	})

	got, err := c.Check(context.Background(), "slate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Guess != "slate" || got.Correct {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.Codes() != "1, 2, 0, 2, 2" {
		t.Fatalf("unexpected codes: %s", got.Codes())
	}
}

func TestMalformedJSONIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"valid":`))
	})

	_, err := c.Valid(context.Background(), "slate")
	if !IsKind(err, KindDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := New(Config{BaseURL: url})
	_, err := c.WordOfDay(context.Background())
	if !IsKind(err, KindTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Request-ID"); got != "tag-1" {
			t.Errorf("expected request id tag-1, got %q", got)
		}
		w.Write([]byte(`{"valid":true}`))
	})

	ctx := WithRequestID(context.Background(), "tag-1")
	if _, err := c.Valid(ctx, "crane"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewDefaultsBaseURL(t *testing.T) {
	c := New(Config{})
	if c.BaseURL() != DefaultBaseURL {
		t.Fatalf("expected default base url, got %s", c.BaseURL())
	}
}
