// Package api is a client for the Slack Wordle API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/f3rmion/wordle-demo/internal/wordle"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public deployment of the API.
	DefaultBaseURL   = "https://slack-wordle-api.vercel.app/api"
	defaultUserAgent = "wordle-demo"

	requestIDHeader = "X-Request-ID"
)

// Config holds the client settings.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables pacing
	Burst     int
	UserAgent string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   30 * time.Second,
		RateLimit: 5,
		Burst:     10,
		UserAgent: defaultUserAgent,
	}
}

// Client is a Slack Wordle API client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client from cfg.
func New(cfg Config, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	tc := DefaultTransportConfig()
	if cfg.Timeout > 0 {
		tc.Timeout = cfg.Timeout
	}

	c := &Client{
		baseURL:    base,
		userAgent:  ua,
		httpClient: NewHTTPClient(tc),
		log:        zerolog.Nop(),
	}

	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WordOfDay fetches today's word.
func (c *Client) WordOfDay(ctx context.Context) (wordle.WordOfDay, error) {
	var out wordle.WordOfDay
	if err := c.getJSON(ctx, "api.word_of_day", "/wordle", nil, &out); err != nil {
		return wordle.WordOfDay{}, err
	}
	return out, nil
}

// WordForDate fetches the word for the given date. A non-2xx response
// means the API has no word for that date and matches ErrNoData.
func (c *Client) WordForDate(ctx context.Context, date time.Time) (wordle.WordOfDay, error) {
	key := wordle.DateKey(date)
	q := url.Values{"timestamp": {key}}

	var out wordle.WordOfDay
	if err := c.getJSON(ctx, "api.word_for_date", "/wordle", q, &out); err != nil {
		if IsKind(err, KindStatus) {
			return wordle.WordOfDay{}, fmt.Errorf("%w: %s: %w", ErrNoData, key, err)
		}
		return wordle.WordOfDay{}, err
	}
	return out, nil
}

// Valid asks whether word is an accepted guess.
func (c *Client) Valid(ctx context.Context, word string) (wordle.ValidityResult, error) {
	var out wordle.ValidityResult
	q := url.Values{"word": {word}}
	if err := c.getJSON(ctx, "api.valid", "/game/valid", q, &out); err != nil {
		return wordle.ValidityResult{}, err
	}
	return out, nil
}

// Check scores word against the day's answer.
func (c *Client) Check(ctx context.Context, word string) (wordle.CheckResult, error) {
	var out wordle.CheckResult
	q := url.Values{"word": {word}}
	if err := c.getJSON(ctx, "api.check", "/game/check", q, &out); err != nil {
		return wordle.CheckResult{}, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Op: op, Kind: KindTransport, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("creating request: %w", err)}
	}

	id := RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, id)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Str("op", op).Str("request_id", id).Err(err).Msg("request.failed")
		return &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("making request: %w", err)}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("op", op).
		Str("request_id", id).
		Str("url", u).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request.done")

	if resp.StatusCode/100 != 2 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &Error{
			Op:     op,
			Kind:   KindStatus,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("reading response: %w", err)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Op: op, Kind: KindDecode, Err: fmt.Errorf("unmarshaling response: %w", err)}
	}
	return nil
}

type requestIDKey struct{}

// WithRequestID tags requests made with ctx so callers can correlate
// responses and log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the tag set by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
