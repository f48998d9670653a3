// Package fixturefeed talks to the upstream schedule provider. It exposes the
// published fixture list for a tournament; scores and results never come from
// the feed, admins record those by hand.
package fixturefeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/espocity/league/internal/platform/logging"
	"github.com/espocity/league/internal/platform/resilience"
)

const (
	defaultBaseURL      = "https://feed.espocity.example/v1"
	maxResponseBytes    = 4 << 20
	defaultFetchTimeout = 15 * time.Second
)

var errFeedTransient = crerr.New("fixture feed transient failure")

// Fixture is one scheduled match as published by the feed.
type Fixture struct {
	HomeTeam  string
	AwayTeam  string
	Stage     string
	KickoffAt time.Time
	Place     string
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultFetchTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Fixtures fetches the full published schedule, ordered by kickoff.
func (c *Client) Fixtures(ctx context.Context) ([]Fixture, error) {
	var envelope fixturesEnvelope
	if err := c.doJSON(ctx, "/fixtures", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	out := make([]Fixture, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		home := strings.TrimSpace(item.HomeTeam)
		away := strings.TrimSpace(item.AwayTeam)
		kickoff := parseFeedDateTime(item.KickoffAt)
		if home == "" || away == "" || kickoff == nil {
			c.logger.WarnContext(ctx, "skip malformed feed fixture",
				"home", item.HomeTeam, "away", item.AwayTeam, "kickoffAt", item.KickoffAt)
			continue
		}
		out = append(out, Fixture{
			HomeTeam:  home,
			AwayTeam:  away,
			Stage:     strings.TrimSpace(item.Stage),
			KickoffAt: *kickoff,
			Place:     strings.TrimSpace(item.Venue),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].HomeTeam < out[j].HomeTeam
	})
	return out, nil
}

type fixturesEnvelope struct {
	Data []fixtureItem `json:"data"`
}

type fixtureItem struct {
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	Stage     string `json:"stage"`
	KickoffAt string `json:"kickoffAt"`
	Venue     string `json:"venue"`
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fixture feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("fixture feed is temporarily unavailable")
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errFeedTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		raw, retryable, err := c.attempt(ctx, fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retryable || attempt == c.maxRetries {
			break
		}

		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "fixture feed request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, fullURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if c.token != "" {
		req.Header.Set("authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, crerr.Wrapf(errFeedTransient, "send request: %v", err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
		return nil, true, crerr.Wrapf(errFeedTransient, "read response body: %v", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		raw := append([]byte(nil), buf.B...)
		return raw, false, nil
	}

	if isRetryableStatus(resp.StatusCode) {
		return nil, true, crerr.Wrapf(errFeedTransient, "feed status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
	}
	return nil, false, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(buf.B))
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}

func parseFeedDateTime(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			v := parsed.UTC()
			return &v
		}
	}
	return nil
}
