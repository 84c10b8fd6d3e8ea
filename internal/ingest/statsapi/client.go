// Package statsapi fetches league game logs and player bio stats from the
// stats.nba.com JSON API.
package statsapi

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const (
	// BaseURL for the stats API
	BaseURL = "https://stats.nba.com/stats"

	// UserAgent for requests; the API rejects non-browser clients
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Fetcher retrieves the raw response body for a stats API URL. The default
// is plain HTTP; a headless-browser implementation exists for environments
// where the API fingerprints and blocks Go's HTTP client.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches with net/http, browser-like headers and bounded
// retries with exponential backoff. The API rate-limits aggressively, so
// transient failures are retried here rather than surfaced to the caller.
type HTTPFetcher struct {
	client     *http.Client
	maxRetries int
	retryDelay time.Duration
}

// NewHTTPFetcher creates the default HTTP fetcher.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client:     &http.Client{Timeout: 30 * time.Second},
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
}

// Fetch performs a GET with retries. Rate-limited (429) and server-side
// (5xx) responses are retried; anything else non-2xx fails immediately.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	delay := f.retryDelay
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[statsapi] retry %d/%d after error: %v (waiting %v)", attempt, f.maxRetries, lastErr, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay *= 2
		}

		body, retryable, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("fetching %s: %w", rawURL, lastErr)
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, err
	}

	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("Origin", "https://www.nba.com")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("stats API returned %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, false, fmt.Errorf("stats API returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	// An HTML body means a block page, not data.
	if len(body) > 0 && body[0] == '<' {
		return nil, true, fmt.Errorf("stats API returned HTML instead of JSON: %s", truncate(body, 200))
	}

	return body, false, nil
}

// Client builds stats API requests and decodes their tabular responses.
type Client struct {
	baseURL string
	fetcher Fetcher
}

// New creates a client with a custom base URL and fetcher.
func New(baseURL string, fetcher Fetcher) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if fetcher == nil {
		fetcher = NewHTTPFetcher()
	}
	return &Client{baseURL: baseURL, fetcher: fetcher}
}

// leagueGameLog fetches the season game log at team ("T") or player ("P")
// granularity.
func (c *Client) leagueGameLog(ctx context.Context, season, seasonType, playerOrTeam string) (*ResultSet, error) {
	params := url.Values{
		"LeagueID":     {"00"},
		"Season":       {season},
		"SeasonType":   {seasonType},
		"PlayerOrTeam": {playerOrTeam},
		"Sorter":       {"DATE"},
		"Direction":    {"ASC"},
		"Counter":      {"0"},
	}
	return c.fetchResultSet(ctx, "leaguegamelog", params, "LeagueGameLog")
}

// playerBioStats fetches the season-wide player bio table, which carries
// the position labels.
func (c *Client) playerBioStats(ctx context.Context, season, seasonType string) (*ResultSet, error) {
	params := url.Values{
		"LeagueID":   {"00"},
		"PerMode":    {"Totals"},
		"Season":     {season},
		"SeasonType": {seasonType},
	}
	return c.fetchResultSet(ctx, "leaguedashplayerbiostats", params, "LeagueDashPlayerBioStats")
}

func (c *Client) fetchResultSet(ctx context.Context, endpoint string, params url.Values, name string) (*ResultSet, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", endpoint, err)
	}

	rs, err := decodeResultSet(body, name)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", endpoint, err)
	}
	return rs, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
