// Package transport implements the remote Transport port over HTTP.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Transport = (*Client)(nil)

// userAgent identifies the pipeline to remote servers.
const userAgent = "datakiln-ingest/1.0 (document fetcher)"

// Client fetches remote sources over HTTP with a bounded timeout and an
// optional token-bucket rate limit shared across all requests.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Useful for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(t *Client) {
		if c != nil {
			t.httpClient = c
		}
	}
}

// WithRateLimit enforces a sustained requests-per-second ceiling with the
// given burst size. Zero or negative values disable the limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(t *Client) {
		if rps > 0 && burst > 0 {
			t.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// New creates an HTTP transport whose requests time out after the given
// duration. The timeout must not be infinite: one unresponsive remote
// source must never hold a loader slot indefinitely.
func New(timeout time.Duration, opts ...Option) *Client {
	t := &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Fetch retrieves the content behind a URL.
// Non-2xx responses and transport failures (including timeouts) are
// reported as domain.ErrRemoteFetch.
func (t *Client) Fetch(ctx context.Context, url string) (*driven.RemoteContent, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrRemoteFetch, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", domain.ErrRemoteFetch, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRemoteFetch, err)
	}

	return &driven.RemoteContent{
		Body:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
