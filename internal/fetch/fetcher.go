// Package fetch retrieves remote documents over HTTP(S) with hard
// timeouts, typed failures, and polite rate limiting.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// ErrTimeout is returned when the remote did not answer within the
// configured timeout.
var ErrTimeout = errors.New("fetch: timeout")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: %s returned status %d", e.URL, e.Code)
}

// Fetcher performs bounded HTTP GETs. The zero value is not usable; use New.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
	maxBody int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithRateLimit bounds outgoing requests per second.
func WithRateLimit(perSec float64) Option {
	return func(f *Fetcher) {
		if perSec > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(perSec), int(perSec)+1)
		}
	}
}

// WithClient injects a custom http.Client (test doubles).
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// New builds a Fetcher with a 15s default timeout and a 2MB body cap.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{},
		timeout: 15 * time.Second,
		maxBody: 2 << 20,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fetch retrieves the body of url as text. Failures are typed: ErrTimeout
// on deadline, *StatusError on non-2xx, anything else is a network error.
// The in-flight request is cancelled when the timeout elapses.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", ErrTimeout
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: bad url %q: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("fetch: read body: %w", err)
	}
	return string(body), nil
}
