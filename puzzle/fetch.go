package puzzle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultURL is the official Letter Boxed page.
const DefaultURL = "https://www.nytimes.com/puzzles/letter-boxed"

// maxBodyBytes bounds how much of the page body is read.
const maxBodyBytes = 8 << 20

// Fetcher retrieves the current daily puzzle from the puzzle page.
// Requests are rate limited so that repeated callers cannot hammer the
// upstream site.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	url     string
}

// FetcherOption configures Fetcher constructor behavior.
type FetcherOption func(*Fetcher)

// WithHTTPClient configures the HTTP client used for fetches.
//
// If nil is passed, http.DefaultClient is used.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if client == nil {
			client = http.DefaultClient
		}
		f.client = client
	}
}

// WithURL overrides the page URL, e.g. for a mirror or a test server.
func WithURL(url string) FetcherOption {
	return func(f *Fetcher) {
		if url != "" {
			f.url = url
		}
	}
}

// WithRateLimit configures the fetch rate limit.
func WithRateLimit(limit rate.Limit, burst int) FetcherOption {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(limit, burst)
	}
}

// NewFetcher creates a Fetcher. The default limit allows one fetch
// every ten seconds with a burst of one.
func NewFetcher(optFns ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:  http.DefaultClient,
		limiter: rate.NewLimiter(rate.Every(10*time.Second), 1),
		url:     DefaultURL,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(f)
		}
	}

	return f
}

// Today fetches the page and returns the puzzle embedded in it. It
// blocks until the rate limiter admits the request or ctx is done.
func (f *Fetcher) Today(ctx context.Context) (Puzzle, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return Puzzle{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return Puzzle{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Puzzle{}, fmt.Errorf("fetch puzzle page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Puzzle{}, fmt.Errorf("fetch puzzle page: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Puzzle{}, fmt.Errorf("read puzzle page: %w", err)
	}

	return ParseGameData(body)
}
