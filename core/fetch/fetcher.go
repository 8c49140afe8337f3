// Package fetch retrieves remote pages for URL inputs to the converter.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "docpress/1.0 (+https://github.com/gaurav-prasanna/docpress)"
)

// Result holds the response body and status for a fetched page.
type Result struct {
	URL        string
	StatusCode int
	Body       string
}

// HTTPFetcher fetches pages over HTTP with a bounded timeout.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with sensible defaults.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves the content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/markdown,text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Result{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
