// Package http provides an HTTP-based implementation of htmlcheck.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/htmlcheck"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements htmlcheck.Fetcher at compile time.
var _ htmlcheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
// Any transport error or non-2xx response is reported as EFETCH.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// No timeout is applied if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the underlying HTTP client. The timeout option is ignored
// when a client is supplied.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. The body is decoded
// to UTF-8 according to the response Content-Type and any <meta> charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", htmlcheck.Errorf(htmlcheck.EFETCH, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", htmlcheck.Errorf(htmlcheck.EFETCH, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", htmlcheck.Errorf(htmlcheck.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", htmlcheck.Errorf(htmlcheck.EFETCH, "unsupported charset for %s: %v", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", htmlcheck.Errorf(htmlcheck.EFETCH, "read body of %s: %v", url, err)
	}

	return string(body), nil
}
