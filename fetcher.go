package htmlcheck

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
