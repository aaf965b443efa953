package goquery

import (
	"context"
	"os"

	"github.com/fwojciec/htmlcheck"
)

// Ensure Loader implements htmlcheck.DocumentLoader at compile time.
var _ htmlcheck.DocumentLoader = (*Loader)(nil)

// Loader parses documents read from disk or fetched over the network.
type Loader struct {
	fetcher htmlcheck.Fetcher
}

// NewLoader creates a Loader. The fetcher is only used by LoadURL and may be
// nil when documents are read from files only.
func NewLoader(fetcher htmlcheck.Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// LoadFile reads and parses the HTML file at path.
func (l *Loader) LoadFile(path string) (htmlcheck.Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, htmlcheck.Errorf(htmlcheck.ENOTFOUND, "%s does not exist. Exiting.", path)
	} else if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINTERNAL, "failed to read %s: %v", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// LoadURL fetches url and parses the response body.
func (l *Loader) LoadURL(ctx context.Context, url string) (htmlcheck.Document, error) {
	if l.fetcher == nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINTERNAL, "no fetcher configured")
	}

	html, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		if htmlcheck.ErrorCode(err) == htmlcheck.EINTERNAL {
			return nil, htmlcheck.Errorf(htmlcheck.EFETCH, "fetch %s: %v", url, err)
		}
		return nil, err
	}

	return ParseString(html)
}
