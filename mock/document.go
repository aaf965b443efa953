package mock

import (
	"context"

	"github.com/fwojciec/htmlcheck"
)

var (
	_ htmlcheck.Document       = (*Document)(nil)
	_ htmlcheck.DocumentLoader = (*DocumentLoader)(nil)
)

// Document is a mock implementation of htmlcheck.Document.
type Document struct {
	HasFn func(selector string) (bool, error)
}

func (d *Document) Has(selector string) (bool, error) {
	return d.HasFn(selector)
}

// DocumentLoader is a mock implementation of htmlcheck.DocumentLoader.
type DocumentLoader struct {
	LoadFileFn func(path string) (htmlcheck.Document, error)
	LoadURLFn  func(ctx context.Context, url string) (htmlcheck.Document, error)
}

func (l *DocumentLoader) LoadFile(path string) (htmlcheck.Document, error) {
	return l.LoadFileFn(path)
}

func (l *DocumentLoader) LoadURL(ctx context.Context, url string) (htmlcheck.Document, error) {
	return l.LoadURLFn(ctx, url)
}
