// Package goquery implements htmlcheck.Document and htmlcheck.DocumentLoader
// on top of goquery and cascadia.
package goquery

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/htmlcheck"
)

// Ensure Document implements htmlcheck.Document at compile time.
var _ htmlcheck.Document = (*Document)(nil)

// Document is a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Parse reads HTML from r and returns a query-able Document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, htmlcheck.Errorf(htmlcheck.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString is like Parse for an in-memory string.
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// Has reports whether at least one element matches selector.
// An empty or blank selector matches nothing.
//
// The selector is compiled with cascadia first because goquery's Find
// treats an invalid selector as one that matches nothing.
func (d *Document) Has(selector string) (bool, error) {
	if strings.TrimSpace(selector) == "" {
		return false, nil
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return false, htmlcheck.Errorf(htmlcheck.ESELECTOR, "invalid selector %q: %v", selector, err)
	}
	return d.doc.FindMatcher(m).Length() > 0, nil
}
