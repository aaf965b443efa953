package htmlcheck

import "context"

// Document is a parsed, query-able HTML document.
// A Document is immutable once loaded.
type Document interface {
	// Has reports whether at least one element matches the CSS selector.
	// Returns ESELECTOR if the selector cannot be compiled.
	Has(selector string) (bool, error)
}

// DocumentLoader produces a Document from exactly one source.
type DocumentLoader interface {
	// LoadFile reads and parses a local HTML file.
	// Relative paths are resolved against the working directory.
	LoadFile(path string) (Document, error)

	// LoadURL fetches the URL and parses the response body.
	// Returns EFETCH on transport failure or a non-2xx response.
	LoadURL(ctx context.Context, url string) (Document, error)
}
