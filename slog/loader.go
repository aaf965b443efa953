package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingDocumentLoader implements htmlcheck.DocumentLoader.
var _ htmlcheck.DocumentLoader = (*LoggingDocumentLoader)(nil)

// LoggingDocumentLoader wraps a DocumentLoader with logging.
type LoggingDocumentLoader struct {
	next   htmlcheck.DocumentLoader
	logger *slog.Logger
}

// NewLoggingDocumentLoader creates a new LoggingDocumentLoader.
func NewLoggingDocumentLoader(next htmlcheck.DocumentLoader, logger *slog.Logger) *LoggingDocumentLoader {
	return &LoggingDocumentLoader{next: next, logger: logger}
}

// LoadFile delegates to the wrapped loader and logs the operation.
func (l *LoggingDocumentLoader) LoadFile(path string) (doc htmlcheck.Document, err error) {
	defer func(begin time.Time) {
		l.logger.Log(context.Background(), level(err), "load document",
			"source", "file",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadFile(path)
}

// LoadURL delegates to the wrapped loader and logs the operation.
func (l *LoggingDocumentLoader) LoadURL(ctx context.Context, url string) (doc htmlcheck.Document, err error) {
	defer func(begin time.Time) {
		l.logger.Log(ctx, level(err), "load document",
			"source", "url",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadURL(ctx, url)
}
