package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingSelectorLoader implements htmlcheck.SelectorLoader.
var _ htmlcheck.SelectorLoader = (*LoggingSelectorLoader)(nil)

// LoggingSelectorLoader wraps a SelectorLoader with logging.
type LoggingSelectorLoader struct {
	next   htmlcheck.SelectorLoader
	logger *slog.Logger
}

// NewLoggingSelectorLoader creates a new LoggingSelectorLoader.
func NewLoggingSelectorLoader(next htmlcheck.SelectorLoader, logger *slog.Logger) *LoggingSelectorLoader {
	return &LoggingSelectorLoader{next: next, logger: logger}
}

// LoadSelectors delegates to the wrapped loader and logs the operation.
func (l *LoggingSelectorLoader) LoadSelectors(path string) (selectors []string, err error) {
	defer func(begin time.Time) {
		l.logger.Log(context.Background(), level(err), "load selectors",
			"path", path,
			"count", len(selectors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadSelectors(path)
}
