package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/mock"
	checkslog "github.com/fwojciec/htmlcheck/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSelectorLoader_LoadSelectors(t *testing.T) {
	t.Parallel()

	t.Run("logs path and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SelectorLoader{
			LoadSelectorsFn: func(path string) ([]string, error) {
				return []string{"h1", "p"}, nil
			},
		}

		loader := checkslog.NewLoggingSelectorLoader(inner, logger)
		selectors, err := loader.LoadSelectors("checks.json")

		require.NoError(t, err)
		assert.Equal(t, []string{"h1", "p"}, selectors)
		output := buf.String()
		assert.Contains(t, output, "msg=\"load selectors\"")
		assert.Contains(t, output, "path=checks.json")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs parse error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SelectorLoader{
			LoadSelectorsFn: func(path string) ([]string, error) {
				return nil, htmlcheck.Errorf(htmlcheck.EPARSE, "bad list")
			},
		}

		loader := checkslog.NewLoggingSelectorLoader(inner, logger)
		_, err := loader.LoadSelectors("checks.json")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "count=0")
		assert.Contains(t, buf.String(), "err=\"bad list\"")
	})
}
