package htmlcheck_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/htmlcheck"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := htmlcheck.Errorf(htmlcheck.ENOTFOUND, "%s does not exist. Exiting.", "checks.json")

	assert.Equal(t, htmlcheck.ENOTFOUND, htmlcheck.ErrorCode(err))
	assert.Equal(t, "checks.json does not exist. Exiting.", htmlcheck.ErrorMessage(err))
	assert.Equal(t, "checks.json does not exist. Exiting.", err.Error())
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, htmlcheck.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", htmlcheck.Errorf(htmlcheck.EPARSE, "bad list"))

	assert.Equal(t, htmlcheck.EPARSE, htmlcheck.ErrorCode(err))
	assert.Equal(t, "bad list", htmlcheck.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, htmlcheck.EINTERNAL, htmlcheck.ErrorCode(err))
	assert.Equal(t, "Internal error.", htmlcheck.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, htmlcheck.ErrorMessage(nil))
}
