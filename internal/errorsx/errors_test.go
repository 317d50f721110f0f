package errorsx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndError(t *testing.T) {
	err := New(CodeBadArgs, "wrong number of arguments")
	assert.Equal(t, CodeBadArgs, err.Code)
	assert.Contains(t, err.Error(), "wrong number of arguments")
}

func TestWrapUnwraps(t *testing.T) {
	cause := fmt.Errorf("boom")
	wrapped := Wrap(cause, CodeOpenInput, "could not open file")
	require.Equal(t, cause, wrapped.Unwrap())
	assert.Contains(t, wrapped.Error(), "boom")
}

func TestIs(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("boom"), CodeParseInput, "bad json")
	assert.True(t, Is(wrapped, CodeParseInput))
	assert.False(t, Is(wrapped, CodeOpenInput))
	assert.False(t, Is(nil, CodeParseInput))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(New(CodeBadArgs, "x")))
	assert.Equal(t, 3, ExitCode(New(CodeOpenInput, "x")))
	assert.Equal(t, 4, ExitCode(New(CodeParseInput, "x")))
	assert.Equal(t, 5, ExitCode(New(CodeNoTTY, "x")))
	assert.Equal(t, 5, ExitCode(New(CodeTermSize, "x")))
	assert.Equal(t, 1, ExitCode(fmt.Errorf("plain")))
}
