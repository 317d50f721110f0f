package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestANSIEscapeSequences(t *testing.T) {
	assert.Equal(t, "\x1b[31m", startEscape(Red, false))
	assert.Equal(t, "\x1b[41m", startEscape(Red, true))
	assert.Equal(t, "\x1b[39m", endEscape(false))
	assert.Equal(t, "\x1b[49m", endEscape(true))
}

func TestANSI256EscapeSequences(t *testing.T) {
	assert.Equal(t, "\x1b[38;5;200m", startEscape(ANSI256(200), false))
	assert.Equal(t, "\x1b[48;5;200m", startEscape(ANSI256(200), true))
}

func TestDefaultSpecEmitsNothing(t *testing.T) {
	assert.Equal(t, "", startEscape(Spec{}, false))
}
