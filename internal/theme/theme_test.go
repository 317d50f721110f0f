package theme

import (
	"testing"

	"github.com/grovetools/jsonview/internal/format"
	"github.com/stretchr/testify/assert"
)

func TestWithOverridesParsesIndex(t *testing.T) {
	th := Default.WithOverrides(map[string]string{"key": "201", "bogus": "x", "string": "999"})
	assert.Equal(t, format.ANSI256(201), th.Key)
	assert.Equal(t, Default.String, th.String) // 999 out of range, ignored
}

func TestForKind(t *testing.T) {
	assert.Equal(t, Default.String, Default.ForKind("string"))
	assert.Equal(t, Default.Number, Default.ForKind("integer"))
	assert.Equal(t, Default.Number, Default.ForKind("float"))
	assert.Equal(t, Default.Muted, Default.ForKind("object"))
}

func TestRGBTo256IsStable(t *testing.T) {
	assert.Equal(t, rgbTo256(0, 0, 0), rgbTo256(0, 0, 0))
	assert.NotEqual(t, rgbTo256(255, 0, 0), rgbTo256(0, 255, 0))
}
