package value

import (
	"testing"

	"github.com/grovetools/jsonview/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesObjectOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind)
	require.Equal(t, 3, v.NumChildren())
	assert.Equal(t, "z", v.Child(0).Key)
	assert.Equal(t, "a", v.Child(1).Key)
	assert.Equal(t, "m", v.Child(2).Key)
}

func TestParseKeepsDuplicateObjectKeys(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "a": 2, "b": 3}`))
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind)
	require.Equal(t, 3, v.NumChildren())
	assert.Equal(t, "a", v.Child(0).Key)
	assert.Equal(t, int64(1), v.Child(0).Int)
	assert.Equal(t, 0, v.Child(0).Index)
	assert.Equal(t, "a", v.Child(1).Key)
	assert.Equal(t, int64(2), v.Child(1).Int)
	assert.Equal(t, 1, v.Child(1).Index)
	assert.Equal(t, "b", v.Child(2).Key)
	assert.Equal(t, int64(3), v.Child(2).Int)
	assert.Equal(t, 2, v.Child(2).Index)
}

func TestParseArrayIndicesAsKeys(t *testing.T) {
	v, err := Parse([]byte(`[10, 20, 30]`))
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind)
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, v.Child(i).Index)
	}
	assert.Equal(t, int64(20), v.Child(1).Int)
}

func TestParseScalarKinds(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 1.5, "c": true, "d": null, "e": "hi"}`))
	require.NoError(t, err)
	assert.Equal(t, KindInteger, v.Child(0).Kind)
	assert.Equal(t, KindFloat, v.Child(1).Kind)
	assert.Equal(t, KindBool, v.Child(2).Kind)
	assert.Equal(t, KindNull, v.Child(3).Kind)
	assert.Equal(t, KindString, v.Child(4).Kind)
	assert.Equal(t, "hi", v.Child(4).Str)
}

func TestPathString(t *testing.T) {
	v, err := Parse([]byte(`{"a": {"b": [1,2,3]}}`))
	require.NoError(t, err)
	b := v.Child(0).Child(0)
	two := b.Child(1)
	assert.Equal(t, ".a.b[1]", two.PathString())
}

func TestContentFRendersKeyAndValue(t *testing.T) {
	v, err := Parse([]byte(`{"name": "grove"}`))
	require.NoError(t, err)
	child := v.Child(0)
	f := ContentF(child, theme.Default)
	p := formatHelper(f)
	assert.Contains(t, p, "name")
	assert.Contains(t, p, "grove")
}

func TestPlaceholderFObject(t *testing.T) {
	v, err := Parse([]byte(`{"nested": {"x": 1}}`))
	require.NoError(t, err)
	child := v.Child(0)
	f := PlaceholderF(child, theme.Default)
	p := formatHelper(f)
	assert.Contains(t, p, "nested")
	assert.Contains(t, p, "{")
}
