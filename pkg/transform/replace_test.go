package transform_test

import (
	"testing"

	"github.com/avetono/jsonbot/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplace_Strings(t *testing.T) {
	l := mustList(t, `["http://a.com", "http://b.com"]`)

	out, count := transform.Replace(l, "a.com", "x.com")

	assert.Equal(t, 1, count)
	assert.Equal(t, "[\n  \"http://x.com\",\n  \"http://b.com\"\n]", encoded(t, out))
}

func TestReplace_CountsPerElementNotPerMatch(t *testing.T) {
	l := mustList(t, `["aa aa aa", "bb"]`)

	out, count := transform.Replace(l, "aa", "cc")

	assert.Equal(t, 1, count)
	assert.Equal(t, `"cc cc cc"`, string(out[0]))
}

func TestReplace_FindEqualsReplace(t *testing.T) {
	l := mustList(t, `["http://a.com", "http://b.com", {"url": "a.com"}, 42]`)

	out, count := transform.Replace(l, "a.com", "a.com")

	// Every element stays byte-identical; the count still reflects the
	// elements containing at least one match.
	require.Len(t, out, 4)
	for i := range l {
		assert.Equal(t, string(l[i]), string(out[i]))
	}
	assert.Equal(t, 2, count)
}

func TestReplace_CompoundValues(t *testing.T) {
	l := mustList(t, `[{"url": "http://a.com", "tag": "keep"}]`)

	out, count := transform.Replace(l, "a.com", "x.com")

	require.Equal(t, 1, count)
	// Compound elements come back in canonical (key-sorted, compact) form.
	assert.Equal(t, `{"tag":"keep","url":"http://x.com"}`, string(out[0]))
}

func TestReplace_NestedCompound(t *testing.T) {
	l := mustList(t, `[{"links": ["http://a.com/1", "http://a.com/2"]}]`)

	out, count := transform.Replace(l, "a.com", "x.com")

	assert.Equal(t, 1, count)
	assert.Equal(t, `{"links":["http://x.com/1","http://x.com/2"]}`, string(out[0]))
}

func TestReplace_UnparseableFallback(t *testing.T) {
	// Replacing a structural character corrupts the serialized form; the
	// element must come back unchanged and uncounted rather than abort.
	l := mustList(t, `[{"a": "x"}, "plain\":text"]`)

	out, count := transform.Replace(l, `":`, `!!`)

	require.Len(t, out, 2)
	assert.Equal(t, `{"a": "x"}`, string(out[0]))
	assert.Equal(t, `"plain!!text"`, string(out[1]))
	assert.Equal(t, 1, count)
}

func TestReplace_ScalarsUntouched(t *testing.T) {
	l := mustList(t, `[42, true, null]`)

	out, count := transform.Replace(l, "4", "9")

	assert.Equal(t, 0, count)
	assert.Equal(t, encoded(t, l), encoded(t, out))
}

func TestReplace_EmptyFindIsNoOp(t *testing.T) {
	// Validated upstream; the transform itself refuses to match everywhere.
	l := mustList(t, `["a", "b"]`)

	out, count := transform.Replace(l, "", "x")

	assert.Equal(t, 0, count)
	assert.Equal(t, encoded(t, l), encoded(t, out))
}

func TestReplace_RemoveSubstring(t *testing.T) {
	l := mustList(t, `["http://a.com/path"]`)

	out, count := transform.Replace(l, "http://", "")

	assert.Equal(t, 1, count)
	assert.Equal(t, `"a.com/path"`, string(out[0]))
}
