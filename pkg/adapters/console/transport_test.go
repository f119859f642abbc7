package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2]`), 0o644))

	tr := New(dir, WithOutput(&bytes.Buffer{}))

	data, err := tr.FetchDocument(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, `[1, 2]`, string(data))

	_, err = tr.FetchDocument(context.Background(), filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestSendMessagePlain(t *testing.T) {
	var buf bytes.Buffer
	tr := New(t.TempDir(), WithOutput(&buf))

	require.NoError(t, tr.SendMessage(context.Background(), "local", "*hello*"))

	// A non-terminal writer gets the raw Markdown.
	assert.Equal(t, "*hello*\n", buf.String())
}

func TestSendFile(t *testing.T) {
	var buf bytes.Buffer
	dir := filepath.Join(t.TempDir(), "out")
	tr := New(dir, WithOutput(&buf))

	err := tr.SendFile(context.Background(), "local", "Part_1.json", []byte(`[1]`), "Part 1 (1)")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Part_1.json"))
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(data))

	assert.Contains(t, buf.String(), "Part 1 (1)")
	assert.Contains(t, buf.String(), "Part_1.json")
}
