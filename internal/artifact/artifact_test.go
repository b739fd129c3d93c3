package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestWriteAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "data")
	w := NewWriter(dir)

	path, err := w.Write("doc.json", doc{Name: "a", Value: 1.5})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "doc.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"value\": 1.5\n}\n", string(raw))

	var got doc
	require.NoError(t, Read(path, &got))
	assert.Equal(t, doc{Name: "a", Value: 1.5}, got)
}

func TestReadErrors(t *testing.T) {
	var d doc
	assert.Error(t, Read(filepath.Join(t.TempDir(), "missing.json"), &d))

	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o644))
	assert.Error(t, Read(p, &d))
}

func TestStamp(t *testing.T) {
	w := NewWriter(t.TempDir())
	w.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600)) }
	assert.Equal(t, "2025-03-01T11:00:00Z", w.Stamp())
}

func TestWriteUnencodable(t *testing.T) {
	_, err := NewWriter(t.TempDir()).Write("bad.json", map[string]any{"f": func() {}})
	assert.Error(t, err)
}
