package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenNestedObjects(t *testing.T) {
	root := map[string]any{
		"a": map[string]any{
			"b": "v1",
			"c": map[string]any{
				"d": "v2",
			},
		},
	}

	dict := Flatten(root)
	assert.Equal(t, Dictionary{"a.b": "v1", "a.c.d": "v2"}, dict)
}

func TestFlattenTreatsArraysAsLeaves(t *testing.T) {
	root := map[string]any{
		"menu": map[string]any{
			"items": []any{"one", "two"},
		},
		"count": float64(3),
	}

	dict := Flatten(root)
	assert.Equal(t, `["one","two"]`, dict["menu.items"])
	assert.Equal(t, "3", dict["count"])
	assert.NotContains(t, dict, "menu.items.0")
}

func TestLoadFlattensFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.json")
	content := `{"errors": {"save": {"failed": "Saving failed"}}, "title": "App"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	dict, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Saving failed", dict["errors.save.failed"])
	assert.Equal(t, "App", dict["title"])
}

func TestLoadMissingFileReturnsEmptyDictionary(t *testing.T) {
	dict, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Empty(t, dict)
	assert.NotNil(t, dict)
}

func TestLoadMalformedFileReturnsEmptyDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	dict, err := Load(path)
	assert.Error(t, err)
	assert.Empty(t, dict)
}

func TestLookup(t *testing.T) {
	dict := Dictionary{"a.b": "v"}

	v, ok := dict.Lookup("a.b")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = dict.Lookup("a.missing")
	assert.False(t, ok)
}
