// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/zettel-export/internal/export"
	"github.com/pdiddy/zettel-export/pkg/types"
)

// testStore exports the given input files with the real exporter and
// opens a catalog over the result.
func testStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	tmp := t.TempDir()
	filesDir := filepath.Join(tmp, "files.md")
	require.NoError(t, os.Mkdir(filesDir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(filesDir, name), []byte(content), 0o644))
	}

	zettelDir := filepath.Join(tmp, "zettel")
	var log bytes.Buffer
	_, err := export.Run(types.ExportConfig{FilesDir: filesDir, ZettelDir: zettelDir}, &log)
	require.NoError(t, err)

	store, err := NewStore(types.CatalogConfig{ZettelDir: zettelDir})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func buildCatalog(t *testing.T, store *Store) BuildSummary {
	t.Helper()
	var log bytes.Buffer
	summary, err := store.Build(context.Background(), &log)
	require.NoError(t, err)
	return summary
}

func TestBuild(t *testing.T) {
	store := testStore(t, map[string]string{
		"apples.md":  "# Apples\n\nA note about apples.\n",
		"bananas.md": "# Bananas\n\nA note about bananas.\n",
	})

	summary := buildCatalog(t, store)
	assert.Equal(t, 2, summary.Indexed)
	assert.Zero(t, summary.Failed)

	results, err := store.Retrieve(context.Background(), QueryOptions{Role: "zettel"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Structured queries come back sorted by zid.
	assert.Equal(t, "19800101000000", results[0].Zid)
	assert.Equal(t, "Apples", results[0].Title)
	assert.Equal(t, "19800101000000 apples.md", results[0].ContentFile)
	assert.Equal(t, "19800101000100", results[1].Zid)
	assert.Equal(t, "Bananas", results[1].Title)
}

func TestBuildIsFullRebuild(t *testing.T) {
	store := testStore(t, map[string]string{"note.md": "text"})

	buildCatalog(t, store)
	summary := buildCatalog(t, store)

	assert.Equal(t, 1, summary.Indexed)
	results, err := store.Retrieve(context.Background(), QueryOptions{Role: "zettel"})
	require.NoError(t, err)
	assert.Len(t, results, 1, "rebuild must not duplicate rows")
}

func TestBuildIgnoresDatabaseFile(t *testing.T) {
	store := testStore(t, map[string]string{"note.md": "text"})

	// The db file lives inside the zettel directory; a second build
	// must not try to index it.
	buildCatalog(t, store)
	summary := buildCatalog(t, store)
	assert.Equal(t, 1, summary.Indexed)
	assert.Zero(t, summary.Failed)
}

func TestRetrieveFullText(t *testing.T) {
	store := testStore(t, map[string]string{
		"apples.md":  "Notes on growing apples in cold climates.\n",
		"bananas.md": "Notes on bananas.\n",
	})
	buildCatalog(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{Query: "climates"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Apples", results[0].Title)
}

func TestRetrieveByTitle(t *testing.T) {
	store := testStore(t, map[string]string{
		"apples.md":  "body one",
		"bananas.md": "body two",
	})
	buildCatalog(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{Query: "bananas"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bananas", results[0].Title)
}

func TestRetrieveMaxResults(t *testing.T) {
	store := testStore(t, map[string]string{
		"a.md": "x", "b.md": "x", "c.md": "x",
	})
	buildCatalog(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{Role: "zettel", MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{}.IsEmpty())
	assert.False(t, QueryOptions{Query: "x"}.IsEmpty())
	assert.False(t, QueryOptions{Role: "zettel"}.IsEmpty())
}

func TestExportYAML(t *testing.T) {
	store := testStore(t, map[string]string{"note.md": "text"})
	buildCatalog(t, store)

	var buf bytes.Buffer
	require.NoError(t, store.ExportYAML(context.Background(), QueryOptions{}, &buf))

	var entries []QueryResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "19800101000000", entries[0].Zid)
	assert.Equal(t, "Note", entries[0].Title)
	assert.Equal(t, "zettel", entries[0].Role)
	assert.Equal(t, "markdown", entries[0].Syntax)
}

func TestExportJSON(t *testing.T) {
	store := testStore(t, map[string]string{"note.md": "text"})
	buildCatalog(t, store)

	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(context.Background(), QueryOptions{}, &buf))

	var entries []QueryResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "19800101000000 note.md", entries[0].ContentFile)
}

func TestSplitMetaName(t *testing.T) {
	tests := []struct {
		name     string
		wantZid  string
		wantStem string
		wantOK   bool
	}{
		{"19800101000000 note", "19800101000000", "note", true},
		{"19800101000000 a_b", "19800101000000", "a_b", true},
		{"19800101000000 note.txt", "", "", false}, // content file
		{".catalog.db", "", "", false},
		{"19800101000000", "", "", false}, // no stem
		{"not-a-zid note", "", "", false},
	}
	for _, tt := range tests {
		zid, stem, ok := splitMetaName(tt.name)
		assert.Equal(t, tt.wantOK, ok, "name %q", tt.name)
		assert.Equal(t, tt.wantZid, string(zid), "name %q", tt.name)
		assert.Equal(t, tt.wantStem, stem, "name %q", tt.name)
	}
}

func TestNewStoreMissingDir(t *testing.T) {
	_, err := NewStore(types.CatalogConfig{ZettelDir: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "zettel directory"))
}
