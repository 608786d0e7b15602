// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/course-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.ArchiveConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestIngestAndSearch(t *testing.T) {
	store := newTestStore(t)

	agenda := types.Agenda{"Intro to Widgets", "Advanced Widgets"}
	transcripts := map[types.Module]types.GeneratedTranscript{
		"Intro to Widgets": "# Intro to Widgets\n\nThis is a generated script for module: Intro to Widgets.",
		"Advanced Widgets": "# Advanced Widgets\n\nThis is a generated script for module: Advanced Widgets.",
	}

	summary, err := store.Ingest(context.Background(), agenda, transcripts, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Archived)
	assert.Equal(t, 0, summary.Updated)
	assert.False(t, summary.HasFailures())

	results, err := store.Search(context.Background(), "widgets", 0)
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = store.Search(context.Background(), "advanced", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, types.Module("Advanced Widgets"), results[0].Module)
	assert.Equal(t, "advanced-widgets", results[0].Slug)
}

func TestIngestReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	agenda := types.Agenda{"Intro"}

	_, err := store.Ingest(context.Background(), agenda,
		map[types.Module]types.GeneratedTranscript{"Intro": "first version"}, io.Discard)
	require.NoError(t, err)

	summary, err := store.Ingest(context.Background(), agenda,
		map[types.Module]types.GeneratedTranscript{"Intro": "second version"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 0, summary.Archived)

	results, err := store.Search(context.Background(), "version", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Snippet, "second")
}

func TestIngestDuplicateAgendaKeepsFirst(t *testing.T) {
	store := newTestStore(t)

	summary, err := store.Ingest(context.Background(), types.Agenda{"Repeat", "Repeat"},
		map[types.Module]types.GeneratedTranscript{"Repeat": "content"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total())
}

func TestIngestWritesExport(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(types.ArchiveConfig{Dir: dir})
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Ingest(context.Background(), types.Agenda{"Intro"},
		map[types.Module]types.GeneratedTranscript{"Intro": "content"}, io.Discard)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "index", "export.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "module: Intro")
}

func TestSearchEmptyQuery(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Search(context.Background(), "", 0)
	assert.Error(t, err)
}

func TestSearchMaxResults(t *testing.T) {
	store := newTestStore(t)

	agenda := types.Agenda{"One", "Two", "Three"}
	transcripts := map[types.Module]types.GeneratedTranscript{
		"One":   "shared term",
		"Two":   "shared term",
		"Three": "shared term",
	}
	_, err := store.Ingest(context.Background(), agenda, transcripts, io.Discard)
	require.NoError(t, err)

	results, err := store.Search(context.Background(), "shared", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
