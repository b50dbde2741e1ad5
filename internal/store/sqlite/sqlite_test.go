package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "registry.db")
	s, err := NewSQLiteStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.(*SQLiteStore)
}

func TestLoad_NeverSaved(t *testing.T) {
	s := newTestStore(t)

	state, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved := registry.State{
		Sources: []registry.ModelSource{
			{ID: "openai", Label: "OpenAI", VendorID: "openai", Setup: map[string]any{"api_key": "sk-test"}},
			{ID: "ollama", Label: "Local", VendorID: "ollama"},
		},
		Models: []registry.Model{
			{UID: "openai/gpt-4o", SourceID: "openai", SourceModelID: "gpt-4o", Label: "GPT-4o", ContextWindowSize: 128000, CanStream: true, CanChat: true},
			{UID: "ollama/llama3", SourceID: "ollama", SourceModelID: "llama3", Label: "Llama 3", CanChat: true},
		},
	}
	require.NoError(t, s.Save(ctx, saved))

	state, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, saved.Sources, state.Sources)
	assert.Equal(t, saved.Models, state.Models)
}

func TestSave_EmptyStateIsDistinctFromUnsaved(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, registry.State{}))

	state, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Empty(t, state.Sources)
	assert.Empty(t, state.Models)
}

func TestSave_ReplacesSnapshot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, registry.State{
		Sources: []registry.ModelSource{{ID: "a", Label: "A", VendorID: "openai"}},
		Models:  []registry.Model{{UID: "a/m", SourceID: "a", SourceModelID: "m", Label: "M"}},
	}))
	require.NoError(t, s.Save(ctx, registry.State{
		Sources: []registry.ModelSource{{ID: "b", Label: "B", VendorID: "ollama"}},
	}))

	state, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, state.Sources, 1)
	assert.Equal(t, "b", state.Sources[0].ID)
	assert.Empty(t, state.Models)
}

func TestLoad_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved := registry.State{
		Sources: []registry.ModelSource{
			{ID: "z", Label: "Z", VendorID: "openai"},
			{ID: "a", Label: "A", VendorID: "openai"},
			{ID: "m", Label: "M", VendorID: "ollama"},
		},
	}
	require.NoError(t, s.Save(ctx, saved))

	state, err := s.Load(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(state.Sources))
	for _, src := range state.Sources {
		ids = append(ids, src.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}
