package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "registry.yaml"))

	state, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "registry.yaml")
	s := NewFileStore(path)
	ctx := context.Background()

	saved := registry.State{
		Sources: []registry.ModelSource{
			{ID: "ollama", Label: "Local Ollama", VendorID: "ollama", Setup: map[string]any{"base_url": "http://localhost:11434"}},
		},
		Models: []registry.Model{
			{UID: "ollama/llama3", SourceID: "ollama", SourceModelID: "llama3", Label: "Llama 3", CanChat: true, CanStream: true},
		},
	}
	require.NoError(t, s.Save(ctx, saved))

	// tmp file is cleaned up by the rename
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	state, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, saved.Sources, state.Sources)
	assert.Equal(t, saved.Models, state.Models)
}

func TestSave_WritesNamespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	s := NewFileStore(path)

	require.NoError(t, s.Save(context.Background(), registry.State{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), store.Namespace)
}

func TestSave_OverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, registry.State{
		Sources: []registry.ModelSource{{ID: "a", Label: "A", VendorID: "openai"}},
	}))
	require.NoError(t, s.Save(ctx, registry.State{
		Sources: []registry.ModelSource{{ID: "b", Label: "B", VendorID: "ollama"}},
	}))

	state, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, state.Sources, 1)
	assert.Equal(t, "b", state.Sources[0].ID)
}
