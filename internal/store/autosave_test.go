package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/store"
	"github.com/nulzo/model-registry-api/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func waitForState(t *testing.T, s store.Store, cond func(*registry.State) bool) *registry.State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		state, err := s.Load(context.Background())
		require.NoError(t, err)
		if state != nil && cond(state) {
			return state
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("store never reached expected state")
	return nil
}

func TestAutosaver_PersistsAfterMutation(t *testing.T) {
	reg := registry.New()
	s := memory.NewMemoryStore()
	saver := store.NewAutosaver(zap.NewNop(), reg, s, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		saver.Run(ctx)
		close(done)
	}()

	reg.AddSource(registry.ModelSource{ID: "openai", Label: "OpenAI", VendorID: "openai"})

	state := waitForState(t, s, func(st *registry.State) bool { return len(st.Sources) == 1 })
	assert.Equal(t, "openai", state.Sources[0].ID)

	cancel()
	<-done
}

func TestAutosaver_CollapsesBurst(t *testing.T) {
	reg := registry.New()
	s := memory.NewMemoryStore()
	saver := store.NewAutosaver(zap.NewNop(), reg, s, 30*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		saver.Run(ctx)
		close(done)
	}()

	reg.AddSource(registry.ModelSource{ID: "a", Label: "A", VendorID: "openai"})
	reg.AddSource(registry.ModelSource{ID: "b", Label: "B", VendorID: "openai"})
	reg.AddSource(registry.ModelSource{ID: "c", Label: "C", VendorID: "ollama"})

	// the debounced write carries all three edits
	waitForState(t, s, func(st *registry.State) bool { return len(st.Sources) == 3 })

	cancel()
	<-done
}

func TestAutosaver_FlushesOnShutdown(t *testing.T) {
	reg := registry.New()
	s := memory.NewMemoryStore()
	// long debounce so only the shutdown flush can persist the edit
	saver := store.NewAutosaver(zap.NewNop(), reg, s, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		saver.Run(ctx)
		close(done)
	}()

	reg.AddSource(registry.ModelSource{ID: "openai", Label: "OpenAI", VendorID: "openai"})
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	state, err := s.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Len(t, state.Sources, 1)
}
