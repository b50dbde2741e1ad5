package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource(id, label, vendor string) ModelSource {
	return ModelSource{ID: id, Label: label, VendorID: vendor}
}

func testModel(uid, sourceID string) Model {
	return Model{UID: uid, SourceID: sourceID, SourceModelID: uid, Label: uid}
}

func TestAddModels_ReplaceByUID(t *testing.T) {
	r := New()

	r.AddModels(Model{UID: "m1", Label: "first"})
	r.AddModels(Model{UID: "m2", Label: "second"})
	r.AddModels(Model{UID: "m1", Label: "updated"})

	models := r.Models()
	require.Len(t, models, 2)

	// replacement is remove-then-append, so m1 moved to the end
	assert.Equal(t, "m2", models[0].UID)
	assert.Equal(t, "m1", models[1].UID)
	assert.Equal(t, "updated", models[1].Label)
}

func TestAddModels_ToleratesUnknownSource(t *testing.T) {
	r := New()

	// source not registered yet; insert must not be rejected
	r.AddModels(testModel("m1", "not-yet-there"))
	assert.Len(t, r.Models(), 1)
}

func TestRemoveModel_NoopWhenAbsent(t *testing.T) {
	r := New()
	r.AddModels(testModel("m1", "s1"))

	before := r.Version()
	r.RemoveModel("nope")
	assert.Equal(t, before, r.Version())
	assert.Len(t, r.Models(), 1)

	r.RemoveModel("m1")
	assert.Empty(t, r.Models())
}

func TestRemoveSource_Cascades(t *testing.T) {
	r := New()
	r.AddSource(testSource("openai", "OpenAI", "openai"))
	r.AddSource(testSource("ollama", "Ollama", "ollama"))
	r.AddModels(
		testModel("m1", "openai"),
		testModel("m2", "openai"),
		testModel("m3", "ollama"),
	)

	r.RemoveSource("openai")

	require.Len(t, r.Sources(), 1)
	for _, j := range r.JoinedModels() {
		assert.NotEqual(t, "openai", j.Model.SourceID)
	}
	assert.Len(t, r.Models(), 1)
	assert.Equal(t, "m3", r.Models()[0].UID)
}

func TestRemoveSource_SweepsDanglingModels(t *testing.T) {
	r := New()
	r.AddModels(testModel("m1", "ghost"))

	// no such source, but dependents go anyway
	r.RemoveSource("ghost")
	assert.Empty(t, r.Models())
}

func TestUpdateSourceSetup_ShallowMerge(t *testing.T) {
	r := New()
	r.AddSource(ModelSource{ID: "s1", Label: "S1", VendorID: "openai"})

	r.UpdateSourceSetup("s1", map[string]any{"a": 1})
	r.UpdateSourceSetup("s1", map[string]any{"b": 2})

	src, ok := r.Source("s1")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, src.Setup)

	// overlay is one level deep: a nested map is replaced wholesale
	r.UpdateSourceSetup("s1", map[string]any{"b": map[string]any{"x": true}})
	src, _ = r.Source("s1")
	assert.Equal(t, map[string]any{"x": true}, src.Setup["b"])
}

func TestUpdateSourceSetup_NoopWhenAbsent(t *testing.T) {
	r := New()
	before := r.Version()
	r.UpdateSourceSetup("missing", map[string]any{"a": 1})
	assert.Equal(t, before, r.Version())
}

func TestJoinedModels_ResolvesAndFallsBack(t *testing.T) {
	r := New()
	r.AddSource(testSource("openai", "OpenAI", "openai"))
	r.AddModels(
		testModel("m1", "openai"),
		testModel("m2", "gone"),
	)

	joined := r.JoinedModels()
	require.Len(t, joined, 2)

	assert.Equal(t, "OpenAI", joined[0].SourceLabel)
	assert.Equal(t, "openai", joined[0].VendorID)

	assert.Equal(t, UnknownSourceLabel, joined[1].SourceLabel)
	assert.Empty(t, joined[1].VendorID)
}

func TestFindUniqueSourceID(t *testing.T) {
	id, count := FindUniqueSourceID("openai", nil)
	assert.Equal(t, "openai", id)
	assert.Zero(t, count)

	sources := []ModelSource{testSource("openai", "OpenAI", "openai")}
	id, count = FindUniqueSourceID("openai", sources)
	assert.Equal(t, "openai-1", id)
	assert.Equal(t, 1, count)

	sources = append(sources, testSource("openai-1", "OpenAI 2", "openai"))
	id, count = FindUniqueSourceID("openai", sources)
	assert.Equal(t, "openai-2", id)
	assert.Equal(t, 2, count)

	// never returns an id already present in the input
	for _, s := range sources {
		assert.NotEqual(t, s.ID, id)
	}
}

func TestAddSourceWithMintedID(t *testing.T) {
	r := New()

	id, collisions := r.AddSourceWithMintedID(ModelSource{Label: "First", VendorID: "openai"})
	assert.Equal(t, "openai", id)
	assert.Zero(t, collisions)

	id, collisions = r.AddSourceWithMintedID(ModelSource{Label: "Second", VendorID: "openai"})
	assert.Equal(t, "openai-1", id)
	assert.Equal(t, 1, collisions)

	src, ok := r.Source("openai-1")
	require.True(t, ok)
	assert.Equal(t, "Second", src.Label)
}

func TestAddSourceWithMintedID_ConcurrentIDsStayUnique(t *testing.T) {
	r := New()

	const n = 64
	ids := make(chan string, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			id, _ := r.AddSourceWithMintedID(ModelSource{Label: "Racer", VendorID: "openai"})
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]int, n)
	for id := range ids {
		seen[id]++
	}
	assert.Len(t, seen, n)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "id %s minted %d times", id, count)
	}
	assert.Len(t, r.Sources(), n)
}

func TestVersionAndSubscribe(t *testing.T) {
	r := New()
	assert.Zero(t, r.Version())

	ch, cancel := r.Subscribe()
	defer cancel()

	r.AddSource(testSource("s1", "S1", "v1"))
	assert.Equal(t, uint64(1), r.Version())
	assert.Equal(t, uint64(1), <-ch)

	// burst of mutations: a slow watcher sees the latest version only
	r.AddModels(testModel("m1", "s1"))
	r.AddModels(testModel("m2", "s1"))
	r.RemoveModel("m1")
	assert.Equal(t, uint64(4), <-ch)
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	r := New()
	ch, cancel := r.Subscribe()
	cancel()
	cancel() // idempotent

	_, open := <-ch
	assert.False(t, open)

	// mutation after cancel must not panic on the closed channel
	r.AddSource(testSource("s1", "S1", "v1"))
}

func TestRestore(t *testing.T) {
	r := New()
	state := State{
		Sources: []ModelSource{testSource("openai", "OpenAI", "openai")},
		Models: []Model{
			testModel("m1", "openai"),
			testModel("m2", "removed-source"),
		},
	}

	r.Restore(state, RestoreOptions{})
	assert.Len(t, r.Models(), 2)
	assert.Equal(t, uint64(1), r.Version())

	r2 := New()
	r2.Restore(state, RestoreOptions{PruneOrphans: true})
	require.Len(t, r2.Models(), 1)
	assert.Equal(t, "m1", r2.Models()[0].UID)
}

func TestSnapshot_IsDetached(t *testing.T) {
	r := New()
	r.AddSource(ModelSource{ID: "s1", Label: "S1", VendorID: "v1", Setup: map[string]any{"k": "v"}})

	snap := r.Snapshot()
	snap.Sources[0].Setup["k"] = "mutated"

	src, _ := r.Source("s1")
	assert.Equal(t, "v", src.Setup["k"])
}
