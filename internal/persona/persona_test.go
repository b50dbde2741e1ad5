package persona

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownAndUnknown(t *testing.T) {
	rec, ok := Get(Developer)
	require.True(t, ok)
	assert.Equal(t, Developer, rec.ID)
	assert.NotEmpty(t, rec.SystemPrompt)

	_, ok = Get(ID("no-such-persona"))
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	rec := Default()
	assert.Equal(t, DefaultID, rec.ID)
}

func TestAll_StableOrderAndComplete(t *testing.T) {
	all := All()
	require.Len(t, all, len(catalog))

	ids := make([]string, len(all))
	for i, rec := range all {
		ids[i] = string(rec.ID)
	}
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestGet_ReturnsCopies(t *testing.T) {
	rec, _ := Get(Generic)
	require.NotEmpty(t, rec.ExamplePrompts)
	rec.ExamplePrompts[0] = "tampered"

	fresh, _ := Get(Generic)
	assert.NotEqual(t, "tampered", fresh.ExamplePrompts[0])
}

func TestResolvePlaceholders(t *testing.T) {
	out := ResolvePlaceholders("cutoff is {{Cutoff}}, model is {{Model}}", map[string]string{
		"Cutoff": "2025-01",
	})
	assert.Equal(t, "cutoff is 2025-01, model is {{Model}}", out)
}

func TestSystemPrompts_PlaceholdersResolvable(t *testing.T) {
	vars := map[string]string{"Cutoff": "2025-01"}
	for _, rec := range All() {
		resolved := ResolvePlaceholders(rec.SystemPrompt, vars)
		assert.NotContains(t, resolved, "{{Cutoff}}", "persona %s", rec.ID)
	}
}
