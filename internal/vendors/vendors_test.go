package vendors_test

import (
	"context"
	"testing"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/vendors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/nulzo/model-registry-api/internal/vendors/ollama"
	_ "github.com/nulzo/model-registry-api/internal/vendors/openai"
)

type stubVendor struct{ id string }

func (s *stubVendor) ID() string                  { return s.id }
func (s *stubVendor) Label() string               { return s.id }
func (s *stubVendor) DefaultSetup() map[string]any { return nil }
func (s *stubVendor) NormalizeSetup(setup map[string]any) map[string]any {
	return setup
}
func (s *stubVendor) ListModels(context.Context, string, map[string]any) ([]registry.Model, error) {
	return nil, nil
}

func TestRegisterAndGet(t *testing.T) {
	vendors.Register(&stubVendor{id: "stub-vendor"})

	v, err := vendors.Get("stub-vendor")
	require.NoError(t, err)
	assert.Equal(t, "stub-vendor", v.ID())

	_, err = vendors.Get("missing-vendor")
	assert.Error(t, err)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	vendors.Register(&stubVendor{id: "dup-vendor"})
	assert.Panics(t, func() {
		vendors.Register(&stubVendor{id: "dup-vendor"})
	})
}

func TestIDs_IncludesBuiltins(t *testing.T) {
	ids := vendors.IDs()
	assert.Contains(t, ids, "openai")
	assert.Contains(t, ids, "ollama")
	assert.IsIncreasing(t, ids)
}

func TestSetupString(t *testing.T) {
	assert.Empty(t, vendors.SetupString(nil, "k"))
	assert.Empty(t, vendors.SetupString(map[string]any{"k": 1}, "k"))
	assert.Equal(t, "v", vendors.SetupString(map[string]any{"k": "v"}, "k"))
}
