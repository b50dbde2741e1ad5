package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/vendors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVendor struct {
	id     string
	models []registry.Model
	err    error
}

func (f *fakeVendor) ID() string                   { return f.id }
func (f *fakeVendor) Label() string                { return f.id }
func (f *fakeVendor) DefaultSetup() map[string]any { return nil }
func (f *fakeVendor) NormalizeSetup(setup map[string]any) map[string]any {
	return setup
}
func (f *fakeVendor) ListModels(_ context.Context, sourceID string, _ map[string]any) ([]registry.Model, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]registry.Model, len(f.models))
	for i, m := range f.models {
		m.SourceID = sourceID
		out[i] = m
	}
	return out, nil
}

func TestDiscoverSource(t *testing.T) {
	vendors.Register(&fakeVendor{
		id: "fake-discovery",
		models: []registry.Model{
			{UID: "s1/a", SourceModelID: "a", Label: "a"},
			{UID: "s1/b", SourceModelID: "b", Label: "b"},
		},
	})

	reg := registry.New()
	reg.AddSource(registry.ModelSource{ID: "s1", Label: "Fake", VendorID: "fake-discovery"})

	svc := NewService(zap.NewNop(), reg)
	count, err := svc.DiscoverSource(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, reg.Models(), 2)

	// re-discovery replaces by uid instead of duplicating
	count, err = svc.DiscoverSource(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, reg.Models(), 2)
}

func TestDiscoverSource_UnknownSource(t *testing.T) {
	svc := NewService(zap.NewNop(), registry.New())
	_, err := svc.DiscoverSource(context.Background(), "missing")
	assert.Error(t, err)
}

func TestDiscoverSource_UnknownVendor(t *testing.T) {
	reg := registry.New()
	reg.AddSource(registry.ModelSource{ID: "s1", Label: "X", VendorID: "unregistered"})

	svc := NewService(zap.NewNop(), reg)
	_, err := svc.DiscoverSource(context.Background(), "s1")
	assert.Error(t, err)
}

func TestDiscoverSource_VendorFailure(t *testing.T) {
	vendors.Register(&fakeVendor{id: "fake-broken", err: errors.New("connection refused")})

	reg := registry.New()
	reg.AddSource(registry.ModelSource{ID: "s1", Label: "X", VendorID: "fake-broken"})

	svc := NewService(zap.NewNop(), reg)
	_, err := svc.DiscoverSource(context.Background(), "s1")
	require.Error(t, err)
	assert.Empty(t, reg.Models())
}
