// Package vendors is the registry of provider integrations. A vendor
// defines how a source's setup payload is structured and how its live
// model listing is fetched; the model registry itself treats setup as
// opaque and delegates all interpretation here.
package vendors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nulzo/model-registry-api/internal/registry"
)

// Vendor is one provider integration.
type Vendor interface {
	// ID is the stable vendor identifier referenced by ModelSource.VendorID.
	ID() string
	// Label is the display name shown when offering the vendor to users.
	Label() string
	// DefaultSetup returns the setup payload a freshly added source starts with.
	DefaultSetup() map[string]any
	// NormalizeSetup fills defaults and coerces fields on a setup payload.
	// It must not mutate its argument.
	NormalizeSetup(setup map[string]any) map[string]any
	// ListModels fetches the live model listing from the endpoint the
	// setup describes, mapped to registry models for the given source id.
	ListModels(ctx context.Context, sourceID string, setup map[string]any) ([]registry.Model, error)
}

var (
	mu      sync.RWMutex
	vendors = make(map[string]Vendor)
)

// Register makes a vendor integration available to the system.
// Called from init() in the vendor subpackages.
func Register(v Vendor) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := vendors[v.ID()]; exists {
		panic(fmt.Sprintf("vendor %s already registered", v.ID()))
	}
	vendors[v.ID()] = v
}

// ErrUnknownVendor is returned by Get for ids with no registered
// integration.
var ErrUnknownVendor = errors.New("unknown vendor")

// Get retrieves a vendor integration by id.
func Get(vendorID string) (Vendor, error) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := vendors[vendorID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVendor, vendorID)
	}
	return v, nil
}

// IDs returns the registered vendor ids in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()
	ids := make([]string, 0, len(vendors))
	for id := range vendors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetupString reads a string field from an opaque setup payload.
func SetupString(setup map[string]any, key string) string {
	if setup == nil {
		return ""
	}
	if v, ok := setup[key].(string); ok {
		return v
	}
	return ""
}
