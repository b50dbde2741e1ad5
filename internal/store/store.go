// Package store defines the durable-storage contract for registry
// state. The registry itself is purely in-memory; a Store persists its
// snapshot under a single fixed namespace and restores it at startup.
package store

import (
	"context"

	"github.com/nulzo/model-registry-api/internal/registry"
)

// Namespace is the single key all backends persist registry state under.
const Namespace = "modelregistry:state"

// Store is the main contract for the persistence layer.
type Store interface {
	// Load returns the last saved state, or (nil, nil) when nothing has
	// ever been saved.
	Load(ctx context.Context) (*registry.State, error)
	// Save persists the full state, replacing any previous snapshot.
	Save(ctx context.Context, state registry.State) error

	Close() error
}
