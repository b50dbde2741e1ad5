package registry

import (
	"fmt"
	"sync"
)

// Registry maintains the two ordered collections behind the model picker:
// configured sources and the models they advertise. It is constructed
// explicitly and injected wherever it is needed; there is no package
// global. All operations are total: a missing id degrades to a no-op on
// writes and a sentinel on reads, never an error.
//
// It is thread-safe. RemoveSource cascades under a single write lock, so
// no reader can observe a source gone while a dependent model remains.
type Registry struct {
	mu      sync.RWMutex
	sources []ModelSource
	models  []Model

	version uint64
	subs    map[int]chan uint64
	nextSub int
}

func New() *Registry {
	return &Registry{
		subs: make(map[int]chan uint64),
	}
}

// AddModels inserts the given models. An incoming model whose UID matches
// an existing one replaces it with remove-then-append semantics; new UIDs
// append at the end. SourceID is not checked against the source list: a
// model may reference a source that has not been registered yet.
func (r *Registry) AddModels(models ...Model) {
	if len(models) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range models {
		for i, existing := range r.models {
			if existing.UID == m.UID {
				r.models = append(r.models[:i], r.models[i+1:]...)
				break
			}
		}
		r.models = append(r.models, m)
	}
	r.bumpLocked()
}

// RemoveModel removes the model with the given UID. No-op if absent.
func (r *Registry) RemoveModel(uid string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.models {
		if m.UID == uid {
			r.models = append(r.models[:i], r.models[i+1:]...)
			r.bumpLocked()
			return
		}
	}
}

// AddSource appends a source. The caller is responsible for ID
// uniqueness; use FindUniqueSourceID to mint one. No de-duplication is
// performed here.
func (r *Registry) AddSource(src ModelSource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sources = append(r.sources, copySource(src))
	r.bumpLocked()
}

// AddSourceWithMintedID mints a free id for the source's vendor and
// appends in one critical section, so concurrent callers can never mint
// the same id. src.ID is ignored; the minted id is returned together
// with the number of collisions encountered.
func (r *Registry) AddSourceWithMintedID(src ModelSource) (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, collisions := FindUniqueSourceID(src.VendorID, r.sources)
	src.ID = id
	r.sources = append(r.sources, copySource(src))
	r.bumpLocked()
	return id, collisions
}

// RemoveSource removes the source and every model referencing it. The
// cascade happens under one write lock: source and dependents disappear
// together. No-op if the source is absent, but dependent models are
// still swept so removing a dangling id twice stays harmless.
func (r *Registry) RemoveSource(sourceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := false
	for i, s := range r.sources {
		if s.ID == sourceID {
			r.sources = append(r.sources[:i], r.sources[i+1:]...)
			changed = true
			break
		}
	}

	kept := r.models[:0]
	for _, m := range r.models {
		if m.SourceID == sourceID {
			changed = true
			continue
		}
		kept = append(kept, m)
	}
	r.models = kept

	if changed {
		r.bumpLocked()
	}
}

// UpdateSourceSetup shallow-merges partial into the setup of the matching
// source. One-level field overlay, not a deep merge. No-op if absent.
func (r *Registry) UpdateSourceSetup(sourceID string, partial map[string]any) {
	if len(partial) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sources {
		if r.sources[i].ID != sourceID {
			continue
		}
		merged := copySetup(r.sources[i].Setup)
		if merged == nil {
			merged = make(map[string]any, len(partial))
		}
		for k, v := range partial {
			merged[k] = v
		}
		r.sources[i].Setup = merged
		r.bumpLocked()
		return
	}
}

// JoinedModels resolves every model against the current source list and
// returns (model, source label, vendor id) tuples. Recomputed on every
// call; a missing source yields UnknownSourceLabel and an empty vendor.
func (r *Registry) JoinedModels() []JoinedModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := make(map[string]ModelSource, len(r.sources))
	for _, s := range r.sources {
		byID[s.ID] = s
	}

	joined := make([]JoinedModel, 0, len(r.models))
	for _, m := range r.models {
		j := JoinedModel{Model: m, SourceLabel: UnknownSourceLabel}
		if src, ok := byID[m.SourceID]; ok {
			j.SourceLabel = src.Label
			j.VendorID = src.VendorID
		}
		joined = append(joined, j)
	}
	return joined
}

// Sources returns a copy of the source list in insertion order.
func (r *Registry) Sources() []ModelSource {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySources(r.sources)
}

// Models returns a copy of the model list in insertion order.
func (r *Registry) Models() []Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyModels(r.models)
}

// Source looks up a source by id.
func (r *Registry) Source(id string) (ModelSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sources {
		if s.ID == id {
			return copySource(s), true
		}
	}
	return ModelSource{}, false
}

// Model looks up a model by uid.
func (r *Registry) Model(uid string) (Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.models {
		if m.UID == uid {
			return m, true
		}
	}
	return Model{}, false
}

// FindUniqueSourceID produces a source id that does not collide with any
// entry in existing: vendorID itself, then vendorID-1, vendorID-2, and
// so on. Returns the chosen id and the number of collisions encountered.
// Pure function, no side effects.
func FindUniqueSourceID(vendorID string, existing []ModelSource) (string, int) {
	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s.ID] = struct{}{}
	}

	candidate := vendorID
	collisions := 0
	for {
		if _, clash := taken[candidate]; !clash {
			return candidate, collisions
		}
		collisions++
		candidate = fmt.Sprintf("%s-%d", vendorID, collisions)
	}
}
