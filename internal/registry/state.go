package registry

// RestoreOptions controls how a persisted snapshot is applied.
type RestoreOptions struct {
	// PruneOrphans drops models whose source is missing from the
	// snapshot. Off by default: the live policy is to tolerate dangling
	// references and resolve them to UnknownSourceLabel at read time.
	PruneOrphans bool
}

// Snapshot returns a deep copy of the full registry state, suitable for
// handing to a store without racing later mutations.
func (r *Registry) Snapshot() State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return State{
		Sources: copySources(r.sources),
		Models:  copyModels(r.models),
	}
}

// Restore replaces the registry contents with the given state. Used once
// at startup to rehydrate from the durable store. Bumps the version so
// watchers attached before the restore see it.
func (r *Registry) Restore(state State, opts RestoreOptions) {
	sources := copySources(state.Sources)
	models := copyModels(state.Models)

	if opts.PruneOrphans {
		known := make(map[string]struct{}, len(sources))
		for _, s := range sources {
			known[s.ID] = struct{}{}
		}
		kept := models[:0]
		for _, m := range models {
			if _, ok := known[m.SourceID]; ok {
				kept = append(kept, m)
			}
		}
		models = kept
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = sources
	r.models = models
	r.bumpLocked()
}
