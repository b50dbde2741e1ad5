package registry

// Version returns the current state version. It starts at zero and is
// incremented by every mutation that actually changed state, which gives
// callers a cheap polling contract: re-read when the number moves.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Subscribe registers a watcher and returns a channel that receives the
// new version after each effective mutation, plus a cancel func. The
// send is non-blocking: a slow watcher misses intermediate versions but
// always observes a version at least as new as the last notification it
// got, so "poll JoinedModels on wakeup" stays correct.
func (r *Registry) Subscribe() (<-chan uint64, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	ch := make(chan uint64, 1)
	r.subs[id] = ch

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.subs[id]; ok {
			delete(r.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// bumpLocked increments the version and notifies subscribers.
// Callers must hold the write lock.
func (r *Registry) bumpLocked() {
	r.version++
	for _, ch := range r.subs {
		select {
		case ch <- r.version:
		default:
			// Channel already holds a pending notification. Drain it and
			// push the newer version so the watcher wakes up with the
			// latest number.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- r.version:
			default:
			}
		}
	}
}
