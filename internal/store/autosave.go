package store

import (
	"context"
	"time"

	"github.com/nulzo/model-registry-api/internal/registry"
	"go.uber.org/zap"
)

// Autosaver persists registry snapshots after mutations. Persistence is
// asynchronous relative to the in-memory mutation: the registry never
// waits on the store, and a burst of edits collapses into one write via
// the debounce interval.
type Autosaver struct {
	logger   *zap.Logger
	registry *registry.Registry
	store    Store
	debounce time.Duration
}

func NewAutosaver(logger *zap.Logger, reg *registry.Registry, s Store, debounce time.Duration) *Autosaver {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Autosaver{
		logger:   logger,
		registry: reg,
		store:    s,
		debounce: debounce,
	}
}

// Run blocks until ctx is cancelled, saving a snapshot after each burst
// of mutations. A final save is attempted on shutdown so the last edits
// are not lost.
func (a *Autosaver) Run(ctx context.Context) {
	versions, cancel := a.registry.Subscribe()
	defer cancel()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
			a.save(flushCtx)
			cancelFlush()
			return

		case _, ok := <-versions:
			if !ok {
				return
			}
			if timer == nil {
				timer = time.NewTimer(a.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(a.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			a.save(ctx)
		}
	}
}

func (a *Autosaver) save(ctx context.Context) {
	snap := a.registry.Snapshot()
	if err := a.store.Save(ctx, snap); err != nil {
		a.logger.Error("Failed to persist registry state",
			zap.Int("sources", len(snap.Sources)),
			zap.Int("models", len(snap.Models)),
			zap.Error(err),
		)
		return
	}
	a.logger.Debug("Registry state persisted",
		zap.Int("sources", len(snap.Sources)),
		zap.Int("models", len(snap.Models)),
	)
}
