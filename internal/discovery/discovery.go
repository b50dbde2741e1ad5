// Package discovery syncs a source's live model listing into the
// registry. Discovery is user-triggered (add a provider, hit refresh);
// there is no background polling.
package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/vendors"
	"go.uber.org/zap"
)

// ErrSourceNotFound is returned when discovery targets a source id the
// registry does not hold.
var ErrSourceNotFound = errors.New("source not found")

type Service struct {
	logger   *zap.Logger
	registry *registry.Registry
}

func NewService(logger *zap.Logger, reg *registry.Registry) *Service {
	return &Service{
		logger:   logger,
		registry: reg,
	}
}

// DiscoverSource fetches the live listing for the given source and
// inserts it into the registry. Models discovered earlier keep their
// UID, so re-discovery replaces rather than duplicates. Returns how
// many models the source advertised.
func (s *Service) DiscoverSource(ctx context.Context, sourceID string) (int, error) {
	src, ok := s.registry.Source(sourceID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrSourceNotFound, sourceID)
	}

	vendor, err := vendors.Get(src.VendorID)
	if err != nil {
		return 0, err
	}

	models, err := vendor.ListModels(ctx, src.ID, src.Setup)
	if err != nil {
		return 0, fmt.Errorf("discovery failed for %s: %w", src.ID, err)
	}

	s.registry.AddModels(models...)

	s.logger.Info("Discovery complete",
		zap.String("source", src.ID),
		zap.String("vendor", src.VendorID),
		zap.Int("models_count", len(models)),
	)
	return len(models), nil
}
