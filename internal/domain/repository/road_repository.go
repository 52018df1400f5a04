package repository

import (
	"context"

	"github.com/traffic-analysis-microservice/internal/domain"
)

// RoadRepository is the road registry contract. Metadata is read-only to
// the analysis side.
type RoadRepository interface {
	// GetRoadsByArea returns every registered road of an area.
	GetRoadsByArea(ctx context.Context, areaID string) ([]domain.RoadMetadata, error)

	// GetRoadByID returns one road or ErrRoadNotFound.
	GetRoadByID(ctx context.Context, roadID string) (*domain.RoadMetadata, error)
}
