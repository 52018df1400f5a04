package repository

import (
	"context"
	"time"

	"github.com/traffic-analysis-microservice/internal/domain"
)

// SampleRepository is the traffic sample store contract. An empty result is
// a valid state ("no data"), not an error.
type SampleRepository interface {
	// GetSamples returns all samples of one road recorded at or after since,
	// ordered by timestamp ascending.
	GetSamples(ctx context.Context, roadID string, since time.Time) ([]domain.TrafficSample, error)

	// GetSamplesForRoads fetches samples for a batch of roads in one query,
	// keyed by road ID. Roads without data are absent from the map.
	GetSamplesForRoads(ctx context.Context, roadIDs []string, since time.Time) (map[string][]domain.TrafficSample, error)
}
