package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/traffic-analysis-microservice/internal/domain"
	"github.com/traffic-analysis-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type sampleRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSampleRepository creates the postgres-backed traffic sample store.
func NewSampleRepository(db *DB, logger *zap.Logger) repository.SampleRepository {
	return &sampleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sampleRepository) GetSamples(ctx context.Context, roadID string, since time.Time) ([]domain.TrafficSample, error) {
	query := `
		SELECT road_id, recorded_at, speed_kmph, free_flow_kmph, vehicle_count
		FROM traffic_samples
		WHERE road_id = $1 AND recorded_at >= $2
		ORDER BY recorded_at
	`

	var samples []domain.TrafficSample
	if err := r.db.SelectContext(ctx, &samples, query, roadID, since); err != nil {
		r.logger.Error("failed to query samples",
			zap.String("road_id", roadID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("query samples: %w", err)
	}
	return samples, nil
}

// GetSamplesForRoads fetches a whole area's samples in one round trip.
// Roads without data simply have no key in the result.
func (r *sampleRepository) GetSamplesForRoads(ctx context.Context, roadIDs []string, since time.Time) (map[string][]domain.TrafficSample, error) {
	if len(roadIDs) == 0 {
		return map[string][]domain.TrafficSample{}, nil
	}

	query := `
		SELECT road_id, recorded_at, speed_kmph, free_flow_kmph, vehicle_count
		FROM traffic_samples
		WHERE road_id = ANY($1) AND recorded_at >= $2
		ORDER BY road_id, recorded_at
	`

	var samples []domain.TrafficSample
	if err := r.db.SelectContext(ctx, &samples, query, pq.Array(roadIDs), since); err != nil {
		r.logger.Error("failed to query samples batch",
			zap.Int("road_count", len(roadIDs)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("query samples batch: %w", err)
	}

	result := make(map[string][]domain.TrafficSample, len(roadIDs))
	for _, s := range samples {
		result[s.RoadID] = append(result[s.RoadID], s)
	}
	return result, nil
}
