package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/traffic-analysis-microservice/internal/domain"
	"github.com/traffic-analysis-microservice/internal/domain/repository"
	apperrors "github.com/traffic-analysis-microservice/internal/pkg/errors"
	"github.com/traffic-analysis-microservice/internal/pkg/utils"
	"go.uber.org/zap"
)

type roadRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRoadRepository creates the postgres-backed road registry.
func NewRoadRepository(db *DB, logger *zap.Logger) repository.RoadRepository {
	return &roadRepository{
		db:     db,
		logger: logger,
	}
}

// roadRow mirrors the roads table. Geometry is stored as an encoded
// polyline and decoded on read.
type roadRow struct {
	ID                string  `db:"id"`
	AreaID            string  `db:"area_id"`
	Name              string  `db:"name"`
	RoadType          string  `db:"road_type"`
	LengthKm          float64 `db:"length_km"`
	Lanes             int     `db:"lanes"`
	IntersectionCount int     `db:"intersection_count"`
	Polyline          string  `db:"polyline"`
}

const selectRoadColumns = `
	SELECT id, area_id, name, road_type, length_km, lanes,
	       COALESCE(intersection_count, 0) AS intersection_count,
	       COALESCE(polyline, '') AS polyline
	FROM roads
`

func (r *roadRepository) GetRoadsByArea(ctx context.Context, areaID string) ([]domain.RoadMetadata, error) {
	query := selectRoadColumns + ` WHERE area_id = $1 ORDER BY id`

	var rows []roadRow
	if err := r.db.SelectContext(ctx, &rows, query, areaID); err != nil {
		r.logger.Error("failed to query roads by area",
			zap.String("area_id", areaID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("query roads by area: %w", err)
	}

	roads := make([]domain.RoadMetadata, 0, len(rows))
	for _, row := range rows {
		roads = append(roads, row.toDomain())
	}
	return roads, nil
}

func (r *roadRepository) GetRoadByID(ctx context.Context, roadID string) (*domain.RoadMetadata, error) {
	query := selectRoadColumns + ` WHERE id = $1`

	var row roadRow
	if err := r.db.GetContext(ctx, &row, query, roadID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRoadNotFound
		}
		r.logger.Error("failed to query road",
			zap.String("road_id", roadID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("query road by id: %w", err)
	}

	road := row.toDomain()
	return &road, nil
}

func (row roadRow) toDomain() domain.RoadMetadata {
	points := utils.DecodePolyline(row.Polyline)
	geometry := make([]domain.Point, 0, len(points))
	for _, p := range points {
		geometry = append(geometry, domain.Point{Lat: p[0], Lon: p[1]})
	}

	return domain.RoadMetadata{
		ID:                row.ID,
		AreaID:            row.AreaID,
		Name:              row.Name,
		Type:              domain.RoadType(row.RoadType),
		LengthKm:          row.LengthKm,
		Lanes:             row.Lanes,
		IntersectionCount: row.IntersectionCount,
		Geometry:          geometry,
	}
}
