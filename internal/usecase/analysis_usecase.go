package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/traffic-analysis-microservice/internal/analysis"
	"github.com/traffic-analysis-microservice/internal/domain"
	"github.com/traffic-analysis-microservice/internal/domain/repository"
	apperrors "github.com/traffic-analysis-microservice/internal/pkg/errors"
	"github.com/traffic-analysis-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// One batch query covers this many roads; batches run concurrently up to
// the configured bound so the sample store is not overwhelmed.
const sampleFetchChunkSize = 25

// AnalysisUseCase orchestrates the analysis boundary: window validation,
// cache-aside, bounded sample fan-out, per-road isolation and aggregation.
// The engine underneath is pure; everything stateful lives here.
type AnalysisUseCase struct {
	roadRepo   repository.RoadRepository
	sampleRepo repository.SampleRepository
	cacheRepo  repository.CacheRepository
	engine     *analysis.Engine
	logger     *zap.Logger

	cacheTTL           time.Duration
	maxConcurrentRoads int
	sampleFetchTimeout time.Duration

	// now is injectable so cache and window cutoffs are testable without
	// wall-clock dependence.
	now func() time.Time
}

func NewAnalysisUseCase(
	roadRepo repository.RoadRepository,
	sampleRepo repository.SampleRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	maxConcurrentRoads int,
	sampleFetchTimeout time.Duration,
) *AnalysisUseCase {
	if maxConcurrentRoads <= 0 {
		maxConcurrentRoads = 1
	}
	return &AnalysisUseCase{
		roadRepo:           roadRepo,
		sampleRepo:         sampleRepo,
		cacheRepo:          cacheRepo,
		engine:             analysis.NewEngine(),
		logger:             logger,
		cacheTTL:           cacheTTL,
		maxConcurrentRoads: maxConcurrentRoads,
		sampleFetchTimeout: sampleFetchTimeout,
		now:                time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (uc *AnalysisUseCase) WithClock(now func() time.Time) *AnalysisUseCase {
	uc.now = now
	return uc
}

// AnalyzeArea runs the full pipeline for every road of an area. Per-road
// failures degrade to warnings; only an unknown area or an unusable window
// rejects the call.
func (uc *AnalysisUseCase) AnalyzeArea(ctx context.Context, areaID string, windowDays int) (*dto.AreaAnalysisResponse, error) {
	if !domain.IsValidWindowDays(windowDays) {
		return nil, apperrors.ErrInvalidWindowDays
	}

	cacheKey := fmt.Sprintf("analysis:area:%s:%d", areaID, windowDays)
	if cached := uc.cachedArea(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	roads, err := uc.roadRepo.GetRoadsByArea(ctx, areaID)
	if err != nil {
		uc.logger.Error("failed to load roads for area", zap.String("area_id", areaID), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	if len(roads) == 0 {
		return nil, apperrors.ErrAreaNotFound
	}

	since := analysis.WindowStart(uc.now().UTC(), windowDays)
	analyses, warnings := uc.analyzeRoads(ctx, roads, since, windowDays)

	resp := &dto.AreaAnalysisResponse{
		AnalysisID:  uuid.NewString(),
		AreaID:      areaID,
		WindowDays:  windowDays,
		GeneratedAt: uc.now().UTC(),
		Roads:       analyses,
		Insights:    uc.engine.Aggregate(analyses),
		Warnings:    warnings,
	}

	uc.cacheSet(ctx, cacheKey, resp)

	uc.logger.Info("area analysis complete",
		zap.String("area_id", areaID),
		zap.Int("window_days", windowDays),
		zap.Int("roads", len(analyses)),
		zap.Int("interventions", resp.Insights.RoadsNeedingIntervention),
	)

	return resp, nil
}

// analyzeRoads fetches samples in concurrent bounded batches and runs the
// CPU-bound pipeline inside the same worker. Results keep the input road
// order; a failed batch degrades its roads to no-data analyses with a
// warning instead of aborting the area.
func (uc *AnalysisUseCase) analyzeRoads(ctx context.Context, roads []domain.RoadMetadata, since time.Time, windowDays int) ([]domain.RoadAnalysis, []string) {
	results := make([]domain.RoadAnalysis, len(roads))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		warnings []string
	)
	sem := make(chan struct{}, uc.maxConcurrentRoads)

	for start := 0; start < len(roads); start += sampleFetchChunkSize {
		end := start + sampleFetchChunkSize
		if end > len(roads) {
			end = len(roads)
		}

		wg.Add(1)
		go func(offset int, chunk []domain.RoadMetadata) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			ids := make([]string, len(chunk))
			for i, road := range chunk {
				ids[i] = road.ID
			}

			fetchCtx := ctx
			if uc.sampleFetchTimeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, uc.sampleFetchTimeout)
				defer cancel()
			}

			samplesByRoad, err := uc.sampleRepo.GetSamplesForRoads(fetchCtx, ids, since)
			if err != nil {
				uc.logger.Warn("sample fetch failed for batch",
					zap.Int("roads", len(ids)),
					zap.Error(err),
				)
				samplesByRoad = map[string][]domain.TrafficSample{}
			}

			for i, road := range chunk {
				result := uc.engine.AnalyzeRoad(road, samplesByRoad[road.ID], windowDays)
				if err != nil {
					result.Warnings = append(result.Warnings, fmt.Sprintf(
						"sample fetch failed for road %s; analyzed as no-data", road.ID,
					))
				}
				results[offset+i] = result
			}

			if err != nil {
				mu.Lock()
				warnings = append(warnings, fmt.Sprintf(
					"sample store unavailable for %d road(s); degraded to no-data analysis", len(ids),
				))
				mu.Unlock()
			}
		}(start, roads[start:end])
	}

	wg.Wait()
	return results, warnings
}

// AnalyzeRoad runs the pipeline for a single road.
func (uc *AnalysisUseCase) AnalyzeRoad(ctx context.Context, roadID string, windowDays int) (*dto.RoadAnalysisResponse, error) {
	if !domain.IsValidWindowDays(windowDays) {
		return nil, apperrors.ErrInvalidWindowDays
	}

	cacheKey := fmt.Sprintf("analysis:road:%s:%d", roadID, windowDays)
	if data := uc.cacheGet(ctx, cacheKey); data != nil {
		var cached dto.RoadAnalysisResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			uc.logger.Debug("road analysis served from cache", zap.String("road_id", roadID))
			return &cached, nil
		}
	}

	road, samples, err := uc.loadRoadWithSamples(ctx, roadID, windowDays)
	if err != nil {
		return nil, err
	}

	resp := &dto.RoadAnalysisResponse{
		AnalysisID:  uuid.NewString(),
		WindowDays:  windowDays,
		GeneratedAt: uc.now().UTC(),
		Road:        uc.engine.AnalyzeRoad(*road, samples, windowDays),
	}

	uc.cacheSet(ctx, cacheKey, resp)
	return resp, nil
}

// GetRoadPattern returns the frequency decision without recommendations.
func (uc *AnalysisUseCase) GetRoadPattern(ctx context.Context, roadID string, windowDays int) (*dto.RoadPatternResponse, error) {
	if !domain.IsValidWindowDays(windowDays) {
		return nil, apperrors.ErrInvalidWindowDays
	}

	road, samples, err := uc.loadRoadWithSamples(ctx, roadID, windowDays)
	if err != nil {
		return nil, err
	}

	result := uc.engine.AnalyzeRoad(*road, samples, windowDays)

	decision := "MONITOR_ONLY"
	if result.NeedsIntervention {
		decision = "NEEDS_INTERVENTION"
	}

	return &dto.RoadPatternResponse{
		RoadID:            roadID,
		WindowDays:        windowDays,
		TrafficPattern:    result.TrafficPattern,
		CongestionMetrics: result.CongestionMetrics,
		NeedsIntervention: result.NeedsIntervention,
		Decision:          decision,
		Reason:            result.InterventionReason,
	}, nil
}

func (uc *AnalysisUseCase) loadRoadWithSamples(ctx context.Context, roadID string, windowDays int) (*domain.RoadMetadata, []domain.TrafficSample, error) {
	road, err := uc.roadRepo.GetRoadByID(ctx, roadID)
	if err != nil {
		return nil, nil, err
	}

	since := analysis.WindowStart(uc.now().UTC(), windowDays)
	samples, err := uc.sampleRepo.GetSamples(ctx, roadID, since)
	if err != nil {
		uc.logger.Error("failed to load samples for road", zap.String("road_id", roadID), zap.Error(err))
		return nil, nil, apperrors.ErrDatabaseError
	}

	return road, samples, nil
}

// cachedArea returns a previously stored area response, or nil.
func (uc *AnalysisUseCase) cachedArea(ctx context.Context, key string) *dto.AreaAnalysisResponse {
	data := uc.cacheGet(ctx, key)
	if data == nil {
		return nil
	}

	var cached dto.AreaAnalysisResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		uc.logger.Warn("failed to decode cached analysis", zap.Error(err))
		return nil
	}

	uc.logger.Debug("area analysis served from cache", zap.String("key", key))
	return &cached
}

// Cache failures are logged and swallowed: the analysis result is already
// available or computable, and a flaky cache must not fail the request.
func (uc *AnalysisUseCase) cacheGet(ctx context.Context, key string) []byte {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return data
}

func (uc *AnalysisUseCase) cacheSet(ctx context.Context, key string, value interface{}) {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		uc.logger.Warn("failed to encode analysis for cache", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}
