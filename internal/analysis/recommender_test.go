package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traffic-analysis-microservice/internal/analysis"
	"github.com/traffic-analysis-microservice/internal/domain"
)

func secondaryRoad() domain.RoadMetadata {
	return domain.RoadMetadata{
		ID:                "road-1",
		AreaID:            "area-1",
		Name:              "MG Road",
		Type:              domain.RoadTypeSecondary,
		LengthKm:          8,
		Lanes:             2,
		IntersectionCount: 4,
	}
}

func TestGenerate_MonitorAndLowTiersGetNothing(t *testing.T) {
	g := analysis.NewRecommendationGenerator()
	road := secondaryRoad()

	assert.Nil(t, g.Generate(road, domain.TrafficPattern{}, domain.CongestionMetrics{}, domain.PriorityMonitor))
	assert.Nil(t, g.Generate(road, domain.TrafficPattern{}, domain.CongestionMetrics{}, domain.PriorityLow))
}

func TestGenerate_NoCostBasisGetsNothing(t *testing.T) {
	g := analysis.NewRecommendationGenerator()

	road := secondaryRoad()
	road.LengthKm = 0

	got := g.Generate(road,
		domain.TrafficPattern{FrequencyScore: 0.9},
		domain.CongestionMetrics{AvgCongestion: 0.8, MaxCongestion: 0.95},
		domain.PriorityCritical,
	)

	assert.Nil(t, got)
}

func TestGenerate_CriticalUnderbuiltRoadGetsWidening(t *testing.T) {
	g := analysis.NewRecommendationGenerator()
	road := secondaryRoad() // 2 lanes, recommended 3

	got := g.Generate(road,
		domain.TrafficPattern{FrequencyScore: 0.9, HighTrafficDayCount: 27, ObservedDayCount: 30},
		domain.CongestionMetrics{AvgCongestion: 0.82, MaxCongestion: 0.95},
		domain.PriorityCritical,
	)

	require.NotEmpty(t, got)
	assert.Equal(t, domain.InterventionWidening, got[0].Type)
	assert.Equal(t, domain.RecommendationHigh, got[0].Priority)
	assert.InDelta(t, 68.0, got[0].EstimatedCostCrore, 1e-9) // 8 km x 8.5 crore/km
	assert.Equal(t, domain.TimelineRange{MinMonths: 12, MaxMonths: 18}, got[0].Timeline)
	assert.NotEmpty(t, got[0].ImplementationPhases)
}

func TestGenerate_CriticalFullyBuiltRoadGetsFlyover(t *testing.T) {
	g := analysis.NewRecommendationGenerator()

	road := secondaryRoad()
	road.Lanes = 3 // already at the recommended profile

	got := g.Generate(road,
		domain.TrafficPattern{FrequencyScore: 0.9, HighTrafficDayCount: 27, ObservedDayCount: 30},
		domain.CongestionMetrics{AvgCongestion: 0.82, MaxCongestion: 0.95},
		domain.PriorityCritical,
	)

	require.NotEmpty(t, got)
	assert.Equal(t, domain.InterventionFlyover, got[0].Type)
	assert.InDelta(t, 360.0, got[0].EstimatedCostCrore, 1e-9) // 8 km x 45 crore/km
}

func TestGenerate_HighTier(t *testing.T) {
	g := analysis.NewRecommendationGenerator()

	t.Run("frequent and underbuilt gets widening", func(t *testing.T) {
		got := g.Generate(secondaryRoad(),
			domain.TrafficPattern{FrequencyScore: 0.75, HighTrafficDayCount: 22, ObservedDayCount: 30},
			domain.CongestionMetrics{AvgCongestion: 0.72, MaxCongestion: 0.85},
			domain.PriorityHigh,
		)

		require.NotEmpty(t, got)
		assert.Equal(t, domain.InterventionWidening, got[0].Type)
		// Below the 0.75 average load bar the proposal is medium priority.
		assert.Equal(t, domain.RecommendationMedium, got[0].Priority)
	})

	t.Run("less frequent congestion gets signals first", func(t *testing.T) {
		got := g.Generate(secondaryRoad(),
			domain.TrafficPattern{FrequencyScore: 0.60, HighTrafficDayCount: 18, ObservedDayCount: 30},
			domain.CongestionMetrics{AvgCongestion: 0.65, MaxCongestion: 0.80},
			domain.PriorityHigh,
		)

		require.NotEmpty(t, got)
		assert.Equal(t, domain.InterventionSignals, got[0].Type)
		assert.InDelta(t, 0.6, got[0].EstimatedCostCrore, 1e-9) // 4 intersections x 0.15
	})

	t.Run("frequent but fully built gets maintenance", func(t *testing.T) {
		road := secondaryRoad()
		road.Lanes = 3

		got := g.Generate(road,
			domain.TrafficPattern{FrequencyScore: 0.75, HighTrafficDayCount: 22, ObservedDayCount: 30},
			domain.CongestionMetrics{AvgCongestion: 0.72, MaxCongestion: 0.85},
			domain.PriorityHigh,
		)

		require.NotEmpty(t, got)
		assert.Equal(t, domain.InterventionMaintenance, got[0].Type)
		assert.InDelta(t, 16.0, got[0].EstimatedCostCrore, 1e-9) // 8 km x 2.0
	})
}

func TestGenerate_MediumTier(t *testing.T) {
	g := analysis.NewRecommendationGenerator()

	t.Run("increasing trend gets planning", func(t *testing.T) {
		got := g.Generate(secondaryRoad(),
			domain.TrafficPattern{FrequencyScore: 0.60, Trend: domain.TrendIncreasing, HighTrafficDayCount: 18, ObservedDayCount: 30},
			domain.CongestionMetrics{AvgCongestion: 0.45, MaxCongestion: 0.60},
			domain.PriorityMedium,
		)

		require.NotEmpty(t, got)
		assert.Equal(t, domain.InterventionPlanning, got[0].Type)
		assert.Equal(t, domain.RecommendationLow, got[0].Priority)
		assert.InDelta(t, 20.0, got[0].EstimatedCostCrore, 1e-9) // 8 km x 2.5
	})

	t.Run("stable trend gets maintenance", func(t *testing.T) {
		got := g.Generate(secondaryRoad(),
			domain.TrafficPattern{FrequencyScore: 0.60, Trend: domain.TrendStable, HighTrafficDayCount: 18, ObservedDayCount: 30},
			domain.CongestionMetrics{AvgCongestion: 0.45, MaxCongestion: 0.60},
			domain.PriorityMedium,
		)

		require.NotEmpty(t, got)
		assert.Equal(t, domain.InterventionMaintenance, got[0].Type)
	})
}

func TestGenerate_ExtremePeaksAddSignalsAlongsideWidening(t *testing.T) {
	g := analysis.NewRecommendationGenerator()

	got := g.Generate(secondaryRoad(),
		domain.TrafficPattern{FrequencyScore: 0.9, HighTrafficDayCount: 27, ObservedDayCount: 30},
		domain.CongestionMetrics{AvgCongestion: 0.82, MaxCongestion: 0.95},
		domain.PriorityCritical,
	)

	require.Len(t, got, 2)
	assert.Equal(t, domain.InterventionWidening, got[0].Type)
	assert.Equal(t, domain.InterventionSignals, got[1].Type)
}

func TestGenerate_TypesNeverRepeat(t *testing.T) {
	g := analysis.NewRecommendationGenerator()

	got := g.Generate(secondaryRoad(),
		domain.TrafficPattern{FrequencyScore: 0.75, HighTrafficDayCount: 22, ObservedDayCount: 30},
		domain.CongestionMetrics{AvgCongestion: 0.72, MaxCongestion: 0.95},
		domain.PriorityHigh,
	)

	seen := map[domain.InterventionType]bool{}
	for _, rec := range got {
		assert.False(t, seen[rec.Type], "duplicate recommendation type %s", rec.Type)
		seen[rec.Type] = true
	}
}

func TestGenerate_SignalsDefaultToOneIntersection(t *testing.T) {
	g := analysis.NewRecommendationGenerator()

	road := secondaryRoad()
	road.IntersectionCount = 0

	got := g.Generate(road,
		domain.TrafficPattern{FrequencyScore: 0.60, HighTrafficDayCount: 18, ObservedDayCount: 30},
		domain.CongestionMetrics{AvgCongestion: 0.65, MaxCongestion: 0.80},
		domain.PriorityHigh,
	)

	require.NotEmpty(t, got)
	assert.Equal(t, domain.InterventionSignals, got[0].Type)
	assert.InDelta(t, 0.15, got[0].EstimatedCostCrore, 1e-9)
}
