package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/traffic-analysis-microservice/internal/analysis"
	"github.com/traffic-analysis-microservice/internal/domain"
)

func TestClassify_DecisionMatrix(t *testing.T) {
	c := analysis.NewInterventionClassifier()

	tests := []struct {
		name      string
		freq      float64
		avg       float64
		max       float64
		trend     domain.Trend
		wantNeeds bool
		wantTier  domain.PriorityTier
	}{
		{
			name: "daily extreme congestion",
			freq: 0.90, avg: 0.85, max: 0.95, trend: domain.TrendStable,
			wantNeeds: true, wantTier: domain.PriorityCritical,
		},
		{
			name: "regular severe congestion",
			freq: 0.75, avg: 0.75, max: 0.85, trend: domain.TrendStable,
			wantNeeds: true, wantTier: domain.PriorityHigh,
		},
		{
			name: "regular moderate congestion",
			freq: 0.60, avg: 0.65, max: 0.80, trend: domain.TrendStable,
			wantNeeds: true, wantTier: domain.PriorityHigh,
		},
		{
			name: "recurring pattern with low severity",
			freq: 0.60, avg: 0.40, max: 0.50, trend: domain.TrendStable,
			wantNeeds: true, wantTier: domain.PriorityMedium,
		},
		{
			name: "occasional severe spikes",
			freq: 0.35, avg: 0.50, max: 0.95, trend: domain.TrendStable,
			wantNeeds: true, wantTier: domain.PriorityMedium,
		},
		{
			name: "growing traffic",
			freq: 0.35, avg: 0.40, max: 0.50, trend: domain.TrendIncreasing,
			wantNeeds: true, wantTier: domain.PriorityMedium,
		},
		{
			name: "quiet road",
			freq: 0.20, avg: 0.30, max: 0.50, trend: domain.TrendStable,
			wantNeeds: false, wantTier: domain.PriorityMonitor,
		},
		{
			name: "rare spike on quiet road stays monitor",
			freq: 0.10, avg: 0.20, max: 0.95, trend: domain.TrendStable,
			wantNeeds: false, wantTier: domain.PriorityMonitor,
		},
		{
			name: "growth on near-empty road stays monitor",
			freq: 0.10, avg: 0.20, max: 0.50, trend: domain.TrendIncreasing,
			wantNeeds: false, wantTier: domain.PriorityMonitor,
		},
		{
			name: "frequent but mild congestion is medium not high",
			freq: 0.90, avg: 0.30, max: 0.50, trend: domain.TrendStable,
			wantNeeds: true, wantTier: domain.PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(
				domain.TrafficPattern{FrequencyScore: tt.freq, Trend: tt.trend},
				domain.CongestionMetrics{AvgCongestion: tt.avg, MaxCongestion: tt.max},
			)

			assert.Equal(t, tt.wantNeeds, got.NeedsIntervention)
			assert.Equal(t, tt.wantTier, got.Priority)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestClassify_FirstMatchingRuleWins(t *testing.T) {
	c := analysis.NewInterventionClassifier()

	// Satisfies the critical rule and both high rules at once; the matrix
	// is evaluated top-down so critical wins.
	got := c.Classify(
		domain.TrafficPattern{FrequencyScore: 0.95, Trend: domain.TrendIncreasing},
		domain.CongestionMetrics{AvgCongestion: 0.90, MaxCongestion: 0.95},
	)

	assert.Equal(t, domain.PriorityCritical, got.Priority)
	assert.Equal(t, "Daily extreme congestion", got.Reason)
}

func TestClassify_ExactBoundaries(t *testing.T) {
	c := analysis.NewInterventionClassifier()

	// Thresholds are inclusive.
	got := c.Classify(
		domain.TrafficPattern{FrequencyScore: 0.86, Trend: domain.TrendStable},
		domain.CongestionMetrics{AvgCongestion: 0.50, MaxCongestion: 0.90},
	)
	assert.Equal(t, domain.PriorityCritical, got.Priority)

	got = c.Classify(
		domain.TrafficPattern{FrequencyScore: 0.57, Trend: domain.TrendStable},
		domain.CongestionMetrics{AvgCongestion: 0.30, MaxCongestion: 0.40},
	)
	assert.Equal(t, domain.PriorityMedium, got.Priority)

	// Just under the recurring-pattern threshold with nothing else going on.
	got = c.Classify(
		domain.TrafficPattern{FrequencyScore: 0.56, Trend: domain.TrendStable},
		domain.CongestionMetrics{AvgCongestion: 0.30, MaxCongestion: 0.40},
	)
	assert.False(t, got.NeedsIntervention)
}

func TestClassify_NoDataIsMonitor(t *testing.T) {
	c := analysis.NewInterventionClassifier()

	got := c.Classify(domain.TrafficPattern{Trend: domain.TrendStable}, domain.CongestionMetrics{})

	assert.False(t, got.NeedsIntervention)
	assert.Equal(t, domain.PriorityMonitor, got.Priority)
	assert.Equal(t, "Traffic within acceptable limits", got.Reason)
}
