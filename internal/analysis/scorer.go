package analysis

import (
	"math"
	"sort"

	"github.com/traffic-analysis-microservice/internal/domain"
)

// PriorityScorer computes the continuous 0-100 ranking signal. It is an
// independent confirmation of the rule-matrix tier; the two are exposed side
// by side and may disagree.
type PriorityScorer struct{}

func NewPriorityScorer() *PriorityScorer {
	return &PriorityScorer{}
}

// Score is frequency x40 + max congestion x30 + consistency x20 + trend
// bonus x10, rounded to the nearest integer.
func (s *PriorityScorer) Score(p domain.TrafficPattern, m domain.CongestionMetrics) int {
	score := p.FrequencyScore*40 +
		m.MaxCongestion*30 +
		consistency(p.WeeklyAverage)*20 +
		trendBonus(p.Trend)*10

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// consistency is 1 minus the spread of the weekly averages: a road congested
// the same way every day scores higher than one with erratic spikes. Zero
// when there is no weekly data at all.
func consistency(weekly map[string]float64) float64 {
	if len(weekly) == 0 {
		return 0
	}

	// Fixed iteration order keeps the float sums, and therefore the score,
	// bit-identical across calls.
	keys := make([]string, 0, len(weekly))
	for k := range weekly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sum float64
	for _, k := range keys {
		sum += weekly[k]
	}
	mean := sum / float64(len(weekly))

	var variance float64
	for _, k := range keys {
		variance += (weekly[k] - mean) * (weekly[k] - mean)
	}
	variance /= float64(len(weekly))

	c := 1 - math.Sqrt(variance)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func trendBonus(t domain.Trend) float64 {
	switch t {
	case domain.TrendIncreasing:
		return 1.0
	case domain.TrendDecreasing:
		return 0.0
	default:
		return 0.5
	}
}

// ScoreTier maps a score to its display tier band.
func ScoreTier(score int) domain.PriorityTier {
	switch {
	case score >= 80:
		return domain.PriorityCritical
	case score >= 60:
		return domain.PriorityHigh
	case score >= 40:
		return domain.PriorityMedium
	case score >= 20:
		return domain.PriorityLow
	default:
		return domain.PriorityMonitor
	}
}
