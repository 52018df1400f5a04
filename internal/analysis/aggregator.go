package analysis

import (
	"sort"

	"github.com/traffic-analysis-microservice/internal/domain"
)

const hotspotLimit = 5

// Hotspot ranking weights: chronic frequency counts more than raw severity.
const (
	hotspotFrequencyWeight  = 0.6
	hotspotCongestionWeight = 0.4
)

// AreaAggregator reduces per-road analyses into area-wide insights. Single
// threaded by design; it runs once after the per-road fan-out completes.
type AreaAggregator struct{}

func NewAreaAggregator() *AreaAggregator {
	return &AreaAggregator{}
}

// Aggregate is order-independent: input is normalized by road ID before any
// float accumulation so the same set always yields identical insights.
func (a *AreaAggregator) Aggregate(analyses []domain.RoadAnalysis) domain.AreaInsights {
	insights := domain.AreaInsights{
		InterventionTypeCounts: map[domain.InterventionType]int{},
		Hotspots:               []domain.Hotspot{},
		RecommendedPhasing:     []domain.PhaseGroup{},
	}
	if len(analyses) == 0 {
		return insights
	}

	sorted := make([]domain.RoadAnalysis, len(analyses))
	copy(sorted, analyses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RoadID < sorted[j].RoadID
	})

	var freqSum, congSum float64
	var hourVotes [24]int

	for _, r := range sorted {
		insights.TotalRoadsAnalyzed++
		if r.NeedsIntervention {
			insights.RoadsNeedingIntervention++
		}

		switch r.Priority {
		case domain.PriorityCritical:
			insights.TierCounts.Critical++
		case domain.PriorityHigh:
			insights.TierCounts.High++
		case domain.PriorityMedium:
			insights.TierCounts.Medium++
		case domain.PriorityLow:
			insights.TierCounts.Low++
		case domain.PriorityMonitor:
			insights.TierCounts.Monitor++
		}

		for _, rec := range r.Recommendations {
			insights.InterventionTypeCounts[rec.Type]++
			insights.TotalEstimatedCostCrore += rec.EstimatedCostCrore
		}

		freqSum += r.TrafficPattern.FrequencyScore
		congSum += r.CongestionMetrics.AvgCongestion
		for _, h := range r.TrafficPattern.PeakHours {
			if h >= 0 && h < 24 {
				hourVotes[h]++
			}
		}
	}

	n := float64(len(sorted))
	insights.InterventionRate = float64(insights.RoadsNeedingIntervention) / n * 100
	insights.AreaMetrics = domain.AreaMetrics{
		AverageFrequency:   freqSum / n,
		AverageCongestion:  congSum / n,
		PeakCongestionHour: topHour(hourVotes),
	}

	insights.Hotspots = hotspots(sorted)
	insights.RecommendedPhasing = phasing(sorted)

	return insights
}

// topHour is the hour named most often across the roads' peak sets, ties to
// the lower hour. Zero when no road reported peaks.
func topHour(votes [24]int) int {
	best, bestVotes := 0, 0
	for h := 0; h < 24; h++ {
		if votes[h] > bestVotes {
			best, bestVotes = h, votes[h]
		}
	}
	return best
}

func hotspots(analyses []domain.RoadAnalysis) []domain.Hotspot {
	ranked := make([]domain.Hotspot, 0, len(analyses))
	for _, r := range analyses {
		ranked = append(ranked, domain.Hotspot{
			RoadID: r.RoadID,
			Name:   r.Road.Name,
			Score: r.TrafficPattern.FrequencyScore*hotspotFrequencyWeight +
				r.CongestionMetrics.AvgCongestion*hotspotCongestionWeight,
			Priority:      r.Priority,
			PriorityScore: r.PriorityScore,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].PriorityScore != ranked[j].PriorityScore {
			return ranked[i].PriorityScore > ranked[j].PriorityScore
		}
		return ranked[i].RoadID < ranked[j].RoadID
	})

	if len(ranked) > hotspotLimit {
		ranked = ranked[:hotspotLimit]
	}
	return ranked
}

// phasing groups intervention roads into execution phases by tier:
// critical first, then high, then medium. Empty phases are omitted.
func phasing(analyses []domain.RoadAnalysis) []domain.PhaseGroup {
	order := []domain.PriorityTier{
		domain.PriorityCritical,
		domain.PriorityHigh,
		domain.PriorityMedium,
	}

	var phases []domain.PhaseGroup
	for i, tier := range order {
		group := domain.PhaseGroup{
			Phase:    i + 1,
			Priority: tier,
		}
		for _, r := range analyses {
			if !r.NeedsIntervention || r.Priority != tier {
				continue
			}
			group.RoadNames = append(group.RoadNames, r.Road.Name)
			for _, rec := range r.Recommendations {
				group.SubtotalCostCrore += rec.EstimatedCostCrore
			}
		}
		if len(group.RoadNames) == 0 {
			continue
		}
		sort.Strings(group.RoadNames)
		phases = append(phases, group)
	}

	if phases == nil {
		return []domain.PhaseGroup{}
	}
	return phases
}
