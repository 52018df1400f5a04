package analysis

import (
	"fmt"

	"github.com/traffic-analysis-microservice/internal/domain"
)

// Engine composes the per-road pipeline: pattern analysis, classification,
// scoring and recommendation generation. Stateless and safe for concurrent
// use; one call per road, fanned out by the caller.
type Engine struct {
	patterns    *PatternAnalyzer
	classifier  *InterventionClassifier
	scorer      *PriorityScorer
	recommender *RecommendationGenerator
	aggregator  *AreaAggregator
}

func NewEngine() *Engine {
	return &Engine{
		patterns:    NewPatternAnalyzer(),
		classifier:  NewInterventionClassifier(),
		scorer:      NewPriorityScorer(),
		recommender: NewRecommendationGenerator(),
		aggregator:  NewAreaAggregator(),
	}
}

// AnalyzeRoad runs the full pipeline for one road. It never fails: missing
// samples degrade to a monitor-tier result, incomplete metadata suppresses
// recommendations and attaches a warning instead.
func (e *Engine) AnalyzeRoad(road domain.RoadMetadata, samples []domain.TrafficSample, windowDays int) domain.RoadAnalysis {
	pattern, metrics := e.patterns.Analyze(samples, windowDays)
	cls := e.classifier.Classify(pattern, metrics)
	score := e.scorer.Score(pattern, metrics)

	result := domain.RoadAnalysis{
		RoadID:             road.ID,
		Road:               road,
		TrafficPattern:     pattern,
		CongestionMetrics:  metrics,
		NeedsIntervention:  cls.NeedsIntervention,
		InterventionReason: cls.Reason,
		Priority:           cls.Priority,
		PriorityScore:      score,
		Problems:           []domain.Problem{},
		Recommendations:    []domain.Recommendation{},
	}

	if cls.NeedsIntervention {
		result.Problems = problems(pattern, metrics)

		if road.HasCostBasis() {
			result.Recommendations = e.recommender.Generate(road, pattern, metrics, cls.Priority)
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"road %s has incomplete metadata (length or type); recommendations skipped", road.ID,
			))
		}
	}

	return result
}

// Aggregate exposes the area reduction on the engine.
func (e *Engine) Aggregate(analyses []domain.RoadAnalysis) domain.AreaInsights {
	return e.aggregator.Aggregate(analyses)
}

// problems derives the findings list for a road that needs intervention.
func problems(p domain.TrafficPattern, m domain.CongestionMetrics) []domain.Problem {
	found := []domain.Problem{}

	if m.AvgCongestion >= 0.6 {
		severity := domain.SeverityMedium
		switch {
		case m.AvgCongestion >= 0.8:
			severity = domain.SeverityCritical
		case m.AvgCongestion >= 0.7:
			severity = domain.SeverityHigh
		}
		found = append(found, domain.Problem{
			Type:     "congestion",
			Severity: severity,
			Description: fmt.Sprintf(
				"Traffic congestion occurs on %d of %d observed days with %.0f%% average load",
				p.HighTrafficDayCount, p.ObservedDayCount, m.AvgCongestion*100,
			),
			Impact: fmt.Sprintf(
				"Average delay of about %d minutes during peak hours",
				int(m.AvgCongestion*30),
			),
		})
	}

	if p.FrequencyScore >= 0.71 && m.AvgCongestion >= 0.70 {
		found = append(found, domain.Problem{
			Type:        "capacity",
			Severity:    domain.SeverityHigh,
			Description: "Road capacity insufficient for current traffic volume",
			Impact:      "Bottleneck causing delays throughout the corridor",
		})
	}

	return found
}
