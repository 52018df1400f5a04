package analysis

import (
	"fmt"

	"github.com/traffic-analysis-microservice/internal/domain"
)

// Cost rates in crore (₹10M). Widening/flyover/planning/maintenance scale
// with corridor length, signals with intersection count.
const (
	costWideningPerKm          = 8.5
	costFlyoverPerKm           = 45.0
	costSignalsPerIntersection = 0.15
	costPlanningPerKm          = 2.5
	costMaintenancePerKm       = 2.0
)

// Signals are the cheaper alternative in the lower high-tier frequency band.
const signalsFrequencyCeiling = 0.71

// RecommendationGenerator turns a classified road into concrete intervention
// proposals with cost, timeline and a phased plan.
type RecommendationGenerator struct{}

func NewRecommendationGenerator() *RecommendationGenerator {
	return &RecommendationGenerator{}
}

// Generate returns an empty list for monitor/low tiers and for roads whose
// metadata cannot support cost estimation (the caller attaches the warning).
// Types never repeat within one road's list.
func (g *RecommendationGenerator) Generate(
	road domain.RoadMetadata,
	p domain.TrafficPattern,
	m domain.CongestionMetrics,
	tier domain.PriorityTier,
) []domain.Recommendation {
	if tier == domain.PriorityMonitor || tier == domain.PriorityLow {
		return nil
	}
	if !road.HasCostBasis() {
		return nil
	}

	var recs []domain.Recommendation

	switch tier {
	case domain.PriorityCritical:
		if road.Lanes >= road.Type.RecommendedLanes() {
			recs = append(recs, g.flyover(road, p, m))
		} else {
			recs = append(recs, g.widening(road, p, m))
		}

	case domain.PriorityHigh:
		switch {
		case p.FrequencyScore >= signalsFrequencyCeiling && road.Lanes < road.Type.RecommendedLanes():
			recs = append(recs, g.widening(road, p, m))
		case p.FrequencyScore < signalsFrequencyCeiling:
			recs = append(recs, g.signals(road, p))
		default:
			recs = append(recs, g.maintenance(road, p, m))
		}

	case domain.PriorityMedium:
		if p.Trend == domain.TrendIncreasing {
			recs = append(recs, g.planning(road, p))
		} else {
			recs = append(recs, g.maintenance(road, p, m))
		}
	}

	// Extreme peaks on a corridor already slated for widening also warrant
	// signal retiming as an interim measure.
	if m.MaxCongestion >= 0.90 && hasType(recs, domain.InterventionWidening) {
		recs = append(recs, g.signals(road, p))
	}

	return recs
}

func hasType(recs []domain.Recommendation, t domain.InterventionType) bool {
	for _, r := range recs {
		if r.Type == t {
			return true
		}
	}
	return false
}

func (g *RecommendationGenerator) widening(road domain.RoadMetadata, p domain.TrafficPattern, m domain.CongestionMetrics) domain.Recommendation {
	target := road.Type.RecommendedLanes()

	priority := domain.RecommendationMedium
	if m.AvgCongestion >= 0.75 {
		priority = domain.RecommendationHigh
	}

	return domain.Recommendation{
		Type:     domain.InterventionWidening,
		Priority: priority,
		Title:    fmt.Sprintf("Widen %s from %d to %d lanes", road.Name, road.Lanes, target),
		Description: fmt.Sprintf(
			"Expand the %.1f km corridor to the standard %d-lane profile for a %s road",
			road.LengthKm, target, road.Type,
		),
		Reason: fmt.Sprintf(
			"Congestion occurs on %d of %d observed days with %.0f%% average load; current %d lanes are insufficient",
			p.HighTrafficDayCount, p.ObservedDayCount, m.AvgCongestion*100, road.Lanes,
		),
		EstimatedCostCrore: road.LengthKm * costWideningPerKm,
		Timeline:           domain.TimelineRange{MinMonths: 12, MaxMonths: 18},
		ExpectedImpact:     "Increase corridor capacity by about 50% and restore design speeds",
		ImplementationPhases: []string{
			"Detailed project report and design",
			"Land acquisition",
			"Construction phase 1",
			"Construction phase 2",
			"Commissioning",
		},
	}
}

func (g *RecommendationGenerator) flyover(road domain.RoadMetadata, p domain.TrafficPattern, m domain.CongestionMetrics) domain.Recommendation {
	return domain.Recommendation{
		Type:     domain.InterventionFlyover,
		Priority: domain.RecommendationHigh,
		Title:    fmt.Sprintf("Grade-separated flyover on %s", road.Name),
		Description: fmt.Sprintf(
			"Corridor is already at the recommended %d lanes; additional at-grade capacity is not available",
			road.Lanes,
		),
		Reason: fmt.Sprintf(
			"Peak congestion at %.0f%% with high traffic on %d of %d observed days requires grade separation",
			m.MaxCongestion*100, p.HighTrafficDayCount, p.ObservedDayCount,
		),
		EstimatedCostCrore: road.LengthKm * costFlyoverPerKm,
		Timeline:           domain.TimelineRange{MinMonths: 18, MaxMonths: 30},
		ExpectedImpact:     "Reduce junction delays by 60-70% along the corridor",
		ImplementationPhases: []string{
			"Feasibility and traffic study",
			"Structural design and approvals",
			"Foundation works",
			"Superstructure construction",
			"Commissioning",
		},
	}
}

func (g *RecommendationGenerator) signals(road domain.RoadMetadata, p domain.TrafficPattern) domain.Recommendation {
	intersections := road.IntersectionCount
	if intersections <= 0 {
		intersections = 1
	}

	return domain.Recommendation{
		Type:     domain.InterventionSignals,
		Priority: domain.RecommendationMedium,
		Title:    fmt.Sprintf("Adaptive signal optimization on %s", road.Name),
		Description: fmt.Sprintf(
			"Retime and coordinate signals at %d intersection(s) along the corridor",
			intersections,
		),
		Reason: fmt.Sprintf(
			"Recurring congestion on %d of %d observed days can be managed with signal retiming before capacity works",
			p.HighTrafficDayCount, p.ObservedDayCount,
		),
		EstimatedCostCrore: float64(intersections) * costSignalsPerIntersection,
		Timeline:           domain.TimelineRange{MinMonths: 3, MaxMonths: 6},
		ExpectedImpact:     "Reduce average wait time at junctions by 20-30%",
		ImplementationPhases: []string{
			"Junction survey and signal audit",
			"Controller installation",
			"Adaptive timing calibration",
		},
	}
}

func (g *RecommendationGenerator) planning(road domain.RoadMetadata, p domain.TrafficPattern) domain.Recommendation {
	return domain.Recommendation{
		Type:     domain.InterventionPlanning,
		Priority: domain.RecommendationLow,
		Title:    fmt.Sprintf("Reserve right-of-way along %s", road.Name),
		Description: fmt.Sprintf(
			"Secure land for future expansion of the %.1f km corridor before development closes the option",
			road.LengthKm,
		),
		Reason: fmt.Sprintf(
			"Traffic trend is increasing with high traffic on %d of %d observed days; capacity is still adequate today",
			p.HighTrafficDayCount, p.ObservedDayCount,
		),
		EstimatedCostCrore: road.LengthKm * costPlanningPerKm,
		Timeline:           domain.TimelineRange{MinMonths: 24, MaxMonths: 60},
		ExpectedImpact:     "Prevent future congestion as demand grows",
		ImplementationPhases: []string{
			"Corridor study",
			"Right-of-way reservation",
			"Phased land acquisition",
		},
	}
}

func (g *RecommendationGenerator) maintenance(road domain.RoadMetadata, p domain.TrafficPattern, m domain.CongestionMetrics) domain.Recommendation {
	return domain.Recommendation{
		Type:     domain.InterventionMaintenance,
		Priority: domain.RecommendationMedium,
		Title:    fmt.Sprintf("Surface rehabilitation on %s", road.Name),
		Description: fmt.Sprintf(
			"Resurface the %.1f km corridor and improve drainage to recover throughput",
			road.LengthKm,
		),
		Reason: fmt.Sprintf(
			"Congestion occurs on %d of %d observed days at %.0f%% average load; capacity works are not yet justified",
			p.HighTrafficDayCount, p.ObservedDayCount, m.AvgCongestion*100,
		),
		EstimatedCostCrore: road.LengthKm * costMaintenancePerKm,
		Timeline:           domain.TimelineRange{MinMonths: 2, MaxMonths: 4},
		ExpectedImpact:     "Improve ride quality and restore design speed",
		ImplementationPhases: []string{
			"Condition survey",
			"Resurfacing",
			"Drainage improvement",
		},
	}
}
