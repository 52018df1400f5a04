package analysis

import (
	"github.com/traffic-analysis-microservice/internal/domain"
)

// Classification is the intervention decision for one road.
type Classification struct {
	NeedsIntervention bool
	Reason            string
	Priority          domain.PriorityTier
}

// InterventionClassifier applies the frequency x severity x trend decision
// matrix. The numeric boundaries are contract values; changing them changes
// the product behavior, not an implementation detail.
type InterventionClassifier struct{}

func NewInterventionClassifier() *InterventionClassifier {
	return &InterventionClassifier{}
}

// Classify evaluates the matrix top-down; the first matching rule wins,
// which doubles as the tie-break policy.
func (c *InterventionClassifier) Classify(p domain.TrafficPattern, m domain.CongestionMetrics) Classification {
	switch {
	case p.FrequencyScore >= 0.86 && m.MaxCongestion >= 0.90:
		return intervene(domain.PriorityCritical, "Daily extreme congestion")

	case p.FrequencyScore >= 0.71 && m.AvgCongestion >= 0.70:
		return intervene(domain.PriorityHigh, "Regular severe congestion - plan widening")

	case p.FrequencyScore >= 0.57 && m.AvgCongestion >= 0.60:
		return intervene(domain.PriorityHigh, "Regular congestion - optimize signals or widen")

	case p.FrequencyScore >= 0.57:
		return intervene(domain.PriorityMedium, "Recurring pattern - plan intervention")

	case m.MaxCongestion >= 0.90 && p.FrequencyScore >= 0.30:
		return intervene(domain.PriorityMedium, "Occasional severe congestion")

	case p.Trend == domain.TrendIncreasing && p.FrequencyScore >= 0.30:
		return intervene(domain.PriorityMedium, "Growth concern - reserve right-of-way")

	default:
		return Classification{
			NeedsIntervention: false,
			Reason:            "Traffic within acceptable limits",
			Priority:          domain.PriorityMonitor,
		}
	}
}

func intervene(tier domain.PriorityTier, reason string) Classification {
	return Classification{
		NeedsIntervention: true,
		Reason:            reason,
		Priority:          tier,
	}
}
