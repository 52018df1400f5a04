package domain

type InterventionType string

const (
	InterventionWidening    InterventionType = "widening"
	InterventionFlyover     InterventionType = "flyover"
	InterventionBridge      InterventionType = "bridge"
	InterventionMaintenance InterventionType = "maintenance"
	InterventionSignals     InterventionType = "signals"
	InterventionPlanning    InterventionType = "planning"
)

// RecommendationPriority ranks a single proposal. It is independent of the
// road's overall priority tier.
type RecommendationPriority string

const (
	RecommendationHigh   RecommendationPriority = "high"
	RecommendationMedium RecommendationPriority = "medium"
	RecommendationLow    RecommendationPriority = "low"
)

type TimelineRange struct {
	MinMonths int `json:"min_months"`
	MaxMonths int `json:"max_months"`
}

// Recommendation is one proposed intervention with its cost estimate in
// crore (₹10,000,000) and a phased implementation plan.
type Recommendation struct {
	Type                 InterventionType       `json:"type"`
	Priority             RecommendationPriority `json:"priority"`
	Title                string                 `json:"title"`
	Description          string                 `json:"description"`
	Reason               string                 `json:"reason"`
	EstimatedCostCrore   float64                `json:"estimated_cost_crore"`
	Timeline             TimelineRange          `json:"timeline_months"`
	ExpectedImpact       string                 `json:"expected_impact"`
	ImplementationPhases []string               `json:"implementation_phases"`
}
