package domain

type PriorityTier string

const (
	PriorityCritical PriorityTier = "critical"
	PriorityHigh     PriorityTier = "high"
	PriorityMedium   PriorityTier = "medium"
	PriorityLow      PriorityTier = "low"
	PriorityMonitor  PriorityTier = "monitor"
)

type ProblemSeverity string

const (
	SeverityCritical ProblemSeverity = "critical"
	SeverityHigh     ProblemSeverity = "high"
	SeverityMedium   ProblemSeverity = "medium"
)

// Problem is a concrete finding attached to a road analysis.
type Problem struct {
	Type        string          `json:"type"`
	Severity    ProblemSeverity `json:"severity"`
	Description string          `json:"description"`
	Impact      string          `json:"impact"`
}

// RoadAnalysis is the composite result for one road.
//
// Invariants: NeedsIntervention is true exactly when Recommendations is
// non-empty, except for roads flagged with a metadata warning where cost
// estimation was impossible. Priority and PriorityScore are computed
// independently (rule matrix vs weighted score) and may disagree.
type RoadAnalysis struct {
	RoadID             string            `json:"road_id"`
	Road               RoadMetadata      `json:"road"`
	TrafficPattern     TrafficPattern    `json:"traffic_patterns"`
	CongestionMetrics  CongestionMetrics `json:"congestion_metrics"`
	NeedsIntervention  bool              `json:"needs_intervention"`
	InterventionReason string            `json:"intervention_reason"`
	Priority           PriorityTier      `json:"priority"`
	PriorityScore      int               `json:"priority_score"`
	Problems           []Problem         `json:"problems"`
	Recommendations    []Recommendation  `json:"recommendations"`
	Warnings           []string          `json:"warnings,omitempty"`
}
