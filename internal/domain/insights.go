package domain

// AreaMetrics are simple means across all analyzed roads, intervention
// needed or not.
type AreaMetrics struct {
	AverageFrequency   float64 `json:"average_frequency"`
	AverageCongestion  float64 `json:"average_congestion"`
	PeakCongestionHour int     `json:"peak_congestion_hour"`
}

// Hotspot is one entry of the area attention ranking.
type Hotspot struct {
	RoadID        string       `json:"road_id"`
	Name          string       `json:"name"`
	Score         float64      `json:"score"`
	Priority      PriorityTier `json:"priority"`
	PriorityScore int          `json:"priority_score"`
}

// PhaseGroup groups intervention roads into an execution phase by tier.
type PhaseGroup struct {
	Phase             int          `json:"phase"`
	Priority          PriorityTier `json:"priority"`
	RoadNames         []string     `json:"road_names"`
	SubtotalCostCrore float64      `json:"subtotal_cost_crore"`
}

// TierCounts is the per-tier road breakdown of an area.
type TierCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Monitor  int `json:"monitor"`
}

// AreaInsights aggregates all per-road analyses of one area.
type AreaInsights struct {
	TotalRoadsAnalyzed       int                      `json:"total_roads_analyzed"`
	RoadsNeedingIntervention int                      `json:"roads_needing_intervention"`
	InterventionRate         float64                  `json:"intervention_rate"`
	InterventionTypeCounts   map[InterventionType]int `json:"intervention_type_counts"`
	TotalEstimatedCostCrore  float64                  `json:"total_estimated_cost_crore"`
	TierCounts               TierCounts               `json:"tier_counts"`
	AreaMetrics              AreaMetrics              `json:"area_metrics"`
	Hotspots                 []Hotspot                `json:"hotspots"`
	RecommendedPhasing       []PhaseGroup             `json:"recommended_phasing"`
}
