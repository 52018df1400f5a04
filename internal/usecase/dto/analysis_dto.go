package dto

import (
	"time"

	"github.com/traffic-analysis-microservice/internal/domain"
)

// AreaAnalysisResponse is the full area result rendered to clients. Field
// names are a frontend contract; keep them stable.
type AreaAnalysisResponse struct {
	AnalysisID  string                `json:"analysis_id"`
	AreaID      string                `json:"area_id"`
	WindowDays  int                   `json:"window_days"`
	GeneratedAt time.Time             `json:"generated_at"`
	Roads       []domain.RoadAnalysis `json:"roads"`
	Insights    domain.AreaInsights   `json:"insights"`
	Warnings    []string              `json:"warnings,omitempty"`
}

// RoadAnalysisResponse is the single-road result.
type RoadAnalysisResponse struct {
	AnalysisID  string              `json:"analysis_id"`
	WindowDays  int                 `json:"window_days"`
	GeneratedAt time.Time           `json:"generated_at"`
	Road        domain.RoadAnalysis `json:"road"`
}

// RoadPatternResponse is the pattern-only view: the frequency decision
// without recommendations, mirroring the traffic-frequency endpoint of the
// original dashboard.
type RoadPatternResponse struct {
	RoadID            string                   `json:"road_id"`
	WindowDays        int                      `json:"window_days"`
	TrafficPattern    domain.TrafficPattern    `json:"traffic_patterns"`
	CongestionMetrics domain.CongestionMetrics `json:"congestion_metrics"`
	NeedsIntervention bool                     `json:"needs_intervention"`
	Decision          string                   `json:"decision"`
	Reason            string                   `json:"reason"`
}
