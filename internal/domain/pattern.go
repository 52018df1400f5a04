package domain

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// TrafficPattern is the per-window reduction of raw samples for one road.
// Computed fresh on every analysis call, never persisted.
type TrafficPattern struct {
	// FrequencyScore is the fraction of observed days classified as
	// high-traffic. The denominator is days with data, not the requested
	// window length, so sparse windows are not penalized.
	FrequencyScore      float64            `json:"frequency_score"`
	HighTrafficDayCount int                `json:"high_traffic_day_count"`
	ObservedDayCount    int                `json:"observed_day_count"`
	PeakHours           []int              `json:"peak_hours"`
	Trend               Trend              `json:"trend"`
	WeeklyAverage       map[string]float64 `json:"weekly_average"`
}

// CongestionMetrics summarizes severity over the whole window, all in [0,1].
type CongestionMetrics struct {
	AvgCongestion  float64 `json:"avg_congestion"`
	MaxCongestion  float64 `json:"max_congestion"`
	PeakCongestion float64 `json:"peak_congestion"`
}
