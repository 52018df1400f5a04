package domain

import "time"

// Analysis windows accepted at the API boundary. The window length changes
// the denominator semantics of frequency scoring, so anything else is
// rejected instead of silently defaulted.
var ValidWindowDays = []int{7, 30, 90, 365}

func IsValidWindowDays(days int) bool {
	for _, w := range ValidWindowDays {
		if days == w {
			return true
		}
	}
	return false
}

// TrafficSample is one speed observation for a road segment, as delivered
// by the sample store. Immutable after ingestion.
type TrafficSample struct {
	RoadID       string    `json:"road_id" db:"road_id"`
	Timestamp    time.Time `json:"timestamp" db:"recorded_at"`
	SpeedKmph    float64   `json:"speed_kmph" db:"speed_kmph"`
	FreeFlowKmph float64   `json:"free_flow_kmph" db:"free_flow_kmph"`
	VehicleCount *int      `json:"vehicle_count,omitempty" db:"vehicle_count"`
}

// Congestion normalizes speed degradation to [0,1]. A sample without a
// usable free-flow reference reads as uncongested.
func (s TrafficSample) Congestion() float64 {
	if s.FreeFlowKmph <= 0 {
		return 0
	}
	c := 1 - s.SpeedKmph/s.FreeFlowKmph
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
