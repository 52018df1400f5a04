package dto

// AnalyzeAreaRequest parameters for an area-wide analysis.
type AnalyzeAreaRequest struct {
	AreaID     string `json:"area_id" validate:"required"`
	WindowDays int    `json:"window_days" validate:"required"`
}

// AnalyzeRoadRequest parameters for a single-road analysis.
type AnalyzeRoadRequest struct {
	RoadID     string `json:"road_id" validate:"required"`
	WindowDays int    `json:"window_days" validate:"required"`
}
