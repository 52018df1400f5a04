package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/traffic-analysis-microservice/internal/pkg/errors"
	"github.com/traffic-analysis-microservice/internal/pkg/utils"
	"github.com/traffic-analysis-microservice/internal/pkg/validator"
	"github.com/traffic-analysis-microservice/internal/usecase"
	"github.com/traffic-analysis-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

const defaultWindowDays = 30

// AnalysisHandler serves the traffic analysis endpoints.
type AnalysisHandler struct {
	analysisUC *usecase.AnalysisUseCase
	logger     *zap.Logger
}

func NewAnalysisHandler(analysisUC *usecase.AnalysisUseCase, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUC: analysisUC,
		logger:     logger,
	}
}

// GetAreaAnalysis godoc
// @Summary Analyze all roads in an area
// @Description Runs pattern analysis, intervention classification, priority scoring and recommendation generation for every road of the area, plus area-level insights
// @Tags Analysis
// @Produce json
// @Param area_id path string true "Area identifier"
// @Param window_days query int false "Analysis window in days (7, 30, 90 or 365)" default(30)
// @Success 200 {object} utils.SuccessResponse{data=dto.AreaAnalysisResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/areas/{area_id}/analysis [get]
func (h *AnalysisHandler) GetAreaAnalysis(c *fiber.Ctx) error {
	ctx := c.Context()

	areaID := c.Params("area_id")
	windowDays, err := h.windowDays(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.AnalyzeAreaRequest{AreaID: areaID, WindowDays: windowDays}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	h.logger.Debug("Handling area analysis request",
		zap.String("area_id", areaID),
		zap.Int("window_days", windowDays),
	)

	result, err := h.analysisUC.AnalyzeArea(ctx, areaID, windowDays)
	if err != nil {
		h.logger.Error("Failed to analyze area", zap.String("area_id", areaID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Roads)})
}

// GetRoadAnalysis godoc
// @Summary Analyze a single road
// @Description Runs the full analysis pipeline for one road
// @Tags Analysis
// @Produce json
// @Param road_id path string true "Road identifier"
// @Param window_days query int false "Analysis window in days (7, 30, 90 or 365)" default(30)
// @Success 200 {object} utils.SuccessResponse{data=dto.RoadAnalysisResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/roads/{road_id}/analysis [get]
func (h *AnalysisHandler) GetRoadAnalysis(c *fiber.Ctx) error {
	ctx := c.Context()

	roadID := c.Params("road_id")
	windowDays, err := h.windowDays(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.AnalyzeRoadRequest{RoadID: roadID, WindowDays: windowDays}
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	result, err := h.analysisUC.AnalyzeRoad(ctx, roadID, windowDays)
	if err != nil {
		h.logger.Error("Failed to analyze road", zap.String("road_id", roadID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetRoadPattern godoc
// @Summary Traffic pattern for a single road
// @Description Returns the frequency pattern, congestion metrics and intervention decision without recommendations
// @Tags Analysis
// @Produce json
// @Param road_id path string true "Road identifier"
// @Param window_days query int false "Analysis window in days (7, 30, 90 or 365)" default(30)
// @Success 200 {object} utils.SuccessResponse{data=dto.RoadPatternResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/roads/{road_id}/pattern [get]
func (h *AnalysisHandler) GetRoadPattern(c *fiber.Ctx) error {
	ctx := c.Context()

	roadID := c.Params("road_id")
	windowDays, err := h.windowDays(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.analysisUC.GetRoadPattern(ctx, roadID, windowDays)
	if err != nil {
		h.logger.Error("Failed to get road pattern", zap.String("road_id", roadID), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// windowDays parses the window_days query parameter. A missing parameter
// falls back to the default; a non-numeric one is rejected, range checks
// happen in the usecase.
func (h *AnalysisHandler) windowDays(c *fiber.Ctx) (int, error) {
	raw := c.Query("window_days")
	if raw == "" {
		return defaultWindowDays, nil
	}

	windowDays := c.QueryInt("window_days", -1)
	if windowDays < 0 {
		return 0, apperrors.ErrInvalidWindowDays.WithDetails(map[string]interface{}{
			"window_days": raw,
		})
	}
	return windowDays, nil
}
