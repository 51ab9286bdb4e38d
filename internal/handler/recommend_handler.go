package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mealplan/internal/service"
)

// RecommendHandler handles the recommendation endpoint.
type RecommendHandler struct {
	recommend service.RecommendService
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(recommend service.RecommendService) *RecommendHandler {
	return &RecommendHandler{recommend: recommend}
}

// RecommendRequest represents a recommendation request. Counts default to zero
// when omitted, matching the original client payload.
type RecommendRequest struct {
	Meat           int  `json:"meat" validate:"min=0"`
	Vegetable      int  `json:"vegetable" validate:"min=0"`
	Soup           int  `json:"soup" validate:"min=0"`
	NoRepeatInWeek bool `json:"noRepeatInWeek"`
}

// Recommend godoc
// @Summary Randomly recommend dishes per category
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Requested counts"
// @Success 200 {object} service.Selection
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /recommend [post]
func (h *RecommendHandler) Recommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	selection, err := h.recommend.Recommend(c.Request().Context(), req.Meat, req.Vegetable, req.Soup, req.NoRepeatInWeek)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, selection)
}
