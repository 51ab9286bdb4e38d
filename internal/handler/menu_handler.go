package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mealplan/internal/service"
)

// MenuHandler handles week menu endpoints.
type MenuHandler struct {
	menu service.MenuService
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menu service.MenuService) *MenuHandler {
	return &MenuHandler{menu: menu}
}

// Plan godoc
// @Summary Get the current week menu
// @Tags week-menu
// @Produce json
// @Success 200 {array} model.DayPlan
// @Failure 500 {object} errors.ErrorResponse
// @Router /week-menu [get]
func (h *MenuHandler) Plan(c echo.Context) error {
	plans, err := h.menu.Plan(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, plans)
}

// Generate godoc
// @Summary Generate a fresh 7-day menu
// @Tags week-menu
// @Produce json
// @Success 200 {array} model.DayPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /week-menu/generate [post]
func (h *MenuHandler) Generate(c echo.Context) error {
	plans, err := h.menu.Generate(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, plans)
}

// RegenerateDay godoc
// @Summary Redraw one day of the week menu
// @Tags week-menu
// @Produce json
// @Param day path int true "Day index (0-6)"
// @Success 200 {object} model.DayPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /week-menu/day/{day} [put]
func (h *MenuHandler) RegenerateDay(c echo.Context) error {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid day")
	}

	plan, err := h.menu.RegenerateDay(c.Request().Context(), day)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, plan)
}
