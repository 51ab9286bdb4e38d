package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mealplan/internal/errors"
	"mealplan/internal/model"
	"mealplan/internal/service"
)

// DishHandler handles dish catalog endpoints.
type DishHandler struct {
	catalog service.CatalogService
}

// NewDishHandler creates a new dish handler.
func NewDishHandler(catalog service.CatalogService) *DishHandler {
	return &DishHandler{catalog: catalog}
}

// DishRequest represents a dish create or update request.
type DishRequest struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=meat vegetable soup"`
	Category string `json:"category"`
}

// Create godoc
// @Summary Add a dish to the catalog
// @Tags dishes
// @Accept json
// @Produce json
// @Param request body DishRequest true "Dish payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dishes [post]
func (h *DishHandler) Create(c echo.Context) error {
	var req DishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dish, err := h.catalog.Add(c.Request().Context(), req.Name, model.DishType(req.Type), req.Category)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"id": dish.ID})
}

// List godoc
// @Summary List all dishes
// @Tags dishes
// @Produce json
// @Success 200 {array} model.Dish
// @Failure 500 {object} errors.ErrorResponse
// @Router /dishes [get]
func (h *DishHandler) List(c echo.Context) error {
	dishes, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dishes)
}

// Update godoc
// @Summary Update a dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param id path int true "Dish ID"
// @Param request body DishRequest true "Dish payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dishes/{id} [put]
func (h *DishHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req DishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.catalog.Update(c.Request().Context(), uint(id), req.Name, model.DishType(req.Type), req.Category); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "dish updated"})
}

// Delete godoc
// @Summary Delete a dish
// @Tags dishes
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /dishes/{id} [delete]
func (h *DishHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.catalog.Delete(c.Request().Context(), uint(id)); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "dish deleted"})
}

// toHTTPError maps a domain error onto the shared response shape.
func toHTTPError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
