package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-api/internal/api/metrics"
	"github.com/flexfit/fitness-api/internal/core/ports"
)

// PlanHandler handles HTTP requests for fitness plan operations.
type PlanHandler struct {
	service ports.PlanService
}

func NewPlanHandler(service ports.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// Create handles POST /v1/plans.
//
// @Summary      Create a fitness plan for a user
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlanRequest  true  "Plan payload; userId is the external identity id"
// @Success      201   {object}  createPlanResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	var req createPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	planID, err := h.service.Create(c.Request().Context(), toCreatePlanInput(req))
	if err != nil {
		return err
	}

	metrics.PlansCreatedTotal.WithLabelValues(strconv.FormatBool(req.IsActive)).Inc()
	return c.JSON(http.StatusCreated, createPlanResponse{PlanID: planID})
}

// ListByUser handles GET /v1/users/:id/plans.
//
// @Summary      List a user's plans, newest first
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Internal user id"
// @Success      200  {object}  listPlansResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/users/{id}/plans [get]
func (h *PlanHandler) ListByUser(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing user id")
	}

	plans, err := h.service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	items := make([]planResponse, len(plans))
	for i, p := range plans {
		items[i] = toPlanResponse(p)
	}
	return c.JSON(http.StatusOK, listPlansResponse{Data: items})
}
