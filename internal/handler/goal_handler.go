package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"smartgoals/internal/model"
	"smartgoals/internal/service"
)

// GoalHandler handles SMART goal endpoints.
type GoalHandler struct {
	svc service.GoalService
}

// NewGoalHandler creates a new goal handler.
func NewGoalHandler(svc service.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

// CreateGoalRequest represents a goal creation request. All five SMART
// fields are required.
type CreateGoalRequest struct {
	Title       string           `json:"goal_title" validate:"required,max=255"`
	Description string           `json:"goal_description" validate:"max=2000"`
	Smart       model.Smart      `json:"goal_smart" validate:"required"`
	Status      model.GoalStatus `json:"goal_status" validate:"omitempty,oneof='not started' 'in progress' 'completed'"`
	Tags        []string         `json:"goal_tags"`
	IsPublic    bool             `json:"goal_isPublic"`
}

// UpdateGoalRequest represents a partial goal update.
type UpdateGoalRequest struct {
	Title       *string           `json:"goal_title" validate:"omitempty,min=1,max=255"`
	Description *string           `json:"goal_description" validate:"omitempty,max=2000"`
	Smart       *model.Smart      `json:"goal_smart"`
	Status      *model.GoalStatus `json:"goal_status" validate:"omitempty,oneof='not started' 'in progress' 'completed'"`
	Tags        *[]string         `json:"goal_tags"`
	IsPublic    *bool             `json:"goal_isPublic"`
}

// ListGoals godoc
// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {array} model.Goal
// @Failure 500 {object} errors.ErrorResponse
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	goals, err := h.svc.ListGoals(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, goals)
}

// GetGoal godoc
// @Summary Get goal by id
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} model.Goal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	goal, err := h.svc.GetGoal(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, goal)
}

// CreateGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "Goal data"
// @Success 201 {object} model.Goal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal := &model.Goal{
		Title:       req.Title,
		Description: req.Description,
		Smart:       req.Smart,
		Status:      req.Status,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	}

	created, err := h.svc.CreateGoal(c.Request().Context(), goal)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateGoal godoc
// @Summary Update goal fields
// @Tags goals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Param request body UpdateGoalRequest true "Fields to update"
// @Success 200 {object} model.Goal
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /goals/{id} [patch]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.UpdateGoal(c.Request().Context(), id, service.GoalUpdate{
		Title:       req.Title,
		Description: req.Description,
		Smart:       req.Smart,
		Status:      req.Status,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Goal ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteGoal(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "goal deleted successfully"})
}
