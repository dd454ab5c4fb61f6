package handlers

import (
	stderrors "errors"
	"net/http"

	"finboard/internal/dto"
	"finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/repositories"
	"finboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SavingsGoalHandler serves the manually tracked savings-goal CRUD endpoints.
type SavingsGoalHandler struct {
	goals services.SavingsGoalServiceInterface
}

// NewSavingsGoalHandler creates a new savings goal handler
func NewSavingsGoalHandler(goals services.SavingsGoalServiceInterface) *SavingsGoalHandler {
	return &SavingsGoalHandler{goals: goals}
}

// CreateGoal creates a new savings goal for the authenticated user.
func (h *SavingsGoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	goal, err := h.goals.CreateGoal(userID, &req)
	if err != nil {
		return h.sendGoalError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewSavingsGoalResponse(goal))
}

// ListGoals lists the authenticated user's savings goals.
func (h *SavingsGoalHandler) ListGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.goals.ListGoals(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]*dto.SavingsGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, dto.NewSavingsGoalResponse(&goals[i]))
	}

	return c.JSON(http.StatusOK, responses)
}

// GetGoal fetches one savings goal by ID.
func (h *SavingsGoalHandler) GetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid goal ID"))
	}

	goal, err := h.goals.GetGoal(goalID, userID)
	if err != nil {
		return h.sendGoalError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSavingsGoalResponse(goal))
}

// UpdateGoal applies a partial update to a savings goal.
func (h *SavingsGoalHandler) UpdateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.UpdateSavingsGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	goal, err := h.goals.UpdateGoal(goalID, userID, &req)
	if err != nil {
		return h.sendGoalError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSavingsGoalResponse(goal))
}

// DeleteGoal removes a savings goal.
func (h *SavingsGoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid goal ID"))
	}

	if err := h.goals.DeleteGoal(goalID, userID); err != nil {
		return h.sendGoalError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *SavingsGoalHandler) sendGoalError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrGoalNotFound):
		return SendError(c, errors.GoalNotFound)
	case stderrors.Is(err, services.ErrInvalidGoalAmount), stderrors.Is(err, models.ErrInvalidGoalAmount):
		return SendError(c, errors.GoalInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidGoalName):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("name: is required"))
	default:
		return SendSystemError(c, err)
	}
}
