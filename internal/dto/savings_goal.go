package dto

import (
	"time"

	"finboard/internal/models"
)

// Savings Goal Request DTOs

// CreateSavingsGoalRequest creates a new manually tracked goal. Amounts are
// decimal strings to avoid float rounding on the wire.
type CreateSavingsGoalRequest struct {
	Name          string     `json:"name" validate:"required,min=1,max=100"`
	TargetAmount  string     `json:"target_amount" validate:"required,goal_amount"`
	CurrentAmount string     `json:"current_amount,omitempty" validate:"omitempty,goal_amount"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
}

// UpdateSavingsGoalRequest applies a partial update; nil fields are left
// unchanged.
type UpdateSavingsGoalRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TargetAmount  *string    `json:"target_amount,omitempty" validate:"omitempty,goal_amount"`
	CurrentAmount *string    `json:"current_amount,omitempty" validate:"omitempty,goal_amount"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
}

// Savings Goal Response DTOs

// SavingsGoalResponse decorates a goal with its derived progress.
type SavingsGoalResponse struct {
	*models.SavingsGoal
	Progress   string `json:"progress"`
	IsComplete bool   `json:"is_complete"`
}

// NewSavingsGoalResponse builds the response shape for a single goal.
func NewSavingsGoalResponse(goal *models.SavingsGoal) *SavingsGoalResponse {
	return &SavingsGoalResponse{
		SavingsGoal: goal,
		Progress:    goal.Progress().String(),
		IsComplete:  goal.IsComplete(),
	}
}
