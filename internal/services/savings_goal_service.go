package services

import (
	"errors"
	"fmt"

	"finboard/internal/dto"
	"finboard/internal/models"
	"finboard/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidGoalAmount is returned when a request carries an amount that is
// not a valid non-negative decimal string.
var ErrInvalidGoalAmount = errors.New("goal amounts must be greater than or equal to zero")

// SavingsGoalService implements savings-goal business operations.
type SavingsGoalService struct {
	goals repositories.SavingsGoalRepositoryInterface
}

// Ensure SavingsGoalService implements SavingsGoalServiceInterface
var _ SavingsGoalServiceInterface = (*SavingsGoalService)(nil)

// NewSavingsGoalService creates a savings goal service
func NewSavingsGoalService(goals repositories.SavingsGoalRepositoryInterface) *SavingsGoalService {
	return &SavingsGoalService{goals: goals}
}

// CreateGoal creates a new goal for the user.
func (s *SavingsGoalService) CreateGoal(userID uuid.UUID, req *dto.CreateSavingsGoalRequest) (*models.SavingsGoal, error) {
	targetAmount, err := parseGoalAmount(req.TargetAmount)
	if err != nil {
		return nil, err
	}

	currentAmount := decimal.Zero
	if req.CurrentAmount != "" {
		currentAmount, err = parseGoalAmount(req.CurrentAmount)
		if err != nil {
			return nil, err
		}
	}

	goal := &models.SavingsGoal{
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    req.TargetDate,
	}

	if err := s.goals.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return goal, nil
}

// GetGoal fetches one goal scoped to its owner.
func (s *SavingsGoalService) GetGoal(goalID, userID uuid.UUID) (*models.SavingsGoal, error) {
	return s.goals.GetByID(goalID, userID)
}

// ListGoals lists the user's goals, newest first.
func (s *SavingsGoalService) ListGoals(userID uuid.UUID) ([]models.SavingsGoal, error) {
	return s.goals.ListByUserID(userID)
}

// UpdateGoal applies a partial update to a goal. Nil request fields leave the
// stored values unchanged.
func (s *SavingsGoalService) UpdateGoal(goalID, userID uuid.UUID, req *dto.UpdateSavingsGoalRequest) (*models.SavingsGoal, error) {
	goal, err := s.goals.GetByID(goalID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		amount, err := parseGoalAmount(*req.TargetAmount)
		if err != nil {
			return nil, err
		}
		goal.TargetAmount = amount
	}
	if req.CurrentAmount != nil {
		amount, err := parseGoalAmount(*req.CurrentAmount)
		if err != nil {
			return nil, err
		}
		goal.CurrentAmount = amount
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}

	if err := s.goals.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return goal, nil
}

// DeleteGoal removes a goal scoped to its owner.
func (s *SavingsGoalService) DeleteGoal(goalID, userID uuid.UUID) error {
	return s.goals.Delete(goalID, userID)
}

func parseGoalAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a valid amount", ErrInvalidGoalAmount, value)
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidGoalAmount
	}
	return amount, nil
}
