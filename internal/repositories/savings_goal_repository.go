package repositories

import (
	"errors"
	"fmt"

	"finboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("savings goal not found")
)

// SavingsGoalRepository handles database operations for savings goals
type SavingsGoalRepository struct {
	db *gorm.DB
}

// NewSavingsGoalRepository creates a new savings goal repository
func NewSavingsGoalRepository(db *gorm.DB) SavingsGoalRepositoryInterface {
	return &SavingsGoalRepository{
		db: db,
	}
}

// Create creates a new savings goal
func (r *SavingsGoalRepository) Create(goal *models.SavingsGoal) error {
	if goal == nil {
		return errors.New("savings goal cannot be nil")
	}

	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create savings goal: %w", err)
	}

	return nil
}

// GetByID retrieves a goal scoped to its owner
func (r *SavingsGoalRepository) GetByID(goalID, userID uuid.UUID) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal

	if err := r.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get savings goal: %w", err)
	}

	return &goal, nil
}

// ListByUserID retrieves all goals for a user, newest first
func (r *SavingsGoalRepository) ListByUserID(userID uuid.UUID) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal

	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	return goals, nil
}

// Update saves a modified goal
func (r *SavingsGoalRepository) Update(goal *models.SavingsGoal) error {
	if goal == nil {
		return errors.New("savings goal cannot be nil")
	}

	if err := r.db.Save(goal).Error; err != nil {
		return fmt.Errorf("failed to update savings goal: %w", err)
	}

	return nil
}

// Delete removes a goal scoped to its owner
func (r *SavingsGoalRepository) Delete(goalID, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.SavingsGoal{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete savings goal: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}

	return nil
}
