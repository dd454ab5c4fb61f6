package repositories

import (
	"finboard/internal/models"

	"github.com/google/uuid"
)

// BankConnectionRepositoryInterface defines database operations for stored
// aggregator connections.
type BankConnectionRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.BankConnection, error)
	Upsert(connection *models.BankConnection) error
	DeleteByUserID(userID uuid.UUID) error
}

// SavingsGoalRepositoryInterface defines database operations for savings goals.
type SavingsGoalRepositoryInterface interface {
	Create(goal *models.SavingsGoal) error
	GetByID(goalID, userID uuid.UUID) (*models.SavingsGoal, error)
	ListByUserID(userID uuid.UUID) ([]models.SavingsGoal, error)
	Update(goal *models.SavingsGoal) error
	Delete(goalID, userID uuid.UUID) error
}
