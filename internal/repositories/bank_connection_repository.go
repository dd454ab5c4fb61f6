package repositories

import (
	"errors"
	"fmt"

	"finboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrConnectionNotFound = errors.New("bank connection not found")
)

// BankConnectionRepository handles database operations for bank connections
type BankConnectionRepository struct {
	db *gorm.DB
}

// NewBankConnectionRepository creates a new bank connection repository
func NewBankConnectionRepository(db *gorm.DB) BankConnectionRepositoryInterface {
	return &BankConnectionRepository{
		db: db,
	}
}

// GetByUserID retrieves the single connection row for a user
func (r *BankConnectionRepository) GetByUserID(userID uuid.UUID) (*models.BankConnection, error) {
	var connection models.BankConnection

	if err := r.db.Where("user_id = ?", userID).First(&connection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get bank connection: %w", err)
	}

	return &connection, nil
}

// Upsert creates the connection row for a user, or replaces its tokens when
// one already exists. The unique index on user_id keeps this to one row.
func (r *BankConnectionRepository) Upsert(connection *models.BankConnection) error {
	if connection == nil {
		return errors.New("bank connection cannot be nil")
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "expires_at", "updated_at"}),
	}).Create(connection).Error
	if err != nil {
		return fmt.Errorf("failed to upsert bank connection: %w", err)
	}

	return nil
}

// DeleteByUserID removes a user's connection row
func (r *BankConnectionRepository) DeleteByUserID(userID uuid.UUID) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.BankConnection{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete bank connection: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}

	return nil
}
