package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidGoalName   = errors.New("goal name is required")
	ErrInvalidGoalAmount = errors.New("goal amounts cannot be negative")
)

// SavingsGoal is a manually tracked savings target. Goals are not backed by
// aggregator data; progress is updated by the user.
type SavingsGoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (sg *SavingsGoal) TableName() string {
	return "savings_goals"
}

func (sg *SavingsGoal) BeforeCreate(tx *gorm.DB) error {
	if sg.ID == uuid.Nil {
		sg.ID = uuid.New()
	}
	return sg.Validate()
}

func (sg *SavingsGoal) BeforeUpdate(tx *gorm.DB) error {
	return sg.Validate()
}

func (sg *SavingsGoal) Validate() error {
	if sg.Name == "" {
		return ErrInvalidGoalName
	}
	if sg.TargetAmount.IsNegative() || sg.CurrentAmount.IsNegative() {
		return ErrInvalidGoalAmount
	}
	return nil
}

// Progress returns the completion ratio in percent, capped at 100.
func (sg *SavingsGoal) Progress() decimal.Decimal {
	if sg.TargetAmount.IsZero() {
		return decimal.Zero
	}
	progress := sg.CurrentAmount.Div(sg.TargetAmount).Mul(decimal.NewFromInt(100))
	hundred := decimal.NewFromInt(100)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress.Round(2)
}

// IsComplete reports whether the goal has been reached.
func (sg *SavingsGoal) IsComplete() bool {
	return !sg.TargetAmount.IsZero() && sg.CurrentAmount.GreaterThanOrEqual(sg.TargetAmount)
}
