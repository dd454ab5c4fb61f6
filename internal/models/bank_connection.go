package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankConnection stores the aggregator OAuth tokens for a user's connected
// bank. At most one active connection per user; the unique index on user_id
// enforces the single-row assumption the token resolver relies on.
type BankConnection struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	AccessToken  string     `gorm:"type:text" json:"-"`
	RefreshToken string     `gorm:"type:text" json:"-"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null" json:"updated_at"`
}

func (bc *BankConnection) TableName() string {
	return "bank_connections"
}

func (bc *BankConnection) BeforeCreate(tx *gorm.DB) error {
	if bc.ID == uuid.Nil {
		bc.ID = uuid.New()
	}
	return nil
}

// HasTokens reports whether the row carries at least one usable credential.
// Rows with neither token are treated as missing by the token resolver.
func (bc *BankConnection) HasTokens() bool {
	return bc.AccessToken != "" || bc.RefreshToken != ""
}

// IsExpired reports whether the stored access token is past its recorded
// expiry. A nil expiry means the expiry was never reported and the token is
// used optimistically until the aggregator rejects it.
func (bc *BankConnection) IsExpired() bool {
	if bc.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*bc.ExpiresAt)
}
