package database

import (
	"fmt"
	"testing"

	"finboard/internal/config"
	"finboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestConnection(t *testing.T, db *DB, userID uuid.UUID) *models.BankConnection {
	t.Helper()

	connection := &models.BankConnection{
		UserID:       userID,
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	if err := db.Create(connection).Error; err != nil {
		t.Fatalf("failed to create test bank connection: %v", err)
	}

	return connection
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"savings_goals",
		"bank_connections",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
