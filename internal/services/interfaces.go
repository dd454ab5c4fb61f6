package services

import (
	"context"
	"time"

	"finboard/internal/dto"
	"finboard/internal/models"

	"github.com/google/uuid"
)

// TokenServiceInterface validates bearer tokens issued by the auth provider.
type TokenServiceInterface interface {
	ValidateToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	UserIDFromClaims(claims *models.CustomClaims) (uuid.UUID, error)
}

// TokenResolverInterface produces a usable aggregator access token for the
// current request, trying cookies, then the stored connection, then a
// refresh-token exchange.
type TokenResolverInterface interface {
	Resolve(ctx context.Context, creds RequestCredentials) (*ResolvedToken, error)
}

// BankDataServiceInterface fetches and aggregates account data from the
// upstream aggregator.
type BankDataServiceInterface interface {
	ListAccountsRaw(ctx context.Context, accessToken string) ([]byte, error)
	AccountsWithBalances(ctx context.Context, accessToken string) ([]dto.BalanceResult, error)
	AccountsWithTransactions(ctx context.Context, accessToken string) ([]dto.TransactionsResult, error)
	AccountsWithRecurringPayments(ctx context.Context, accessToken string) ([]dto.RecurringPaymentsResult, error)
}

// ConnectionServiceInterface manages the stored aggregator connection.
type ConnectionServiceInterface interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, userID uuid.UUID, code string) (*dto.TokenGrantResponse, int, error)
	Status(userID uuid.UUID) (bool, error)
	Disconnect(userID uuid.UUID) error
}

// SavingsGoalServiceInterface defines savings-goal business operations.
type SavingsGoalServiceInterface interface {
	CreateGoal(userID uuid.UUID, req *dto.CreateSavingsGoalRequest) (*models.SavingsGoal, error)
	GetGoal(goalID, userID uuid.UUID) (*models.SavingsGoal, error)
	ListGoals(userID uuid.UUID) ([]models.SavingsGoal, error)
	UpdateGoal(goalID, userID uuid.UUID, req *dto.UpdateSavingsGoalRequest) (*models.SavingsGoal, error)
	DeleteGoal(goalID, userID uuid.UUID) error
}

// MetricsRecorderInterface abstracts the metrics backend so services can be
// tested without a registry.
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
