package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finboard/internal/dto"
	"finboard/internal/models"
	"finboard/internal/repositories"
	"finboard/internal/truelayer"

	"github.com/google/uuid"
)

// ErrConnectionPersist is returned when the exchanged tokens could not be
// stored.
var ErrConnectionPersist = errors.New("failed to save bank connection")

// ConnectionService manages the lifecycle of a user's aggregator connection:
// building the authorization URL, exchanging the callback code, reporting
// status and disconnecting.
type ConnectionService struct {
	client      truelayer.ClientInterface
	connections repositories.BankConnectionRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// Ensure ConnectionService implements ConnectionServiceInterface
var _ ConnectionServiceInterface = (*ConnectionService)(nil)

// NewConnectionService creates a connection service
func NewConnectionService(
	client truelayer.ClientInterface,
	connections repositories.BankConnectionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *ConnectionService {
	return &ConnectionService{
		client:      client,
		connections: connections,
		metrics:     metrics,
		logger:      logger,
	}
}

// AuthorizationURL builds the aggregator authorization URL the browser is
// redirected to.
func (s *ConnectionService) AuthorizationURL(state string) string {
	return s.client.AuthorizationURL(state)
}

// ExchangeCode trades the OAuth callback code for a token pair and persists
// it. The parsed grant and upstream status are returned even when the
// exchange is rejected so the handler can forward the upstream error body
// verbatim; persistence only happens for a successful grant.
func (s *ConnectionService) ExchangeCode(ctx context.Context, userID uuid.UUID, code string) (*dto.TokenGrantResponse, int, error) {
	grant, status, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		s.metrics.IncrementCounter("code_exchange", map[string]string{"outcome": "transport_error"})
		return nil, 0, fmt.Errorf("code exchange failed: %w", err)
	}

	if grant.AccessToken == "" {
		s.metrics.IncrementCounter("code_exchange", map[string]string{"outcome": "rejected"})
		s.logger.Warn("code exchange rejected by upstream",
			slog.String("user_id", userID.String()),
			slog.Int("status", status),
			slog.String("upstream_error", grant.Error))
		return grant, status, nil
	}

	connection := &models.BankConnection{
		UserID:       userID,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
	}
	if grant.ExpiresIn > 0 {
		expiresAt := time.Now().Add(time.Duration(grant.ExpiresIn) * time.Second)
		connection.ExpiresAt = &expiresAt
	}

	if err := s.connections.Upsert(connection); err != nil {
		s.metrics.IncrementCounter("code_exchange", map[string]string{"outcome": "persist_error"})
		s.logger.Error("failed to persist bank connection",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("%w: %v", ErrConnectionPersist, err)
	}

	s.metrics.IncrementCounter("code_exchange", map[string]string{"outcome": "success"})
	s.logger.Info("bank connection established", slog.String("user_id", userID.String()))
	return grant, status, nil
}

// Status reports whether the user has a stored connection with at least one
// usable token.
func (s *ConnectionService) Status(userID uuid.UUID) (bool, error) {
	connection, err := s.connections.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check connection status: %w", err)
	}

	return connection.HasTokens(), nil
}

// Disconnect removes the stored connection. Disconnecting an already
// disconnected user is not an error.
func (s *ConnectionService) Disconnect(userID uuid.UUID) error {
	err := s.connections.DeleteByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return nil
		}
		return fmt.Errorf("failed to disconnect: %w", err)
	}

	s.logger.Info("bank connection removed", slog.String("user_id", userID.String()))
	return nil
}
