package truelayer

import (
	"context"
	"encoding/json"

	"finboard/internal/dto"
)

// ClientInterface defines the aggregator operations the services depend on.
type ClientInterface interface {
	// AuthorizationURL builds the OAuth authorization redirect URL.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for a token pair. The parsed
	// body and upstream HTTP status are returned even on non-2xx responses so
	// callers can forward the upstream error verbatim.
	ExchangeCode(ctx context.Context, code string) (*dto.TokenGrantResponse, int, error)

	// RefreshAccessToken exchanges a refresh token for a new access token.
	// The parsed body is returned regardless of upstream status; the caller
	// inspects AccessToken presence. Only transport failures return an error.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.TokenGrantResponse, error)

	// ListAccounts fetches the user's accounts. The raw response body is
	// returned alongside the parsed list for passthrough endpoints.
	ListAccounts(ctx context.Context, accessToken string) ([]dto.Account, json.RawMessage, error)

	// AccountBalance fetches the balance results for one account.
	AccountBalance(ctx context.Context, accessToken, accountID string) (json.RawMessage, error)

	// AccountTransactions fetches the transaction results for one account.
	AccountTransactions(ctx context.Context, accessToken, accountID string) (json.RawMessage, error)

	// StandingOrders fetches the standing orders for one account.
	StandingOrders(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error)

	// DirectDebits fetches the direct debits for one account.
	DirectDebits(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error)
}
