package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finboard/internal/repositories"
	"finboard/internal/truelayer"
)

var (
	ErrMissingAuthToken = errors.New("missing authentication token")
	ErrRefreshFailed    = errors.New("failed to refresh access token")
	ErrNoAccessToken    = errors.New("no access token available")
)

// RequestCredentials carries the token material extracted from an inbound
// request. Empty strings mean the source was absent.
type RequestCredentials struct {
	AccessTokenCookie   string
	RefreshTokenCookie  string
	AuthorizationHeader string
}

// ResolvedToken is the outcome of token resolution. When Refreshed is set the
// access token was minted during this request and the handler must write it
// back as a cookie with the given lifetime.
type ResolvedToken struct {
	AccessToken  string
	RefreshToken string
	Refreshed    bool
	ExpiresIn    int
}

// TokenResolver obtains a usable aggregator access token for a request. The
// sources are tried in a fixed order: the access-token cookie wins outright,
// then the stored connection looked up via the bearer identity, then a
// refresh-token exchange. Cookie tokens are used as-is; expiry surfaces as a
// downstream 401 rather than a proactive refresh.
type TokenResolver struct {
	tokens      TokenServiceInterface
	connections repositories.BankConnectionRepositoryInterface
	client      truelayer.ClientInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// Ensure TokenResolver implements TokenResolverInterface
var _ TokenResolverInterface = (*TokenResolver)(nil)

// NewTokenResolver creates a token resolver
func NewTokenResolver(
	tokens TokenServiceInterface,
	connections repositories.BankConnectionRepositoryInterface,
	client truelayer.ClientInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *TokenResolver {
	return &TokenResolver{
		tokens:      tokens,
		connections: connections,
		client:      client,
		metrics:     metrics,
		logger:      logger,
	}
}

// Resolve produces a token pair for the request or fails with one of the
// resolver sentinels.
func (r *TokenResolver) Resolve(ctx context.Context, creds RequestCredentials) (*ResolvedToken, error) {
	// Step 1: an access-token cookie is authoritative. No lookup, no refresh.
	if creds.AccessTokenCookie != "" {
		return &ResolvedToken{
			AccessToken:  creds.AccessTokenCookie,
			RefreshToken: creds.RefreshTokenCookie,
		}, nil
	}

	// Step 2: no cookies at all falls back to the stored connection, keyed by
	// the bearer identity.
	if creds.RefreshTokenCookie == "" {
		return r.resolveFromConnection(creds.AuthorizationHeader)
	}

	// Step 3: refresh-token cookie only.
	return r.resolveByRefresh(ctx, creds.RefreshTokenCookie)
}

func (r *TokenResolver) resolveFromConnection(authHeader string) (*ResolvedToken, error) {
	tokenString, err := r.tokens.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return nil, ErrMissingAuthToken
	}

	claims, err := r.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAuthToken, err)
	}

	userID, err := r.tokens.UserIDFromClaims(claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingAuthToken, err)
	}

	connection, err := r.connections.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, repositories.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to load bank connection: %w", err)
	}

	if !connection.HasTokens() {
		return nil, repositories.ErrConnectionNotFound
	}

	if connection.AccessToken == "" && connection.RefreshToken != "" {
		// Stored row only has a refresh token; without an access token the
		// caller cannot proceed.
		return nil, ErrNoAccessToken
	}

	return &ResolvedToken{
		AccessToken:  connection.AccessToken,
		RefreshToken: connection.RefreshToken,
	}, nil
}

func (r *TokenResolver) resolveByRefresh(ctx context.Context, refreshToken string) (*ResolvedToken, error) {
	grant, err := r.client.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		r.metrics.IncrementCounter("token_refresh", map[string]string{"outcome": "transport_error"})
		r.logger.Error("token refresh transport failure", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	if grant.AccessToken == "" {
		r.metrics.IncrementCounter("token_refresh", map[string]string{"outcome": "rejected"})
		r.logger.Warn("token refresh rejected by upstream",
			slog.String("upstream_error", grant.Error),
			slog.String("description", grant.ErrorDescription))
		return nil, ErrRefreshFailed
	}

	r.metrics.IncrementCounter("token_refresh", map[string]string{"outcome": "success"})

	expiresIn := grant.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = 3600
	}

	resolved := &ResolvedToken{
		AccessToken:  grant.AccessToken,
		RefreshToken: refreshToken,
		Refreshed:    true,
		ExpiresIn:    expiresIn,
	}
	if grant.RefreshToken != "" {
		resolved.RefreshToken = grant.RefreshToken
	}
	return resolved, nil
}
