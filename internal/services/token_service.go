package services

import (
	"errors"
	"fmt"
	"strings"

	"finboard/internal/config"
	"finboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidSubject    = errors.New("token subject is not a valid user id")
)

// TokenService validates HS256 JWTs issued by the auth provider. The service
// never mints tokens; sign-in happens on the provider's side and this API only
// verifies the shared-secret signature and claims.
type TokenService struct {
	config.AuthConfig
}

// NewTokenService creates a token service from auth configuration
func NewTokenService(authConfig *config.AuthConfig) TokenServiceInterface {
	return &TokenService{
		AuthConfig: *authConfig,
	}
}

// ValidateToken validates and parses a bearer token
func (ts *TokenService) ValidateToken(tokenString string) (*models.CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.CustomClaims{}, ts.keyFunc)
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if err := ts.validateClaims(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// UserIDFromClaims parses the token subject into a user ID
func (ts *TokenService) UserIDFromClaims(claims *models.CustomClaims) (uuid.UUID, error) {
	if claims == nil {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidSubject
	}

	return userID, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	// The auth provider signs with HS256 and a shared secret
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(ts.JWTSecret), nil
}

func (ts *TokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}

func (ts *TokenService) validateClaims(claims *models.CustomClaims) error {
	// Issuer verification is opt-in; the provider's issuer URL varies per
	// project so an empty configured issuer skips the check.
	if ts.Issuer != "" && claims.Issuer != ts.Issuer {
		return ErrInvalidIssuer
	}

	return nil
}
