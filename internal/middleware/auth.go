package middleware

import (
	"finboard/internal/errors"
	"finboard/internal/handlers"
	"finboard/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid bearer token from
// the auth provider and stores the resolved user identity in the request
// context.
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Token has expired"))
				}
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			userID, err := tokenService.UserIDFromClaims(claims)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)

			return next(c)
		}
	}
}
