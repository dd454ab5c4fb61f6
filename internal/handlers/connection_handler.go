package handlers

import (
	stderrors "errors"
	"net/http"

	"finboard/internal/dto"
	"finboard/internal/errors"
	"finboard/internal/services"

	"github.com/labstack/echo/v4"
)

// ConnectionHandler serves the bank-connection lifecycle endpoints. All of
// them sit behind RequireAuth; the user identity comes from the bearer token.
type ConnectionHandler struct {
	connections   services.ConnectionServiceInterface
	secureCookies bool
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(connections services.ConnectionServiceInterface, secureCookies bool) *ConnectionHandler {
	return &ConnectionHandler{
		connections:   connections,
		secureCookies: secureCookies,
	}
}

// AuthURL returns the aggregator authorization URL the front-end redirects
// the browser to.
func (h *ConnectionHandler) AuthURL(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	state := c.QueryParam("state")
	return c.JSON(http.StatusOK, dto.AuthURLResponse{
		AuthURL: h.connections.AuthorizationURL(state),
	})
}

// ExchangeToken trades the OAuth callback code for tokens, persists them and
// sets the token cookies. A rejected exchange forwards the upstream error
// body and status verbatim.
func (h *ConnectionHandler) ExchangeToken(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ExchangeTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationMissingCode)
	}
	if req.Code == "" {
		return SendError(c, errors.ValidationMissingCode)
	}

	grant, status, err := h.connections.ExchangeCode(c.Request().Context(), userID, req.Code)
	if err != nil {
		if stderrors.Is(err, services.ErrConnectionPersist) {
			return SendError(c, errors.ConnectionPersistFailed)
		}
		return SendSystemError(c, err)
	}

	if grant.AccessToken == "" {
		// Upstream rejected the code; pass its body and status through so the
		// front-end sees the provider's own error.
		return c.JSON(status, grant)
	}

	for _, cookie := range exchangeTokenCookies(grant.AccessToken, grant.RefreshToken, grant.ExpiresIn, h.secureCookies) {
		c.SetCookie(cookie)
	}

	return c.JSON(http.StatusOK, dto.ExchangeTokenResponse{
		Success: true,
		Message: "Bank account connected successfully",
	})
}

// CheckConnectionStatus reports whether the user has a stored connection.
func (h *ConnectionHandler) CheckConnectionStatus(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	connected, err := h.connections.Status(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ConnectionStatusResponse{IsConnected: connected})
}

// Disconnect removes the stored connection and clears the token cookies.
func (h *ConnectionHandler) Disconnect(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.connections.Disconnect(userID); err != nil {
		return SendSystemError(c, err)
	}

	for _, cookie := range expiredTokenCookies(h.secureCookies) {
		c.SetCookie(cookie)
	}

	return c.JSON(http.StatusOK, dto.ExchangeTokenResponse{
		Success: true,
		Message: "Bank account disconnected",
	})
}
