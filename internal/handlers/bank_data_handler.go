package handlers

import (
	stderrors "errors"
	"net/http"

	"finboard/internal/dto"
	"finboard/internal/errors"
	"finboard/internal/repositories"
	"finboard/internal/services"
	"finboard/internal/truelayer"

	"github.com/labstack/echo/v4"
)

// BankDataHandler serves the aggregator-backed data endpoints. The three
// aggregate endpoints share one pipeline: resolve a token, list accounts, fan
// out per-account sub-resource calls, wrap the ordered results under the
// endpoint's response key.
type BankDataHandler struct {
	resolver      services.TokenResolverInterface
	bankData      services.BankDataServiceInterface
	secureCookies bool
}

// NewBankDataHandler creates a new bank data handler
func NewBankDataHandler(resolver services.TokenResolverInterface, bankData services.BankDataServiceInterface, secureCookies bool) *BankDataHandler {
	return &BankDataHandler{
		resolver:      resolver,
		bankData:      bankData,
		secureCookies: secureCookies,
	}
}

// Accounts returns the aggregator's accounts payload unchanged. Unlike the
// aggregate endpoints this one accepts only the access-token cookie: no DB
// fallback and no refresh.
func (h *BankDataHandler) Accounts(c echo.Context) error {
	accessToken := cookieValue(c, AccessTokenCookieName)
	if accessToken == "" {
		return SendError(c, errors.AuthNoAccessToken)
	}

	raw, err := h.bankData.ListAccountsRaw(c.Request().Context(), accessToken)
	if err != nil {
		return h.sendDataError(c, err)
	}

	return c.JSONBlob(http.StatusOK, raw)
}

// Balances returns every account with its balance result.
func (h *BankDataHandler) Balances(c echo.Context) error {
	resolved, errResp := h.resolveToken(c)
	if resolved == nil {
		return errResp
	}

	results, err := h.bankData.AccountsWithBalances(c.Request().Context(), resolved.AccessToken)
	if err != nil {
		return h.sendDataError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BalancesResponse{AccountsWithBalances: results})
}

// Transactions returns every account with its transactions result.
func (h *BankDataHandler) Transactions(c echo.Context) error {
	resolved, errResp := h.resolveToken(c)
	if resolved == nil {
		return errResp
	}

	results, err := h.bankData.AccountsWithTransactions(c.Request().Context(), resolved.AccessToken)
	if err != nil {
		return h.sendDataError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionsResponse{AccountsWithTransactions: results})
}

// RecurringPayments returns every account with its merged standing orders and
// direct debits.
func (h *BankDataHandler) RecurringPayments(c echo.Context) error {
	resolved, errResp := h.resolveToken(c)
	if resolved == nil {
		return errResp
	}

	results, err := h.bankData.AccountsWithRecurringPayments(c.Request().Context(), resolved.AccessToken)
	if err != nil {
		return h.sendDataError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RecurringPaymentsResponse{AccountsWithRecurringPayments: results})
}

// resolveToken runs token resolution for an aggregate endpoint. On failure
// the error response has already been written and is returned as the second
// value; on success a refreshed token is written back as a Strict cookie
// before any data call is made.
func (h *BankDataHandler) resolveToken(c echo.Context) (*services.ResolvedToken, error) {
	creds := services.RequestCredentials{
		AccessTokenCookie:   cookieValue(c, AccessTokenCookieName),
		RefreshTokenCookie:  cookieValue(c, RefreshTokenCookieName),
		AuthorizationHeader: c.Request().Header.Get("Authorization"),
	}

	resolved, err := h.resolver.Resolve(c.Request().Context(), creds)
	if err != nil {
		return nil, h.sendResolveError(c, err)
	}

	if resolved.Refreshed {
		c.SetCookie(refreshedAccessTokenCookie(resolved.AccessToken, resolved.ExpiresIn, h.secureCookies))
	}

	return resolved, nil
}

func (h *BankDataHandler) sendResolveError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrMissingAuthToken):
		return SendError(c, errors.AuthMissingToken)
	case stderrors.Is(err, repositories.ErrConnectionNotFound):
		return SendError(c, errors.ConnectionNotFound)
	case stderrors.Is(err, services.ErrNoAccessToken):
		return SendError(c, errors.AuthNoAccessToken)
	case stderrors.Is(err, services.ErrRefreshFailed):
		return SendError(c, errors.AuthRefreshFailed)
	default:
		return SendSystemError(c, err)
	}
}

// sendDataError maps account-listing failures. An upstream 401 means the bank
// token expired; any other upstream status is forwarded verbatim with the
// upstream's message.
func (h *BankDataHandler) sendDataError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrNoAccounts) {
		return SendError(c, errors.AccountsNotFound)
	}

	var apiErr *truelayer.APIError
	if stderrors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusUnauthorized {
			return SendError(c, errors.AuthBankTokenExpired)
		}
		return SendErrorWithStatus(c, apiErr.StatusCode, errors.AccountsUpstream, errors.WithMessage(apiErr.Message))
	}

	return SendSystemError(c, err)
}
