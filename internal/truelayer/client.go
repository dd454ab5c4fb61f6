package truelayer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"finboard/internal/config"
	"finboard/internal/dto"
)

const (
	tokenPath          = "/connect/token"
	authorizePath      = "/"
	accountsPath       = "/data/v1/accounts"
	balancePathFmt     = "/data/v1/accounts/%s/balance"
	transactionsFmt    = "/data/v1/accounts/%s/transactions"
	standingOrdersFmt  = "/data/v1/accounts/%s/standing_orders"
	directDebitsFmt    = "/data/v1/accounts/%s/direct_debits"
	authorizationScope = "info accounts balance cards transactions direct_debits standing_orders offline_access"
)

// APIError is a non-2xx response from the aggregator's data API. The status
// code and upstream message are preserved so handlers can forward them.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("truelayer: upstream status %d: %s", e.StatusCode, e.Message)
}

// Client handles communication with the aggregator's auth and data APIs.
type Client struct {
	httpClient *http.Client
	cfg        config.TrueLayerConfig
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// NewClient creates an aggregator client. All outbound calls share one
// bounded-timeout http.Client so a hung upstream cannot hang a request
// indefinitely.
func NewClient(cfg config.TrueLayerConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// AuthorizationURL builds the OAuth authorization redirect URL for the
// configured client and providers.
func (c *Client) AuthorizationURL(state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", c.cfg.ClientID)
	q.Set("scope", authorizationScope)
	q.Set("redirect_uri", c.cfg.RedirectURI)
	q.Set("providers", c.cfg.Providers)
	if state != "" {
		q.Set("state", state)
	}
	return c.cfg.AuthBaseURL + authorizePath + "?" + q.Encode()
}

// ExchangeCode trades an authorization code for a token pair.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*dto.TokenGrantResponse, int, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("code", code)

	grant, status, err := c.postTokenForm(ctx, form)
	if err != nil {
		return nil, 0, err
	}
	return grant, status, nil
}

// RefreshAccessToken exchanges a refresh token for a new access token. The
// parsed body is returned for any upstream status; callers branch on whether
// AccessToken is populated. Only transport-level failures return an error.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.TokenGrantResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("refresh_token", refreshToken)

	grant, _, err := c.postTokenForm(ctx, form)
	if err != nil {
		return nil, err
	}
	return grant, nil
}

func (c *Client) postTokenForm(ctx context.Context, form url.Values) (*dto.TokenGrantResponse, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.AuthBaseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read token response: %w", err)
	}

	var grant dto.TokenGrantResponse
	if err := json.Unmarshal(body, &grant); err != nil {
		// Upstream occasionally returns non-JSON error pages; surface them as
		// an error description instead of failing the parse.
		grant.Error = "invalid_response"
		grant.ErrorDescription = strings.TrimSpace(string(body))
	}

	return &grant, resp.StatusCode, nil
}

// ListAccounts fetches the accounts collection. The raw body is returned so
// the accounts endpoint can pass the aggregator payload through unchanged.
func (c *Client) ListAccounts(ctx context.Context, accessToken string) ([]dto.Account, json.RawMessage, error) {
	raw, err := c.getData(ctx, accessToken, accountsPath)
	if err != nil {
		return nil, nil, err
	}

	var envelope struct {
		Results []dto.Account `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, nil, fmt.Errorf("failed to decode accounts response: %w", err)
	}

	return envelope.Results, raw, nil
}

// AccountBalance fetches the balance results for one account. The "results"
// array is returned verbatim.
func (c *Client) AccountBalance(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
	return c.getResults(ctx, accessToken, fmt.Sprintf(balancePathFmt, url.PathEscape(accountID)))
}

// AccountTransactions fetches the transaction results for one account.
func (c *Client) AccountTransactions(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
	return c.getResults(ctx, accessToken, fmt.Sprintf(transactionsFmt, url.PathEscape(accountID)))
}

// StandingOrders fetches the standing orders for one account.
func (c *Client) StandingOrders(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
	return c.getResultObjects(ctx, accessToken, fmt.Sprintf(standingOrdersFmt, url.PathEscape(accountID)))
}

// DirectDebits fetches the direct debits for one account.
func (c *Client) DirectDebits(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
	return c.getResultObjects(ctx, accessToken, fmt.Sprintf(directDebitsFmt, url.PathEscape(accountID)))
}

// getData issues an authenticated GET and returns the raw body of a 2xx
// response. Non-2xx responses become an *APIError carrying the upstream
// status and message.
func (c *Client) getData(ctx context.Context, accessToken, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIBaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build data request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("data request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read data response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    upstreamErrorMessage(body, resp.StatusCode),
		}
	}

	return body, nil
}

// getResults fetches a sub-resource and returns its "results" array, or the
// raw body when the envelope is absent.
func (c *Client) getResults(ctx context.Context, accessToken, path string) (json.RawMessage, error) {
	raw, err := c.getData(ctx, accessToken, path)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Results == nil {
		return raw, nil
	}
	return envelope.Results, nil
}

// getResultObjects fetches a sub-resource and decodes its "results" array
// into generic objects so callers can tag entries before merging.
func (c *Client) getResultObjects(ctx context.Context, accessToken, path string) ([]map[string]interface{}, error) {
	raw, err := c.getData(ctx, accessToken, path)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []map[string]interface{} `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode results: %w", err)
	}
	if envelope.Results == nil {
		return []map[string]interface{}{}, nil
	}
	return envelope.Results, nil
}

// upstreamErrorMessage extracts the most useful error string from an
// upstream failure body.
func upstreamErrorMessage(body []byte, status int) string {
	var parsed struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.ErrorDescription != "" {
			return parsed.ErrorDescription
		}
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return http.StatusText(status)
}
