package dto

// Connection Request DTOs

// ExchangeTokenRequest carries the OAuth authorization code returned by the
// aggregator's redirect.
type ExchangeTokenRequest struct {
	Code string `json:"code" validate:"required"`
}

// Connection Response DTOs

// ExchangeTokenResponse confirms a successful code exchange.
type ExchangeTokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ConnectionStatusResponse reports whether the user has a stored bank
// connection with usable credentials.
type ConnectionStatusResponse struct {
	IsConnected bool `json:"isConnected"`
}

// AuthURLResponse carries the aggregator authorization URL the front-end
// redirects the browser to.
type AuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}
