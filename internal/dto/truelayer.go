package dto

import "encoding/json"

// Upstream aggregator DTOs

// TokenGrantResponse is the body returned by the aggregator's OAuth token
// endpoint, for both authorization-code and refresh-token grants. On a
// non-2xx response the error fields are populated instead of the tokens;
// callers branch on AccessToken presence rather than on HTTP status.
type TokenGrantResponse struct {
	AccessToken      string `json:"access_token,omitempty"`
	RefreshToken     string `json:"refresh_token,omitempty"`
	ExpiresIn        int    `json:"expires_in,omitempty"`
	TokenType        string `json:"token_type,omitempty"`
	Scope            string `json:"scope,omitempty"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// Account is a single entry under "results" in the aggregator's accounts
// response. Only the fields the dashboard needs are mapped; everything else
// travels in the raw payload.
type Account struct {
	AccountID     string        `json:"account_id"`
	AccountType   string        `json:"account_type,omitempty"`
	DisplayName   string        `json:"display_name,omitempty"`
	Currency      string        `json:"currency,omitempty"`
	AccountNumber AccountNumber `json:"account_number,omitempty"`
}

// AccountNumber carries the provider-specific account identifiers.
type AccountNumber struct {
	IBAN     string `json:"iban,omitempty"`
	Number   string `json:"number,omitempty"`
	SortCode string `json:"sort_code,omitempty"`
	SwiftBIC string `json:"swift_bic,omitempty"`
}

// Aggregate response DTOs

// BalanceResult is the per-account unit of the balances aggregate. Exactly
// one of Balance or Error is set.
type BalanceResult struct {
	AccountID     string          `json:"account_id"`
	AccountNumber string          `json:"account_number,omitempty"`
	DisplayName   string          `json:"display_name,omitempty"`
	Balance       json.RawMessage `json:"balance,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// TransactionsResult is the per-account unit of the transactions aggregate.
// Exactly one of Transactions or Error is set.
type TransactionsResult struct {
	AccountID     string          `json:"account_id"`
	AccountNumber string          `json:"account_number,omitempty"`
	DisplayName   string          `json:"display_name,omitempty"`
	Transactions  json.RawMessage `json:"transactions,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// RecurringPaymentsResult is the per-account unit of the recurring-payments
// aggregate. A failed sub-resource fetch leaves its list empty rather than
// marking the whole account failed, so both lists are always present.
type RecurringPaymentsResult struct {
	AccountID              string                   `json:"account_id"`
	AccountNumber          string                   `json:"account_number,omitempty"`
	DisplayName            string                   `json:"display_name,omitempty"`
	StandingOrders         []map[string]interface{} `json:"standing_orders"`
	DirectDebits           []map[string]interface{} `json:"direct_debits"`
	TotalRecurringPayments int                      `json:"total_recurring_payments"`
}

// BalancesResponse wraps the ordered balance results.
type BalancesResponse struct {
	AccountsWithBalances []BalanceResult `json:"accounts_with_balances"`
}

// TransactionsResponse wraps the ordered transaction results.
type TransactionsResponse struct {
	AccountsWithTransactions []TransactionsResult `json:"accounts_with_transactions"`
}

// RecurringPaymentsResponse wraps the ordered recurring-payment results.
type RecurringPaymentsResponse struct {
	AccountsWithRecurringPayments []RecurringPaymentsResult `json:"accounts_with_recurring_payments"`
}
