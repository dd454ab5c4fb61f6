package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"finboard/internal/dto"
	"finboard/internal/truelayer"

	"golang.org/x/sync/errgroup"
)

// ErrNoAccounts is returned when the aggregator reports zero accounts for the
// connected user.
var ErrNoAccounts = errors.New("no accounts found")

const (
	recurringTypeStandingOrder = "STANDING_ORDER"
	recurringTypeDirectDebit   = "DIRECT_DEBIT"
)

// BankDataService fetches account data from the aggregator and fans out
// per-account sub-resource calls. All fan-outs are all-complete barriers: a
// failed call for one account is captured in that account's result slot and
// never aborts its siblings. Output order always matches account order.
type BankDataService struct {
	client  truelayer.ClientInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// Ensure BankDataService implements BankDataServiceInterface
var _ BankDataServiceInterface = (*BankDataService)(nil)

// NewBankDataService creates a bank data service
func NewBankDataService(client truelayer.ClientInterface, metrics MetricsRecorderInterface, logger *slog.Logger) *BankDataService {
	return &BankDataService{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// ListAccountsRaw returns the aggregator's accounts payload unchanged. Errors
// from the upstream keep their *truelayer.APIError type so the handler can
// forward the status.
func (s *BankDataService) ListAccountsRaw(ctx context.Context, accessToken string) ([]byte, error) {
	accounts, raw, err := s.client.ListAccounts(ctx, accessToken)
	if err != nil {
		s.recordUpstream("accounts", err)
		return nil, err
	}
	s.recordUpstream("accounts", nil)

	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	return raw, nil
}

// AccountsWithBalances lists accounts and fetches each account's balance
// concurrently.
func (s *BankDataService) AccountsWithBalances(ctx context.Context, accessToken string) ([]dto.BalanceResult, error) {
	accounts, err := s.listAccounts(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	results := make([]dto.BalanceResult, len(accounts))

	var g errgroup.Group
	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			result := dto.BalanceResult{
				AccountID:     account.AccountID,
				AccountNumber: accountNumberLabel(account),
				DisplayName:   account.DisplayName,
			}

			balance, err := s.client.AccountBalance(ctx, accessToken, account.AccountID)
			s.recordUpstream("balance", err)
			if err != nil {
				result.Error = subResourceError("balance", err)
				s.logger.Warn("balance fetch failed",
					slog.String("account_id", account.AccountID),
					slog.String("error", err.Error()))
			} else {
				result.Balance = balance
			}

			results[i] = result
			return nil
		})
	}
	// Tasks never return errors; Wait is purely the completion barrier.
	_ = g.Wait()

	s.metrics.RecordProcessingTime("fan_out", time.Since(started))
	return results, nil
}

// AccountsWithTransactions lists accounts and fetches each account's
// transactions concurrently.
func (s *BankDataService) AccountsWithTransactions(ctx context.Context, accessToken string) ([]dto.TransactionsResult, error) {
	accounts, err := s.listAccounts(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	results := make([]dto.TransactionsResult, len(accounts))

	var g errgroup.Group
	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			result := dto.TransactionsResult{
				AccountID:     account.AccountID,
				AccountNumber: accountNumberLabel(account),
				DisplayName:   account.DisplayName,
			}

			transactions, err := s.client.AccountTransactions(ctx, accessToken, account.AccountID)
			s.recordUpstream("transactions", err)
			if err != nil {
				result.Error = subResourceError("transactions", err)
				s.logger.Warn("transactions fetch failed",
					slog.String("account_id", account.AccountID),
					slog.String("error", err.Error()))
			} else {
				result.Transactions = transactions
			}

			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	s.metrics.RecordProcessingTime("fan_out", time.Since(started))
	return results, nil
}

// AccountsWithRecurringPayments lists accounts and, for each account, fetches
// standing orders and direct debits concurrently. A failed sub-list leaves
// that list empty instead of failing the account.
func (s *BankDataService) AccountsWithRecurringPayments(ctx context.Context, accessToken string) ([]dto.RecurringPaymentsResult, error) {
	accounts, err := s.listAccounts(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	results := make([]dto.RecurringPaymentsResult, len(accounts))

	var g errgroup.Group
	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			results[i] = s.fetchRecurringPayments(ctx, accessToken, account)
			return nil
		})
	}
	_ = g.Wait()

	s.metrics.RecordProcessingTime("fan_out", time.Since(started))
	return results, nil
}

func (s *BankDataService) fetchRecurringPayments(ctx context.Context, accessToken string, account dto.Account) dto.RecurringPaymentsResult {
	result := dto.RecurringPaymentsResult{
		AccountID:      account.AccountID,
		AccountNumber:  accountNumberLabel(account),
		DisplayName:    account.DisplayName,
		StandingOrders: []map[string]interface{}{},
		DirectDebits:   []map[string]interface{}{},
	}

	var inner errgroup.Group
	inner.Go(func() error {
		orders, err := s.client.StandingOrders(ctx, accessToken, account.AccountID)
		s.recordUpstream("standing_orders", err)
		if err != nil {
			s.logger.Warn("standing orders fetch failed",
				slog.String("account_id", account.AccountID),
				slog.String("error", err.Error()))
			return nil
		}
		result.StandingOrders = tagRecurringType(orders, recurringTypeStandingOrder)
		return nil
	})
	inner.Go(func() error {
		debits, err := s.client.DirectDebits(ctx, accessToken, account.AccountID)
		s.recordUpstream("direct_debits", err)
		if err != nil {
			s.logger.Warn("direct debits fetch failed",
				slog.String("account_id", account.AccountID),
				slog.String("error", err.Error()))
			return nil
		}
		result.DirectDebits = tagRecurringType(debits, recurringTypeDirectDebit)
		return nil
	})
	_ = inner.Wait()

	result.TotalRecurringPayments = len(result.StandingOrders) + len(result.DirectDebits)
	return result
}

// listAccounts fetches and parses the account list, normalizing the empty
// list into ErrNoAccounts.
func (s *BankDataService) listAccounts(ctx context.Context, accessToken string) ([]dto.Account, error) {
	accounts, _, err := s.client.ListAccounts(ctx, accessToken)
	if err != nil {
		s.recordUpstream("accounts", err)
		return nil, err
	}
	s.recordUpstream("accounts", nil)

	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}

	s.metrics.RecordGauge("fan_out_accounts", float64(len(accounts)), nil)
	return accounts, nil
}

func (s *BankDataService) recordUpstream(resource string, err error) {
	status := "success"
	if err != nil {
		status = "error"
		var apiErr *truelayer.APIError
		if errors.As(err, &apiErr) {
			status = "upstream_error"
		}
	}
	s.metrics.IncrementCounter("upstream_request", map[string]string{
		"resource": resource,
		"status":   status,
	})
}

// tagRecurringType stamps each entry with its payment type before the two
// sub-lists are merged into one account result.
func tagRecurringType(entries []map[string]interface{}, paymentType string) []map[string]interface{} {
	for _, entry := range entries {
		entry["type"] = paymentType
	}
	return entries
}

// accountNumberLabel picks a human-readable identifier for the account.
func accountNumberLabel(account dto.Account) string {
	if account.AccountNumber.Number != "" {
		return account.AccountNumber.Number
	}
	return account.AccountNumber.IBAN
}

// subResourceError renders a per-account error message, preferring the
// upstream's own message when one exists.
func subResourceError(resource string, err error) string {
	var apiErr *truelayer.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Failed to fetch " + resource
}
