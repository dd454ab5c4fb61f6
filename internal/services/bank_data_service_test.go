package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"finboard/internal/dto"
	"finboard/internal/truelayer"

	"github.com/stretchr/testify/suite"
)

type BankDataServiceTestSuite struct {
	suite.Suite
	client  *fakeAggregatorClient
	service BankDataServiceInterface
}

func (s *BankDataServiceTestSuite) SetupTest() {
	s.client = &fakeAggregatorClient{}
	s.service = NewBankDataService(s.client, NoopMetrics{}, slog.Default())
}

func TestBankDataServiceSuite(t *testing.T) {
	suite.Run(t, new(BankDataServiceTestSuite))
}

func (s *BankDataServiceTestSuite) stubAccounts(accounts ...dto.Account) {
	raw, err := json.Marshal(map[string]interface{}{"results": accounts})
	s.Require().NoError(err)
	s.client.listAccountsFn = func(ctx context.Context, accessToken string) ([]dto.Account, json.RawMessage, error) {
		return accounts, raw, nil
	}
}

func testAccount(id, name string) dto.Account {
	return dto.Account{
		AccountID:     id,
		DisplayName:   name,
		AccountNumber: dto.AccountNumber{Number: "number-" + id},
	}
}

func (s *BankDataServiceTestSuite) TestListAccountsRaw_PassesBodyThrough() {
	s.stubAccounts(testAccount("acc-1", "Current Account"))

	raw, err := s.service.ListAccountsRaw(context.Background(), "access-token")

	s.NoError(err)
	s.Contains(string(raw), "acc-1")
}

func (s *BankDataServiceTestSuite) TestListAccountsRaw_EmptyListIsNotFound() {
	s.stubAccounts()

	raw, err := s.service.ListAccountsRaw(context.Background(), "access-token")

	s.ErrorIs(err, ErrNoAccounts)
	s.Nil(raw)
}

func (s *BankDataServiceTestSuite) TestListAccountsRaw_UpstreamErrorKeepsType() {
	s.client.listAccountsFn = func(ctx context.Context, accessToken string) ([]dto.Account, json.RawMessage, error) {
		return nil, nil, &truelayer.APIError{StatusCode: http.StatusUnauthorized, Message: "invalid_token"}
	}

	_, err := s.service.ListAccountsRaw(context.Background(), "access-token")

	var apiErr *truelayer.APIError
	s.ErrorAs(err, &apiErr)
	s.Equal(http.StatusUnauthorized, apiErr.StatusCode)
}

func (s *BankDataServiceTestSuite) TestAccountsWithBalances_OrderPreserved() {
	s.stubAccounts(testAccount("acc-1", "First"), testAccount("acc-2", "Second"), testAccount("acc-3", "Third"))
	s.client.balanceFn = func(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
		// Finish in reverse order to prove output order is input order.
		switch accountID {
		case "acc-1":
			time.Sleep(30 * time.Millisecond)
		case "acc-2":
			time.Sleep(15 * time.Millisecond)
		}
		return json.RawMessage(`[{"current":100.0,"account":"` + accountID + `"}]`), nil
	}

	results, err := s.service.AccountsWithBalances(context.Background(), "access-token")

	s.NoError(err)
	s.Require().Len(results, 3)
	s.Equal("acc-1", results[0].AccountID)
	s.Equal("acc-2", results[1].AccountID)
	s.Equal("acc-3", results[2].AccountID)
	s.Contains(string(results[2].Balance), "acc-3")
	s.Equal("number-acc-1", results[0].AccountNumber)
	s.Equal("First", results[0].DisplayName)
}

func (s *BankDataServiceTestSuite) TestAccountsWithBalances_WideFanOutKeepsOrder() {
	accounts := randomAccounts(12)
	s.stubAccounts(accounts...)
	s.client.balanceFn = func(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
		time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
		return json.RawMessage(`[{"current":1.0}]`), nil
	}

	results, err := s.service.AccountsWithBalances(context.Background(), "access-token")

	s.NoError(err)
	s.Require().Len(results, len(accounts))
	for i, account := range accounts {
		s.Equal(account.AccountID, results[i].AccountID)
	}
}

func (s *BankDataServiceTestSuite) TestAccountsWithBalances_PartialFailureIsolated() {
	s.stubAccounts(testAccount("acc-1", "First"), testAccount("acc-2", "Second"))
	s.client.balanceFn = func(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
		if accountID == "acc-1" {
			return nil, &truelayer.APIError{StatusCode: http.StatusForbidden, Message: "account access revoked"}
		}
		return json.RawMessage(`[{"current":42.5}]`), nil
	}

	results, err := s.service.AccountsWithBalances(context.Background(), "access-token")

	s.NoError(err)
	s.Require().Len(results, 2)
	s.Equal("account access revoked", results[0].Error)
	s.Nil(results[0].Balance)
	s.Empty(results[1].Error)
	s.NotNil(results[1].Balance)
}

func (s *BankDataServiceTestSuite) TestAccountsWithBalances_TransportErrorGetsGenericMessage() {
	s.stubAccounts(testAccount("acc-1", "First"))
	s.client.balanceFn = func(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
		return nil, errors.New("connection reset by peer")
	}

	results, err := s.service.AccountsWithBalances(context.Background(), "access-token")

	s.NoError(err)
	s.Equal("Failed to fetch balance", results[0].Error)
}

func (s *BankDataServiceTestSuite) TestAccountsWithBalances_NoAccounts() {
	s.stubAccounts()

	results, err := s.service.AccountsWithBalances(context.Background(), "access-token")

	s.ErrorIs(err, ErrNoAccounts)
	s.Nil(results)
}

func (s *BankDataServiceTestSuite) TestAccountsWithTransactions_PartialFailureIsolated() {
	s.stubAccounts(testAccount("acc-1", "First"), testAccount("acc-2", "Second"))
	s.client.transactionsFn = func(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
		if accountID == "acc-2" {
			return nil, &truelayer.APIError{StatusCode: http.StatusBadGateway, Message: "provider unavailable"}
		}
		return json.RawMessage(`[{"amount":-12.5,"description":"COFFEE"}]`), nil
	}

	results, err := s.service.AccountsWithTransactions(context.Background(), "access-token")

	s.NoError(err)
	s.Require().Len(results, 2)
	s.NotNil(results[0].Transactions)
	s.Empty(results[0].Error)
	s.Equal("provider unavailable", results[1].Error)
	s.Nil(results[1].Transactions)
}

func (s *BankDataServiceTestSuite) TestAccountsWithRecurringPayments_TypeTaggingAndTotals() {
	s.stubAccounts(testAccount("acc-1", "First"))
	s.client.standingOrdersFn = func(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
		return []map[string]interface{}{
			{"frequency": "Monthly", "payee": "Landlord"},
			{"frequency": "Weekly", "payee": "Gym"},
		}, nil
	}
	s.client.directDebitsFn = func(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
		return []map[string]interface{}{
			{"name": "Electric Co"},
		}, nil
	}

	results, err := s.service.AccountsWithRecurringPayments(context.Background(), "access-token")

	s.NoError(err)
	s.Require().Len(results, 1)
	s.Require().Len(results[0].StandingOrders, 2)
	s.Require().Len(results[0].DirectDebits, 1)
	s.Equal("STANDING_ORDER", results[0].StandingOrders[0]["type"])
	s.Equal("STANDING_ORDER", results[0].StandingOrders[1]["type"])
	s.Equal("DIRECT_DEBIT", results[0].DirectDebits[0]["type"])
	s.Equal(3, results[0].TotalRecurringPayments)
}

func (s *BankDataServiceTestSuite) TestAccountsWithRecurringPayments_FailedSubListLeftEmpty() {
	s.stubAccounts(testAccount("acc-1", "First"))
	s.client.standingOrdersFn = func(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
		return nil, &truelayer.APIError{StatusCode: http.StatusNotImplemented, Message: "endpoint_not_supported"}
	}
	s.client.directDebitsFn = func(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
		return []map[string]interface{}{{"name": "Water Co"}}, nil
	}

	results, err := s.service.AccountsWithRecurringPayments(context.Background(), "access-token")

	s.NoError(err)
	s.Require().Len(results, 1)
	s.Empty(results[0].StandingOrders)
	s.NotNil(results[0].StandingOrders)
	s.Len(results[0].DirectDebits, 1)
	s.Equal(1, results[0].TotalRecurringPayments)
}

func (s *BankDataServiceTestSuite) TestAccountsWithRecurringPayments_OrderPreservedAcrossAccounts() {
	s.stubAccounts(testAccount("acc-1", "First"), testAccount("acc-2", "Second"))
	s.client.standingOrdersFn = func(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
		if accountID == "acc-1" {
			time.Sleep(20 * time.Millisecond)
		}
		return []map[string]interface{}{}, nil
	}
	s.client.directDebitsFn = func(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
		return []map[string]interface{}{}, nil
	}

	results, err := s.service.AccountsWithRecurringPayments(context.Background(), "access-token")

	s.NoError(err)
	s.Require().Len(results, 2)
	s.Equal("acc-1", results[0].AccountID)
	s.Equal("acc-2", results[1].AccountID)
}

func (s *BankDataServiceTestSuite) TestAccountNumberLabel_FallsBackToIBAN() {
	account := dto.Account{AccountNumber: dto.AccountNumber{IBAN: "GB33BUKB20201555555555"}}
	s.Equal("GB33BUKB20201555555555", accountNumberLabel(account))
}
