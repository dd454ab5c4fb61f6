package services

import (
	"context"
	"encoding/json"
	"time"

	"finboard/internal/dto"
	"finboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang-jwt/jwt/v5"
)

// fakeAggregatorClient is a func-field fake for truelayer.ClientInterface.
// Unconfigured methods panic so tests fail loudly on unexpected calls.
type fakeAggregatorClient struct {
	authorizationURLFn func(state string) string
	exchangeCodeFn     func(ctx context.Context, code string) (*dto.TokenGrantResponse, int, error)
	refreshFn          func(ctx context.Context, refreshToken string) (*dto.TokenGrantResponse, error)
	listAccountsFn     func(ctx context.Context, accessToken string) ([]dto.Account, json.RawMessage, error)
	balanceFn          func(ctx context.Context, accessToken, accountID string) (json.RawMessage, error)
	transactionsFn     func(ctx context.Context, accessToken, accountID string) (json.RawMessage, error)
	standingOrdersFn   func(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error)
	directDebitsFn     func(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error)
}

func (f *fakeAggregatorClient) AuthorizationURL(state string) string {
	if f.authorizationURLFn == nil {
		panic("unexpected AuthorizationURL call")
	}
	return f.authorizationURLFn(state)
}

func (f *fakeAggregatorClient) ExchangeCode(ctx context.Context, code string) (*dto.TokenGrantResponse, int, error) {
	if f.exchangeCodeFn == nil {
		panic("unexpected ExchangeCode call")
	}
	return f.exchangeCodeFn(ctx, code)
}

func (f *fakeAggregatorClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*dto.TokenGrantResponse, error) {
	if f.refreshFn == nil {
		panic("unexpected RefreshAccessToken call")
	}
	return f.refreshFn(ctx, refreshToken)
}

func (f *fakeAggregatorClient) ListAccounts(ctx context.Context, accessToken string) ([]dto.Account, json.RawMessage, error) {
	if f.listAccountsFn == nil {
		panic("unexpected ListAccounts call")
	}
	return f.listAccountsFn(ctx, accessToken)
}

func (f *fakeAggregatorClient) AccountBalance(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
	if f.balanceFn == nil {
		panic("unexpected AccountBalance call")
	}
	return f.balanceFn(ctx, accessToken, accountID)
}

func (f *fakeAggregatorClient) AccountTransactions(ctx context.Context, accessToken, accountID string) (json.RawMessage, error) {
	if f.transactionsFn == nil {
		panic("unexpected AccountTransactions call")
	}
	return f.transactionsFn(ctx, accessToken, accountID)
}

func (f *fakeAggregatorClient) StandingOrders(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
	if f.standingOrdersFn == nil {
		panic("unexpected StandingOrders call")
	}
	return f.standingOrdersFn(ctx, accessToken, accountID)
}

func (f *fakeAggregatorClient) DirectDebits(ctx context.Context, accessToken, accountID string) ([]map[string]interface{}, error) {
	if f.directDebitsFn == nil {
		panic("unexpected DirectDebits call")
	}
	return f.directDebitsFn(ctx, accessToken, accountID)
}

// mintTestToken signs an HS256 JWT the way the auth provider does.
func mintTestToken(secret, issuer, subject string, expiresAt time.Time) string {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return signed
}

// randomAccounts generates n fake aggregator accounts with distinct IDs.
func randomAccounts(n int) []dto.Account {
	accounts := make([]dto.Account, n)
	for i := range accounts {
		accounts[i] = dto.Account{
			AccountID:   gofakeit.UUID(),
			DisplayName: gofakeit.Company(),
			AccountNumber: dto.AccountNumber{
				Number: gofakeit.AchAccount(),
			},
		}
	}
	return accounts
}
