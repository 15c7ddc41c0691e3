package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/psp-gateway/internal/adapters/system"
	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func aPaymentRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber: "4242424242424242",
		ExpiryDate: "07/33",
		CVV:        "543",
		Amount:     decimal.RequireFromString("20.0"),
		Currency:   "USD",
		MerchantID: "45723456",
	}
}

func anotherPaymentRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber: "5293663535991228",
		ExpiryDate: "10/31",
		CVV:        "043",
		Amount:     decimal.RequireFromString("10.0"),
		Currency:   "USD",
		MerchantID: "87682352",
	}
}

func newTestAuthorizationService(repo *MockTransactionRepository) *AuthorizationService {
	return NewAuthorizationService(repo, FixedClock{At: testNow}, &SequenceIDGenerator{})
}

func TestAuthorizationService_Authorize_Approved(t *testing.T) {
	repo := NewMockTransactionRepository()
	svc := newTestAuthorizationService(repo)

	ref, err := svc.Authorize(context.Background(), aPaymentRequest())

	require.NoError(t, err)
	assert.Equal(t, "ref-1", ref)
	require.Len(t, repo.Saved(), 1)

	saved := repo.Saved()[0]
	assert.Equal(t, int64(1), saved.ID)
	assert.NotEqual(t, ref, "1", "reference must not be the store id")
	assert.Equal(t, domain.StatusApproved, saved.Status)
	assert.Equal(t, "4242424242424242", saved.CardNumber)
	assert.Equal(t, "45723456", saved.MerchantID)
	assert.Equal(t, ref, saved.Reference)
	assert.Equal(t, testNow, saved.CreatedAt)
}

func TestAuthorizationService_Authorize_Denied(t *testing.T) {
	repo := NewMockTransactionRepository()
	svc := newTestAuthorizationService(repo)

	// BIN 529366 sums to 31 and routes to acquirer B, which denies the even last digit.
	ref, err := svc.Authorize(context.Background(), anotherPaymentRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, ref)
	require.Len(t, repo.Saved(), 1)
	assert.Equal(t, domain.StatusDenied, repo.Saved()[0].Status)
}

func TestAuthorizationService_Authorize_ValidationFailure(t *testing.T) {
	repo := NewMockTransactionRepository()
	svc := newTestAuthorizationService(repo)

	req := aPaymentRequest()
	req.CardNumber = ""

	ref, err := svc.Authorize(context.Background(), req)

	require.Error(t, err)
	assert.Empty(t, ref)
	assert.True(t, IsKind(err, KindValidation))
	assert.ErrorIs(t, err, domain.ErrInvalidCardNumber)
	assert.Zero(t, repo.SaveCalls(), "no store write on invalid input")
}

func TestAuthorizationService_Authorize_EachRuleShortCircuits(t *testing.T) {
	cases := map[string]func(r *domain.PaymentRequest){
		"expiry":   func(r *domain.PaymentRequest) { r.ExpiryDate = "01/00" },
		"cvv":      func(r *domain.PaymentRequest) { r.CVV = "12" },
		"currency": func(r *domain.PaymentRequest) { r.Currency = "XXX" },
		"amount":   func(r *domain.PaymentRequest) { r.Amount = decimal.RequireFromString("19.999") },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := NewMockTransactionRepository()
			svc := newTestAuthorizationService(repo)
			req := aPaymentRequest()
			mutate(&req)

			_, err := svc.Authorize(context.Background(), req)

			_, isValidation := domain.IsValidationError(err)
			assert.True(t, isValidation)
			assert.Zero(t, repo.SaveCalls())
		})
	}
}

func TestAuthorizationService_Authorize_StorageFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := NewMockTransactionRepository()
	repo.SaveFn = func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
		return nil, storeErr
	}
	svc := newTestAuthorizationService(repo)

	ref, err := svc.Authorize(context.Background(), aPaymentRequest())

	require.Error(t, err)
	assert.Empty(t, ref)
	assert.True(t, IsKind(err, KindStorage))
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 1, repo.SaveCalls(), "failed saves are not retried")
}

func TestAuthorizationService_Authorize_NotIdempotent(t *testing.T) {
	repo := NewMockTransactionRepository()
	svc := NewAuthorizationService(repo, FixedClock{At: testNow}, system.UUIDGenerator{})

	first, err := svc.Authorize(context.Background(), aPaymentRequest())
	require.NoError(t, err)
	second, err := svc.Authorize(context.Background(), aPaymentRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, repo.SaveCalls())
}

func TestAuthorizationService_Validate(t *testing.T) {
	svc := newTestAuthorizationService(NewMockTransactionRepository())

	assert.NoError(t, svc.Validate(aPaymentRequest()))

	req := aPaymentRequest()
	req.Currency = "XXX"
	assert.ErrorIs(t, svc.Validate(req), domain.ErrUnsupportedCurrency)
}
