package domain_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
}

func validRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber: "4242424242424242",
		ExpiryDate: "07/33",
		CVV:        "543",
		Amount:     decimal.RequireFromString("20.00"),
		Currency:   "USD",
		MerchantID: "45723456",
	}
}

func TestValidator_Validate(t *testing.T) {
	v := domain.NewValidator(fixedNow)

	t.Run("accepts a valid request", func(t *testing.T) {
		require.NoError(t, v.Validate(validRequest()))
	})

	tests := []struct {
		name    string
		mutate  func(r *domain.PaymentRequest)
		wantErr error
	}{
		{"empty card number", func(r *domain.PaymentRequest) { r.CardNumber = "" }, domain.ErrInvalidCardNumber},
		{"luhn failure", func(r *domain.PaymentRequest) { r.CardNumber = "4242424242424241" }, domain.ErrInvalidCardNumber},
		{"non digit card", func(r *domain.PaymentRequest) { r.CardNumber = "4242-4242-4242-4242" }, domain.ErrInvalidCardNumber},
		{"card too short", func(r *domain.PaymentRequest) { r.CardNumber = "42424242" }, domain.ErrInvalidCardNumber},
		{"past expiry", func(r *domain.PaymentRequest) { r.ExpiryDate = "01/00" }, domain.ErrInvalidExpiryDate},
		{"current month expiry", func(r *domain.PaymentRequest) { r.ExpiryDate = "10/26" }, domain.ErrInvalidExpiryDate},
		{"malformed expiry", func(r *domain.PaymentRequest) { r.ExpiryDate = "7/33" }, domain.ErrInvalidExpiryDate},
		{"month out of range", func(r *domain.PaymentRequest) { r.ExpiryDate = "13/33" }, domain.ErrInvalidExpiryDate},
		{"cvv too long", func(r *domain.PaymentRequest) { r.CVV = "5431" }, domain.ErrInvalidCVV},
		{"cvv not digits", func(r *domain.PaymentRequest) { r.CVV = "54a" }, domain.ErrInvalidCVV},
		{"unsupported currency", func(r *domain.PaymentRequest) { r.Currency = "XXX" }, domain.ErrUnsupportedCurrency},
		{"lowercase currency", func(r *domain.PaymentRequest) { r.Currency = "usd" }, domain.ErrUnsupportedCurrency},
		{"zero amount", func(r *domain.PaymentRequest) { r.Amount = decimal.Zero }, domain.ErrInvalidAmount},
		{"negative amount", func(r *domain.PaymentRequest) { r.Amount = decimal.RequireFromString("-5") }, domain.ErrInvalidAmount},
		{"sub cent amount", func(r *domain.PaymentRequest) { r.Amount = decimal.RequireFromString("19.999") }, domain.ErrInvalidAmount},
		{"amount above maximum", func(r *domain.PaymentRequest) { r.Amount = domain.MaxAmount.Add(decimal.RequireFromString("0.01")) }, domain.ErrInvalidAmount},
		{"amount with twenty one digits", func(r *domain.PaymentRequest) { r.Amount = decimal.RequireFromString("100000000000000000000") }, domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidator_AmountBoundary(t *testing.T) {
	v := domain.NewValidator(fixedNow)

	for _, amount := range []string{"0.01", "99999999999999999.99", "99999999999999999"} {
		req := validRequest()
		req.Amount = decimal.RequireFromString(amount)
		assert.NoError(t, v.Validate(req), amount)
	}
}

func TestValidator_FirstFailureWins(t *testing.T) {
	v := domain.NewValidator(fixedNow)
	req := validRequest()
	req.CardNumber = ""
	req.ExpiryDate = "01/00"
	req.Currency = "XXX"

	err := v.Validate(req)

	vErr, ok := domain.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.RuleCardNumber, vErr.Rule)
}

func TestValidator_ExpiryFollowsClock(t *testing.T) {
	req := validRequest()
	req.ExpiryDate = "11/26"

	before := domain.NewValidator(fixedNow)
	assert.NoError(t, before.Validate(req))

	after := domain.NewValidator(func() time.Time {
		return time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	})
	assert.ErrorIs(t, after.Validate(req), domain.ErrInvalidExpiryDate)
}

func TestValidCVV(t *testing.T) {
	t.Run("three digits for regular cards", func(t *testing.T) {
		assert.True(t, domain.ValidCVV("543", "4242424242424242"))
		assert.False(t, domain.ValidCVV("1234", "4242424242424242"))
	})

	t.Run("four digits for 34 and 37 prefixes", func(t *testing.T) {
		assert.True(t, domain.ValidCVV("1234", "378282246310005"))
		assert.True(t, domain.ValidCVV("1234", "341111111111111"))
		assert.False(t, domain.ValidCVV("123", "378282246310005"))
	})
}

func TestLuhn(t *testing.T) {
	valid := []string{"4242424242424242", "5293663535991228", "378282246310005", "4111111111111111"}
	for _, n := range valid {
		assert.True(t, domain.Luhn(n), n)
	}

	invalid := []string{"", "4242424242424241", "42424242424242x2", " 4242424242424242"}
	for _, n := range invalid {
		assert.False(t, domain.Luhn(n), n)
	}
}

func TestParseExpiry(t *testing.T) {
	year, month, ok := domain.ParseExpiry("07/33")
	require.True(t, ok)
	assert.Equal(t, 2033, year)
	assert.Equal(t, time.July, month)

	for _, in := range []string{"", "0733", "07-33", "00/33", "ab/cd", "07/333"} {
		_, _, ok := domain.ParseExpiry(in)
		assert.False(t, ok, in)
	}
}
