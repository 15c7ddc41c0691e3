package domain_test

import (
	"testing"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionOutcome_Status(t *testing.T) {
	assert.Equal(t, "Approved", domain.OutcomeApproved.Status())
	assert.Equal(t, "Denied", domain.OutcomeDenied.Status())
	assert.Empty(t, domain.OutcomePending.Status())
	assert.False(t, domain.OutcomePending.IsFinal())
}

func TestNewTransaction(t *testing.T) {
	req := validRequest()

	txn := domain.NewTransaction(req, domain.OutcomeApproved, "ref-1", fixedNow())

	assert.Zero(t, txn.ID)
	assert.Equal(t, req.CardNumber, txn.CardNumber)
	assert.Equal(t, req.MerchantID, txn.MerchantID)
	assert.Equal(t, "ref-1", txn.Reference)
	assert.True(t, txn.IsApproved())
	assert.True(t, req.Amount.Equal(txn.Amount))
}

func TestPaymentRequest_BIN(t *testing.T) {
	assert.Equal(t, "424242", validRequest().BIN())
	assert.Equal(t, "4242", domain.PaymentRequest{CardNumber: "4242"}.BIN())
}

func TestMaskPAN(t *testing.T) {
	assert.Equal(t, "****4242", domain.MaskPAN("4242424242424242"))
	assert.Equal(t, "****", domain.MaskPAN("42"))
}
