// Package domain defines the payment request, the transaction record and the rules that decide
// whether a card payment is approved.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest is an incoming card payment. It is never stored before it passes validation.
type PaymentRequest struct {
	CardNumber string
	ExpiryDate string // MM/YY
	CVV        string
	Amount     decimal.Decimal
	Currency   string
	MerchantID string
}

// BIN returns the bank identification number, the first six characters of the card number.
func (r PaymentRequest) BIN() string {
	if len(r.CardNumber) < binLength {
		return r.CardNumber
	}
	return r.CardNumber[:binLength]
}

// PaymentRecord is the stored copy of an accepted payment request, linked to the transaction
// it produced. The CVV is deliberately absent.
type PaymentRecord struct {
	ID                   int64
	CardNumber           string
	ExpiryDate           string
	Amount               decimal.Decimal
	Currency             string
	MerchantID           string
	TransactionReference string
	CreatedAt            time.Time
}

// NewPaymentRecord builds an unsaved record for an authorized request.
func NewPaymentRecord(req PaymentRequest, reference string, createdAt time.Time) *PaymentRecord {
	return &PaymentRecord{
		CardNumber:           req.CardNumber,
		ExpiryDate:           req.ExpiryDate,
		Amount:               req.Amount,
		Currency:             req.Currency,
		MerchantID:           req.MerchantID,
		TransactionReference: reference,
		CreatedAt:            createdAt,
	}
}

// MaskPAN keeps the last four digits of a card number for logs.
func MaskPAN(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
