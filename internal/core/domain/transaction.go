package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionOutcome is the decision rendered for an authorization attempt.
type TransactionOutcome string

const (
	OutcomePending  TransactionOutcome = "PENDING"
	OutcomeApproved TransactionOutcome = "APPROVED"
	OutcomeDenied   TransactionOutcome = "DENIED"
)

// Stored status strings. Readers of the transactions table depend on these exact values.
const (
	StatusApproved = "Approved"
	StatusDenied   = "Denied"
)

// Status maps a final outcome to the status string that gets persisted.
// PENDING has no stored form and yields an empty string.
func (o TransactionOutcome) Status() string {
	switch o {
	case OutcomeApproved:
		return StatusApproved
	case OutcomeDenied:
		return StatusDenied
	default:
		return ""
	}
}

// IsFinal reports whether the outcome can be persisted.
func (o TransactionOutcome) IsFinal() bool {
	return o == OutcomeApproved || o == OutcomeDenied
}

// Transaction is the append-only record of one authorization attempt.
// ID is assigned by the store on save and is zero before that. Reference is generated by the
// gateway and is the value returned to callers.
type Transaction struct {
	ID         int64
	CardNumber string
	Amount     decimal.Decimal
	Currency   string
	Status     string
	Reference  string
	MerchantID string
	CreatedAt  time.Time
}

// NewTransaction builds an unsaved transaction for a decided request.
func NewTransaction(req PaymentRequest, outcome TransactionOutcome, reference string, createdAt time.Time) *Transaction {
	return &Transaction{
		CardNumber: req.CardNumber,
		Amount:     req.Amount,
		Currency:   req.Currency,
		Status:     outcome.Status(),
		Reference:  reference,
		MerchantID: req.MerchantID,
		CreatedAt:  createdAt,
	}
}

// IsApproved reports whether the stored status is the approved one.
func (t *Transaction) IsApproved() bool {
	return t.Status == StatusApproved
}
