package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeTransactionNotFound    = "TRANSACTION_NOT_FOUND"
	ErrCodePaymentRequestNotFound = "PAYMENT_REQUEST_NOT_FOUND"
)

func NewTransactionNotFoundError(key string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransactionNotFound,
		Message: fmt.Sprintf("transaction %s not found", key),
	}
}

func NewPaymentRequestNotFoundError(id int64) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentRequestNotFound,
		Message: fmt.Sprintf("payment request %d not found", id),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// ValidationRule names the payment rule a request failed.
type ValidationRule string

const (
	RuleCardNumber ValidationRule = "INVALID_CARD_NUMBER"
	RuleExpiryDate ValidationRule = "INVALID_EXPIRY_DATE"
	RuleCVV        ValidationRule = "INVALID_CVV"
	RuleCurrency   ValidationRule = "UNSUPPORTED_CURRENCY"
	RuleAmount     ValidationRule = "INVALID_AMOUNT"
)

// ValidationError reports the first rule a payment request failed.
type ValidationError struct {
	Rule    ValidationRule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError for the same rule, so callers can compare against the
// exported sentinels with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Rule == e.Rule
}

var (
	ErrInvalidCardNumber   = &ValidationError{Rule: RuleCardNumber, Message: "invalid card number"}
	ErrInvalidExpiryDate   = &ValidationError{Rule: RuleExpiryDate, Message: "invalid expiry date"}
	ErrInvalidCVV          = &ValidationError{Rule: RuleCVV, Message: "invalid CVV"}
	ErrUnsupportedCurrency = &ValidationError{Rule: RuleCurrency, Message: "invalid currency code"}
	ErrInvalidAmount       = &ValidationError{Rule: RuleAmount, Message: "invalid amount"}
)

// IsValidationError reports whether err carries a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
