package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an authorization failed.
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION"
	KindRouting    ErrorKind = "ROUTING"
	KindSettlement ErrorKind = "SETTLEMENT"
	KindStorage    ErrorKind = "STORAGE"
)

// AuthorizationError is returned by the authorization pipeline. Err is the underlying cause and
// is reachable through errors.Is/As.
type AuthorizationError struct {
	Kind ErrorKind
	Err  error
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization failed (%s): %v", e.Kind, e.Err)
}

func (e *AuthorizationError) Unwrap() error {
	return e.Err
}

var (
	ErrUnknownAcquirer  = errors.New("no acquirer for card")
	ErrUndecidedOutcome = errors.New("acquirer returned no decision")
)

func NewValidationError(err error) *AuthorizationError {
	return &AuthorizationError{Kind: KindValidation, Err: err}
}

func NewRoutingError(err error) *AuthorizationError {
	return &AuthorizationError{Kind: KindRouting, Err: err}
}

func NewSettlementError(err error) *AuthorizationError {
	return &AuthorizationError{Kind: KindSettlement, Err: err}
}

func NewStorageError(err error) *AuthorizationError {
	return &AuthorizationError{Kind: KindStorage, Err: err}
}

// IsAuthorizationError returns the AuthorizationError in err's chain, if any.
func IsAuthorizationError(err error) (*AuthorizationError, bool) {
	var authErr *AuthorizationError
	ok := errors.As(err, &authErr)
	return authErr, ok
}

// IsKind reports whether err is an AuthorizationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	authErr, ok := IsAuthorizationError(err)
	return ok && authErr.Kind == kind
}
