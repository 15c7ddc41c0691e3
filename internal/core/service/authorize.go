package service

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/DanielPopoola/psp-gateway/internal/core/ports"
)

// AuthorizationService runs a payment request through validation, acquirer routing and the
// acquirer decision, then records the resulting transaction.
type AuthorizationService struct {
	store     ports.TransactionStore
	validator *domain.Validator
	clock     ports.Clock
	ids       ports.IDGenerator
}

func NewAuthorizationService(store ports.TransactionStore, clock ports.Clock, ids ports.IDGenerator) *AuthorizationService {
	return &AuthorizationService{
		store:     store,
		validator: domain.NewValidator(clock.Now),
		clock:     clock,
		ids:       ids,
	}
}

// Validate checks a request without authorizing it.
func (s *AuthorizationService) Validate(req domain.PaymentRequest) error {
	return s.validator.Validate(req)
}

// Authorize returns the transaction reference generated for the request. The reference is not
// the store's record ID. Each call writes exactly one transaction; invalid requests write none.
func (s *AuthorizationService) Authorize(ctx context.Context, req domain.PaymentRequest) (string, error) {
	txn, err := s.authorize(ctx, req)
	if err != nil {
		return "", err
	}
	return txn.Reference, nil
}

func (s *AuthorizationService) authorize(ctx context.Context, req domain.PaymentRequest) (*domain.Transaction, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, NewValidationError(err)
	}

	acquirer := domain.SelectAcquirer(req.BIN())
	if !acquirer.Valid() {
		return nil, NewRoutingError(fmt.Errorf("%w: bin %s", ErrUnknownAcquirer, req.BIN()))
	}

	outcome := acquirer.Decide(req.CardNumber)
	if !outcome.IsFinal() {
		return nil, NewSettlementError(fmt.Errorf("%w: %s", ErrUndecidedOutcome, acquirer.Name()))
	}

	txn := domain.NewTransaction(req, outcome, s.ids.NewID(), s.clock.Now())

	saved, err := s.store.Save(ctx, txn)
	if err != nil {
		return nil, NewStorageError(err)
	}

	return saved, nil
}
