package service

import (
	"context"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/DanielPopoola/psp-gateway/internal/core/ports"
)

// PaymentResult is what the gateway reports back for a processed payment request.
type PaymentResult struct {
	Transaction *domain.Transaction
	Request     *domain.PaymentRecord
}

// PaymentService authorizes a request and keeps a copy of it linked to its transaction.
type PaymentService struct {
	auth     *AuthorizationService
	requests ports.PaymentRequestRepository
	clock    ports.Clock
}

func NewPaymentService(auth *AuthorizationService, requests ports.PaymentRequestRepository, clock ports.Clock) *PaymentService {
	return &PaymentService{
		auth:     auth,
		requests: requests,
		clock:    clock,
	}
}

// Process authorizes req and records it. Requests that fail validation are never recorded.
func (s *PaymentService) Process(ctx context.Context, req domain.PaymentRequest) (*PaymentResult, error) {
	txn, err := s.auth.authorize(ctx, req)
	if err != nil {
		return nil, err
	}

	record, err := s.requests.Save(ctx, domain.NewPaymentRecord(req, txn.Reference, s.clock.Now()))
	if err != nil {
		return nil, NewStorageError(err)
	}

	return &PaymentResult{
		Transaction: txn,
		Request:     record,
	}, nil
}
