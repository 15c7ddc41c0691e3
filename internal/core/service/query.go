package service

import (
	"context"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/DanielPopoola/psp-gateway/internal/core/ports"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type TransactionQueryService struct {
	repo ports.TransactionRepository
}

func NewTransactionQueryService(repo ports.TransactionRepository) *TransactionQueryService {
	return &TransactionQueryService{
		repo: repo,
	}
}

func (s *TransactionQueryService) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TransactionQueryService) GetTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	return s.repo.FindByReference(ctx, reference)
}

func (s *TransactionQueryService) ListTransactions(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	limit, offset = normalizePage(limit, offset)
	return s.repo.FindAll(ctx, limit, offset)
}

type PaymentRequestQueryService struct {
	repo ports.PaymentRequestRepository
}

func NewPaymentRequestQueryService(repo ports.PaymentRequestRepository) *PaymentRequestQueryService {
	return &PaymentRequestQueryService{
		repo: repo,
	}
}

func (s *PaymentRequestQueryService) GetPaymentRequestByID(ctx context.Context, id int64) (*domain.PaymentRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PaymentRequestQueryService) ListPaymentRequests(ctx context.Context, limit, offset int) ([]*domain.PaymentRecord, error) {
	limit, offset = normalizePage(limit, offset)
	return s.repo.FindAll(ctx, limit, offset)
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
