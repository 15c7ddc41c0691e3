package ports

import (
	"context"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
)

// TransactionStore is the write side the authorization pipeline depends on.
// Save is atomic: it either returns the transaction with its store-assigned ID or fails and
// records nothing.
type TransactionStore interface {
	Save(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

// TransactionRepository adds the read operations used by the query service.
type TransactionRepository interface {
	TransactionStore
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	FindByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	FindAll(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
}

// PaymentRequestRepository stores accepted payment requests.
type PaymentRequestRepository interface {
	Save(ctx context.Context, record *domain.PaymentRecord) (*domain.PaymentRecord, error)
	FindByID(ctx context.Context, id int64) (*domain.PaymentRecord, error)
	FindAll(ctx context.Context, limit, offset int) ([]*domain.PaymentRecord, error)
}
