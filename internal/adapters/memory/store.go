// Package memory holds process-local stores used for the memory backend and for tests.
// Every operation fails fast with the context error once ctx is done.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
)

// TransactionRepository keeps transactions in insertion order. Callers get copies.
type TransactionRepository struct {
	mu          sync.RWMutex
	rows        []domain.Transaction
	byReference map[string]int
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		byReference: make(map[string]int),
	}
}

func (r *TransactionRepository) Save(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byReference[txn.Reference]; exists {
		return nil, fmt.Errorf("transaction reference %s already recorded", txn.Reference)
	}

	saved := *txn
	saved.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, saved)
	r.byReference[saved.Reference] = len(r.rows) - 1
	return &saved, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 1 || id > int64(len(r.rows)) {
		return nil, domain.NewTransactionNotFoundError(strconv.FormatInt(id, 10))
	}
	txn := r.rows[id-1]
	return &txn, nil
}

func (r *TransactionRepository) FindByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byReference[reference]
	if !ok {
		return nil, domain.NewTransactionNotFoundError(reference)
	}
	txn := r.rows[idx]
	return &txn, nil
}

func (r *TransactionRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lo, hi := window(len(r.rows), limit, offset)
	out := make([]*domain.Transaction, 0, hi-lo)
	for i := lo; i < hi; i++ {
		txn := r.rows[i]
		out = append(out, &txn)
	}
	return out, nil
}

// PaymentRequestRepository keeps accepted payment requests in insertion order.
type PaymentRequestRepository struct {
	mu   sync.RWMutex
	rows []domain.PaymentRecord
}

func NewPaymentRequestRepository() *PaymentRequestRepository {
	return &PaymentRequestRepository{}
}

func (r *PaymentRequestRepository) Save(ctx context.Context, record *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *record
	saved.ID = int64(len(r.rows) + 1)
	r.rows = append(r.rows, saved)
	return &saved, nil
}

func (r *PaymentRequestRepository) FindByID(ctx context.Context, id int64) (*domain.PaymentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 1 || id > int64(len(r.rows)) {
		return nil, domain.NewPaymentRequestNotFoundError(id)
	}
	record := r.rows[id-1]
	return &record, nil
}

func (r *PaymentRequestRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.PaymentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	lo, hi := window(len(r.rows), limit, offset)
	out := make([]*domain.PaymentRecord, 0, hi-lo)
	for i := lo; i < hi; i++ {
		record := r.rows[i]
		out = append(out, &record)
	}
	return out, nil
}

// window clamps a limit/offset page to [0, n).
func window(n, limit, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset >= n || limit <= 0 {
		return n, n
	}
	return offset, min(offset+limit, n)
}
