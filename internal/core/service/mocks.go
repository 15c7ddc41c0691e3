package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
)

// MockTransactionRepository
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
	saveCalls    int

	SaveFn            func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByIDFn        func(ctx context.Context, id int64) (*domain.Transaction, error)
	FindByReferenceFn func(ctx context.Context, reference string) (*domain.Transaction, error)
	FindAllFn         func(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Save(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.SaveFn != nil {
		return m.SaveFn(ctx, txn)
	}
	saved := *txn
	saved.ID = int64(len(m.transactions) + 1)
	m.transactions = append(m.transactions, &saved)
	return &saved, nil
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	for _, t := range m.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domain.NewTransactionNotFoundError(fmt.Sprint(id))
}

func (m *MockTransactionRepository) FindByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindByReferenceFn != nil {
		return m.FindByReferenceFn(ctx, reference)
	}
	for _, t := range m.transactions {
		if t.Reference == reference {
			return t, nil
		}
	}
	return nil, domain.NewTransactionNotFoundError(reference)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, limit, offset)
	}
	if offset >= len(m.transactions) {
		return []*domain.Transaction{}, nil
	}
	end := min(offset+limit, len(m.transactions))
	return m.transactions[offset:end], nil
}

// SaveCalls returns how many times Save was invoked, including failed calls.
func (m *MockTransactionRepository) SaveCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveCalls
}

// Saved returns the transactions stored so far.
func (m *MockTransactionRepository) Saved() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// MockPaymentRequestRepository
type MockPaymentRequestRepository struct {
	mu      sync.RWMutex
	records []*domain.PaymentRecord

	SaveFn     func(ctx context.Context, record *domain.PaymentRecord) (*domain.PaymentRecord, error)
	FindByIDFn func(ctx context.Context, id int64) (*domain.PaymentRecord, error)
	FindAllFn  func(ctx context.Context, limit, offset int) ([]*domain.PaymentRecord, error)
}

func NewMockPaymentRequestRepository() *MockPaymentRequestRepository {
	return &MockPaymentRequestRepository{}
}

func (m *MockPaymentRequestRepository) Save(ctx context.Context, record *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveFn != nil {
		return m.SaveFn(ctx, record)
	}
	saved := *record
	saved.ID = int64(len(m.records) + 1)
	m.records = append(m.records, &saved)
	return &saved, nil
}

func (m *MockPaymentRequestRepository) FindByID(ctx context.Context, id int64) (*domain.PaymentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, domain.NewPaymentRequestNotFoundError(id)
}

func (m *MockPaymentRequestRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.PaymentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, limit, offset)
	}
	if offset >= len(m.records) {
		return []*domain.PaymentRecord{}, nil
	}
	end := min(offset+limit, len(m.records))
	return m.records[offset:end], nil
}

// Saved returns the records stored so far.
func (m *MockPaymentRequestRepository) Saved() []*domain.PaymentRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.PaymentRecord, len(m.records))
	copy(out, m.records)
	return out
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// SequenceIDGenerator hands out ref-1, ref-2, ...
type SequenceIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *SequenceIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("ref-%d", g.next)
}
