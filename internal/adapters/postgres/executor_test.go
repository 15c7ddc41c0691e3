package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	return nil
}

type fakeExecutor struct {
	row      fakeRow
	queryErr error
	lastSQL  string
	lastArgs []any
}

func (e *fakeExecutor) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (e *fakeExecutor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	e.lastSQL, e.lastArgs = sql, args
	return nil, e.queryErr
}

func (e *fakeExecutor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	e.lastSQL, e.lastArgs = sql, args
	return e.row
}

func sampleTransaction() *domain.Transaction {
	return &domain.Transaction{
		CardNumber: "4242424242424242",
		Amount:     decimal.RequireFromString("20.00"),
		Currency:   "USD",
		Status:     domain.StatusApproved,
		Reference:  "ref-1",
		MerchantID: "45723456",
		CreatedAt:  time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

func TestTransactionRepository_Save(t *testing.T) {
	exec := &fakeExecutor{row: fakeRow{id: 41}}
	repo := &TransactionRepository{q: exec}
	txn := sampleTransaction()

	saved, err := repo.Save(context.Background(), txn)

	require.NoError(t, err)
	assert.Equal(t, int64(41), saved.ID)
	assert.Zero(t, txn.ID)
	assert.Contains(t, exec.lastSQL, "RETURNING id")
	require.Len(t, exec.lastArgs, 7)
	assert.Equal(t, "ref-1", exec.lastArgs[4])
}

func TestTransactionRepository_Save_DuplicateReference(t *testing.T) {
	exec := &fakeExecutor{row: fakeRow{err: &pgconn.PgError{Code: "23505"}}}
	repo := &TransactionRepository{q: exec}

	_, err := repo.Save(context.Background(), sampleTransaction())

	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.Contains(t, err.Error(), "ref-1")
}

func TestTransactionRepository_NoRowsIsNotFound(t *testing.T) {
	repo := &TransactionRepository{q: &fakeExecutor{row: fakeRow{err: pgx.ErrNoRows}}}

	_, err := repo.FindByID(context.Background(), 9)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeTransactionNotFound))

	_, err = repo.FindByReference(context.Background(), "missing")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeTransactionNotFound))
}

func TestTransactionRepository_FindAll_QueryError(t *testing.T) {
	queryErr := errors.New("conn closed")
	exec := &fakeExecutor{queryErr: queryErr}
	repo := &TransactionRepository{q: exec}

	_, err := repo.FindAll(context.Background(), 20, 40)

	assert.ErrorIs(t, err, queryErr)
	assert.Equal(t, []any{20, 40}, exec.lastArgs)
}

func TestPaymentRequestRepository_NoRowsIsNotFound(t *testing.T) {
	repo := &PaymentRequestRepository{q: &fakeExecutor{row: fakeRow{err: pgx.ErrNoRows}}}

	_, err := repo.FindByID(context.Background(), 3)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodePaymentRequestNotFound))
}

func TestPaymentRequestRepository_Save_Error(t *testing.T) {
	repo := &PaymentRequestRepository{q: &fakeExecutor{row: fakeRow{err: errors.New("fk violation")}}}

	_, err := repo.Save(context.Background(), &domain.PaymentRecord{TransactionReference: "ref-1"})
	assert.ErrorContains(t, err, "failed to save payment request")
}
