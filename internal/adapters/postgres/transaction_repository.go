package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/DanielPopoola/psp-gateway/internal/core/ports"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, card_number, amount, currency, status, reference, merchant_id, created_at`

type TransactionRepository struct {
	q Executor
}

func NewTransactionRepository(db *DB) ports.TransactionRepository {
	return &TransactionRepository{
		q: db.Pool,
	}
}

// Save inserts the transaction and returns a copy carrying the generated ID.
func (r *TransactionRepository) Save(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `INSERT INTO transactions (card_number, amount, currency, status, reference, merchant_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	saved := *txn
	err := r.q.QueryRow(ctx, query,
		txn.CardNumber,
		txn.Amount,
		txn.Currency,
		txn.Status,
		txn.Reference,
		txn.MerchantID,
		txn.CreatedAt,
	).Scan(&saved.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("transaction reference %s already recorded: %w", txn.Reference, err)
		}
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &saved, nil
}

// FindByID retrieves a transaction by its store ID
func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	txn, err := scanTransaction(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewTransactionNotFoundError(strconv.FormatInt(id, 10))
	}
	return txn, err
}

// FindByReference retrieves a transaction by the reference handed to the merchant
func (r *TransactionRepository) FindByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`

	txn, err := scanTransaction(r.q.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewTransactionNotFoundError(reference)
	}
	return txn, err
}

func (r *TransactionRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("error occurred while scanning rows: %w", err)
	}
	return results, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID,
		&t.CardNumber,
		&t.Amount,
		&t.Currency,
		&t.Status,
		&t.Reference,
		&t.MerchantID,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return &t, nil
}
