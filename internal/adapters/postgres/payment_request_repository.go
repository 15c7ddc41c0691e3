package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/DanielPopoola/psp-gateway/internal/core/ports"
	"github.com/jackc/pgx/v5"
)

const paymentRequestColumns = `id, card_number, expiry_date, amount, currency, merchant_id, transaction_reference, created_at`

type PaymentRequestRepository struct {
	q Executor
}

func NewPaymentRequestRepository(db *DB) ports.PaymentRequestRepository {
	return &PaymentRequestRepository{
		q: db.Pool,
	}
}

func (r *PaymentRequestRepository) Save(ctx context.Context, record *domain.PaymentRecord) (*domain.PaymentRecord, error) {
	query := `INSERT INTO payment_requests (card_number, expiry_date, amount, currency, merchant_id, transaction_reference, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	saved := *record
	err := r.q.QueryRow(ctx, query,
		record.CardNumber,
		record.ExpiryDate,
		record.Amount,
		record.Currency,
		record.MerchantID,
		record.TransactionReference,
		record.CreatedAt,
	).Scan(&saved.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save payment request: %w", err)
	}
	return &saved, nil
}

func (r *PaymentRequestRepository) FindByID(ctx context.Context, id int64) (*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentRequestColumns + ` FROM payment_requests WHERE id = $1`

	record, err := scanPaymentRecord(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewPaymentRequestNotFoundError(id)
	}
	return record, err
}

func (r *PaymentRequestRepository) FindAll(ctx context.Context, limit, offset int) ([]*domain.PaymentRecord, error) {
	query := `SELECT ` + paymentRequestColumns + ` FROM payment_requests ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query payment requests: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.PaymentRecord, error) {
		return scanPaymentRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("error occurred while scanning rows: %w", err)
	}
	return results, nil
}

func scanPaymentRecord(row pgx.Row) (*domain.PaymentRecord, error) {
	var p domain.PaymentRecord
	err := row.Scan(
		&p.ID,
		&p.CardNumber,
		&p.ExpiryDate,
		&p.Amount,
		&p.Currency,
		&p.MerchantID,
		&p.TransactionReference,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan payment request: %w", err)
	}
	return &p, nil
}
