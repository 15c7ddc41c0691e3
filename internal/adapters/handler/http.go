package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/DanielPopoola/psp-gateway/internal/core/service"
	"github.com/go-playground/validator"
)

type PaymentProcessor interface {
	Process(ctx context.Context, req domain.PaymentRequest) (*service.PaymentResult, error)
}

type TransactionQueryService interface {
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
}

type PaymentRequestQueryService interface {
	GetPaymentRequestByID(ctx context.Context, id int64) (*domain.PaymentRecord, error)
	ListPaymentRequests(ctx context.Context, limit, offset int) ([]*domain.PaymentRecord, error)
}

type PaymentHandler struct {
	payments     PaymentProcessor
	transactions TransactionQueryService
	requests     PaymentRequestQueryService
	validate     *validator.Validate
	logger       *slog.Logger
}

func NewPaymentHandler(
	payments PaymentProcessor,
	transactions TransactionQueryService,
	requests PaymentRequestQueryService,
	logger *slog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		payments:     payments,
		transactions: transactions,
		requests:     requests,
		validate:     validator.New(),
		logger:       logger,
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/payment-request", h.HandleCreatePaymentRequest)
	mux.HandleFunc("GET /api/payment-request", h.HandleListPaymentRequests)
	mux.HandleFunc("GET /api/payment-request/{id}", h.HandleGetPaymentRequest)
	mux.HandleFunc("GET /api/transactions", h.HandleListTransactions)
	mux.HandleFunc("GET /api/transactions/{id}", h.HandleGetTransaction)
	mux.HandleFunc("GET /api/transactions/reference/{reference}", h.HandleGetTransactionByReference)
}
