package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/DanielPopoola/psp-gateway/internal/core/service"
)

const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeInternalError    = "INTERNAL_ERROR"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PaymentResponse is returned for an authorized payment request, approved or denied.
type PaymentResponse struct {
	TransactionReference string    `json:"transaction_reference"`
	Status               string    `json:"status"`
	TransactionID        int64     `json:"transaction_id"`
	PaymentRequestID     int64     `json:"payment_request_id"`
	Amount               string    `json:"amount"`
	Currency             string    `json:"currency"`
	MerchantID           string    `json:"merchant_id"`
	CreatedAt            time.Time `json:"created_at"`
}

type TransactionResponse struct {
	ID         int64     `json:"id"`
	CardNumber string    `json:"card_number"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	Reference  string    `json:"reference"`
	MerchantID string    `json:"merchant_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentRequestResponse struct {
	ID                   int64     `json:"id"`
	CardNumber           string    `json:"card_number"`
	ExpiryDate           string    `json:"expiry_date"`
	Amount               string    `json:"amount"`
	Currency             string    `json:"currency"`
	MerchantID           string    `json:"merchant_id"`
	TransactionReference string    `json:"transaction_reference"`
	CreatedAt            time.Time `json:"created_at"`
}

func toPaymentResponse(result *service.PaymentResult) PaymentResponse {
	txn := result.Transaction
	return PaymentResponse{
		TransactionReference: txn.Reference,
		Status:               txn.Status,
		TransactionID:        txn.ID,
		PaymentRequestID:     result.Request.ID,
		Amount:               txn.Amount.StringFixed(2),
		Currency:             txn.Currency,
		MerchantID:           txn.MerchantID,
		CreatedAt:            txn.CreatedAt,
	}
}

// Card numbers leave the gateway masked.
func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:         t.ID,
		CardNumber: domain.MaskPAN(t.CardNumber),
		Amount:     t.Amount.StringFixed(2),
		Currency:   t.Currency,
		Status:     t.Status,
		Reference:  t.Reference,
		MerchantID: t.MerchantID,
		CreatedAt:  t.CreatedAt,
	}
}

func toPaymentRequestResponse(p *domain.PaymentRecord) PaymentRequestResponse {
	return PaymentRequestResponse{
		ID:                   p.ID,
		CardNumber:           domain.MaskPAN(p.CardNumber),
		ExpiryDate:           p.ExpiryDate,
		Amount:               p.Amount.StringFixed(2),
		Currency:             p.Currency,
		MerchantID:           p.MerchantID,
		TransactionReference: p.TransactionReference,
		CreatedAt:            p.CreatedAt,
	}
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

func respondWithError(w http.ResponseWriter, err error) {
	status, apiErr := classifyError(err)
	respondWithJSON(w, status, apiErr)
}

// classifyError maps core errors to a status and body. Storage and other backend failures never
// expose their cause.
func classifyError(err error) (int, *APIError) {
	if validationErr, ok := domain.IsValidationError(err); ok {
		return http.StatusBadRequest, &APIError{
			Code:    string(validationErr.Rule),
			Message: validationErr.Message,
		}
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case domain.ErrCodeTransactionNotFound, domain.ErrCodePaymentRequestNotFound:
			status = http.StatusNotFound
		}
		return status, &APIError{Code: domainErr.Code, Message: domainErr.Message}
	}

	if authErr, ok := service.IsAuthorizationError(err); ok {
		message := "the payment could not be completed"
		if authErr.Kind == service.KindStorage {
			message = "the payment could not be recorded"
		}
		return http.StatusInternalServerError, &APIError{
			Code:    string(authErr.Kind) + "_ERROR",
			Message: message,
		}
	}

	return http.StatusInternalServerError, &APIError{
		Code:    CodeInternalError,
		Message: "internal server error",
	}
}

// RespondError writes an error envelope. Middleware uses it for failures outside the handlers.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	respondWithJSON(w, status, &APIError{Code: code, Message: message})
}
