package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/DanielPopoola/psp-gateway/internal/core/domain"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

// CreatePaymentRequest is the POST /api/payment-request body. Card, expiry, CVV, currency and
// amount are checked by the domain validator so callers get its rule codes.
type CreatePaymentRequest struct {
	CardNumber string          `json:"card_number" example:"4242424242424242"`
	ExpiryDate string          `json:"expiry_date" example:"07/33"`
	CVV        string          `json:"cvv" example:"543"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number" example:"20.00"`
	Currency   string          `json:"currency" example:"USD"`
	MerchantID string          `json:"merchant_id" validate:"required,max=64" example:"45723456"`
}

func (r CreatePaymentRequest) toDomain() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber: r.CardNumber,
		ExpiryDate: r.ExpiryDate,
		CVV:        r.CVV,
		Amount:     r.Amount,
		Currency:   r.Currency,
		MerchantID: r.MerchantID,
	}
}

// HandleCreatePaymentRequest validates, routes and records a card payment
// @Summary      Authorize a card payment
// @Description  Validates the card, routes it to an acquirer by BIN and records the decision.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      CreatePaymentRequest  true  "Payment details"
// @Success      200      {object}  APIResponse           "Approved or Denied"
// @Failure      400      {object}  APIResponse           "Invalid request"
// @Failure      500      {object}  APIResponse           "Internal server error"
// @Router       /api/payment-request [post]
func (h *PaymentHandler) HandleCreatePaymentRequest(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    CodeValidationError,
			Message: "could not read request body",
		})
		return
	}
	if len(body) == 0 {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    CodeValidationError,
			Message: "request body is required",
		})
		return
	}

	var req CreatePaymentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    CodeValidationError,
			Message: "request body is not valid JSON: " + err.Error(),
		})
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    CodeValidationError,
			Message: err.Error(),
		})
		return
	}

	result, err := h.payments.Process(r.Context(), req.toDomain())
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Info("payment request rejected",
				"rule", validationErr.Rule,
				"card", domain.MaskPAN(req.CardNumber),
				"merchant_id", req.MerchantID,
			)
		} else {
			h.logger.Error("payment request failed",
				"card", domain.MaskPAN(req.CardNumber),
				"merchant_id", req.MerchantID,
				"error", err,
			)
		}
		respondWithError(w, err)
		return
	}

	h.logger.Info("payment request processed",
		"reference", result.Transaction.Reference,
		"status", result.Transaction.Status,
		"card", domain.MaskPAN(req.CardNumber),
		"merchant_id", req.MerchantID,
	)

	respondWithJSON(w, http.StatusOK, toPaymentResponse(result))
}
