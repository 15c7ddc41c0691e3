package handler

import (
	"net/http"
)

// HandleGetTransaction returns one transaction by store id
// @Summary  Get a transaction
// @Tags     transactions
// @Produce  json
// @Param    id   path      int  true  "Transaction id"
// @Success  200  {object}  APIResponse
// @Failure  400  {object}  APIResponse
// @Failure  404  {object}  APIResponse
// @Router   /api/transactions/{id} [get]
func (h *PaymentHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		respondWithJSON(w, http.StatusBadRequest, apiErr)
		return
	}

	txn, err := h.transactions.GetTransactionByID(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toTransactionResponse(txn))
}

// HandleGetTransactionByReference returns the transaction a reference was issued for
// @Summary  Get a transaction by reference
// @Tags     transactions
// @Produce  json
// @Param    reference  path      string  true  "Transaction reference"
// @Success  200        {object}  APIResponse
// @Failure  404        {object}  APIResponse
// @Router   /api/transactions/reference/{reference} [get]
func (h *PaymentHandler) HandleGetTransactionByReference(w http.ResponseWriter, r *http.Request) {
	reference := r.PathValue("reference")
	if reference == "" {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    CodeMissingParameter,
			Message: "reference is required",
		})
		return
	}

	txn, err := h.transactions.GetTransactionByReference(r.Context(), reference)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toTransactionResponse(txn))
}

// HandleListTransactions
// @Summary  List transactions
// @Tags     transactions
// @Produce  json
// @Param    limit   query     int  false  "Page size"
// @Param    offset  query     int  false  "Rows to skip"
// @Success  200     {object}  APIResponse
// @Router   /api/transactions [get]
func (h *PaymentHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset, apiErr := pageParams(r)
	if apiErr != nil {
		respondWithJSON(w, http.StatusBadRequest, apiErr)
		return
	}

	txns, err := h.transactions.ListTransactions(r.Context(), limit, offset)
	if err != nil {
		respondWithError(w, err)
		return
	}

	out := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	respondWithJSON(w, http.StatusOK, out)
}

// HandleGetPaymentRequest
// @Summary  Get a recorded payment request
// @Tags     payments
// @Produce  json
// @Param    id   path      int  true  "Payment request id"
// @Success  200  {object}  APIResponse
// @Failure  404  {object}  APIResponse
// @Router   /api/payment-request/{id} [get]
func (h *PaymentHandler) HandleGetPaymentRequest(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r)
	if apiErr != nil {
		respondWithJSON(w, http.StatusBadRequest, apiErr)
		return
	}

	record, err := h.requests.GetPaymentRequestByID(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, toPaymentRequestResponse(record))
}

// HandleListPaymentRequests
// @Summary  List recorded payment requests
// @Tags     payments
// @Produce  json
// @Param    limit   query     int  false  "Page size"
// @Param    offset  query     int  false  "Rows to skip"
// @Success  200     {object}  APIResponse
// @Router   /api/payment-request [get]
func (h *PaymentHandler) HandleListPaymentRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset, apiErr := pageParams(r)
	if apiErr != nil {
		respondWithJSON(w, http.StatusBadRequest, apiErr)
		return
	}

	records, err := h.requests.ListPaymentRequests(r.Context(), limit, offset)
	if err != nil {
		respondWithError(w, err)
		return
	}

	out := make([]PaymentRequestResponse, 0, len(records))
	for _, p := range records {
		out = append(out, toPaymentRequestResponse(p))
	}
	respondWithJSON(w, http.StatusOK, out)
}
