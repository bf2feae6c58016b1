package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/pass-the-pages/internal/app"
	"github.com/MKhiriev/pass-the-pages/internal/utils"
	"github.com/MKhiriev/pass-the-pages/models"
)

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	senderID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request models.CreateTransactionRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	transaction, err := h.services.TransactionService.CreateTransaction(r.Context(), models.Transaction{
		SenderID:   senderID,
		ReceiverID: request.ReceiverID,
		BookID:     request.BookID,
		Amount:     request.Amount,
	})
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgTransactionFailed)
		return
	}

	utils.WriteJSON(w, models.TransactionCreatedResponse{
		Message:     app.MsgTransactionOK,
		Transaction: transaction,
	}, http.StatusCreated)
}

// listTransactions answers GET /transactions/{userId}. Only the caller's own
// ledger can be read.
func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	callerUserID, ok := callerID(w, r)
	if !ok {
		return
	}

	userID, err := parseID(chi.URLParam(r, "userId"))
	if err != nil {
		utils.WriteError(w, app.MsgInvalidUserIDParameter, http.StatusBadRequest)
		return
	}

	transactions, err := h.services.TransactionService.ListUserTransactions(r.Context(), callerUserID, userID)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgFetchTransactionsFailed)
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}
