// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pass-the-pages/internal/app"
	"github.com/MKhiriev/pass-the-pages/internal/utils"
	"github.com/MKhiriev/pass-the-pages/models"
)

// sendMessage stores a direct message. The sender always comes from the
// token, never from the body.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	senderID, ok := callerID(w, r)
	if !ok {
		return
	}

	var request models.SendMessageRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	sent, err := h.services.MessageService.SendMessage(r.Context(), models.Message{
		SenderUserID:   senderID,
		ReceiverUserID: request.ReceiverUserID,
		Message:        request.Message,
	})
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgSendMessageFailed)
		return
	}

	utils.WriteJSON(w, models.MessageSentResponse{
		Message:     app.MsgMessageSent,
		SentMessage: sent,
	}, http.StatusCreated)
}

// getConversation answers GET /messages?other_user_id=N with both directions
// of the exchange, oldest first.
func (h *Handler) getConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	otherUserID, err := parseID(r.URL.Query().Get("other_user_id"))
	if err != nil {
		utils.WriteError(w, app.MsgInvalidOtherUserIDParam, http.StatusBadRequest)
		return
	}

	messages, err := h.services.MessageService.GetConversation(r.Context(), models.ConversationRequest{
		UserID:      userID,
		OtherUserID: otherUserID,
	})
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgFetchMessagesFailed)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}
