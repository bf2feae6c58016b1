package http

import (
	"net/http"

	"github.com/MKhiriev/pass-the-pages/internal/app"
	"github.com/MKhiriev/pass-the-pages/internal/utils"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgFetchProfileFailed)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// listUsers answers with {user_id, username} pairs only, never the caller.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	users, err := h.services.UserService.ListOtherUsers(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgFetchUsersFailed)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
