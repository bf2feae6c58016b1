package http

import (
	"net/http"

	"github.com/MKhiriev/pass-the-pages/internal/app"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/utils"
	"github.com/MKhiriev/pass-the-pages/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request.ToUser())
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgUserRegistered,
		Token:   token.SignedString,
		User:    &registeredUser,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.LoginRequest
	if !decodeJSON(w, r, &credentials) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgLoginSuccess,
		Token:   token.SignedString,
	}, http.StatusOK)
}
