package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pass-the-pages/internal/app"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/internal/store"
	"github.com/MKhiriev/pass-the-pages/internal/utils"
	"github.com/MKhiriev/pass-the-pages/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched top to bottom, so specific validation causes
// come before the generic ErrInvalidDataProvided that wraps them.
var errorResponses = []errorResponse{
	{validators.ErrNonInstitutionalEmail, http.StatusBadRequest, app.MsgInstitutionEmailRequired},
	{validators.ErrSelfAddressed, http.StatusBadRequest, app.MsgSelfAddressedNotAllowed},
	{validators.ErrNonPositiveAmount, http.StatusBadRequest, app.MsgAmountMustBePositive},
	{validators.ErrInvalidOtherUserID, http.StatusBadRequest, app.MsgInvalidOtherUserIDParam},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrCheckViolation, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},

	{service.ErrTokenMissing, http.StatusForbidden, app.MsgNoTokenProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, app.MsgInvalidToken},
	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
}

// statusFromError returns the HTTP status for err. Anything unknown,
// including every store failure, is a 500.
func statusFromError(err error) int {
	status, _ := resolveError(err, "")
	return status
}

// resolveError picks status and client message for err. fallback is used for
// 500s so the client only ever sees a short route-specific text.
func resolveError(err error, fallback string) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, fallback
}

// writeServiceError logs err with full detail and answers with the opaque
// mapped message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status, message := resolveError(err, fallback)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteError(w, message, status)
}
