package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/pass-the-pages/internal/app"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It reads the "Authorization: Bearer <token>" header, validates the token
// via [service.AuthService.ParseToken] and stores the user ID in the request
// context under [utils.UserIDCtxKey] before delegating to the next handler.
//
// Every rejection is answered with 403 Forbidden:
//   - no header, a blank one or a bare "Bearer" scheme:
//     "access denied, no token provided";
//   - a header that is not a bearer token, or a token that is expired,
//     tampered with or signed by someone else: "invalid token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if bearerTokenMissing(authHeader) {
			log.Debug().Err(service.ErrTokenMissing).Send()
			utils.WriteError(w, app.MsgNoTokenProvided, http.StatusForbidden)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgInvalidToken, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeServiceError(w, r, err, app.MsgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// bearerTokenMissing reports whether the Authorization header carries no
// credential at all, as opposed to a malformed one.
func bearerTokenMissing(authHeader string) bool {
	fields := strings.Fields(authHeader)
	switch len(fields) {
	case 0:
		return true
	case 1:
		return strings.EqualFold(fields[0], "Bearer")
	default:
		return false
	}
}

// callerID returns the user placed in the context by auth. A missing user
// has already been answered with 403 when ok is false.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Err(ErrNoUserInContext).Send()
		utils.WriteError(w, app.MsgNoTokenProvided, http.StatusForbidden)
		return 0, false
	}
	return userID, true
}
