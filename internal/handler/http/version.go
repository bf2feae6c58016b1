package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/pass-the-pages/internal/utils"
)

// getServerVersion answers GET /version with the configured version as
// plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, serverVersion)
}

// getBuildInfo answers GET /version/build with version, build date and
// commit as JSON.
func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
