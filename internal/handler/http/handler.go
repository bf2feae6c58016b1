package http

import (
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/service"
)

// Handler serves the marketplace REST API on top of [service.Services].
// Routes are assembled by [Handler.Init].
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Str("transport", "http").Msg("handler created")
	return &Handler{services: services, logger: logger}
}
