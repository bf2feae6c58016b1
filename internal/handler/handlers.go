package handler

import (
	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/handler/grpc"
	"github.com/MKhiriev/pass-the-pages/internal/handler/http"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/service"
)

// Handlers holds the transport handlers enabled by configuration. The REST
// API needs an HTTP address; the gRPC health handler is optional.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	return handlers, nil
}
