// Package grpc exposes the standard gRPC health service of the marketplace.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/pass-the-pages/internal/logger"
)

// ServiceName is reported next to the overall ("") status by the health
// service.
const ServiceName = "passthepages.Marketplace"

// Handler is the root gRPC transport handler.
//
// It owns the grpc.health.v1 server. The status starts as NOT_SERVING and is
// flipped by the health worker after each database probe.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches every service of the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing updates the reported status of the overall server and of
// ServiceName.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Shutdown reports NOT_SERVING for good; later SetServing calls are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
