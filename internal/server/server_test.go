package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/pass-the-pages/internal/config"
	"github.com/MKhiriev/pass-the-pages/internal/handler"
	"github.com/MKhiriev/pass-the-pages/internal/logger"
	"github.com/MKhiriev/pass-the-pages/internal/service"
	"github.com/MKhiriev/pass-the-pages/models"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "9.9.9" }
func (stubAppInfo) GetBuildInfo(context.Context) models.BuildInfo {
	return models.BuildInfo{Version: "9.9.9"}
}

func newTestServer(t *testing.T, cfg config.Server) *server {
	t.Helper()

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: stubAppInfo{}}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoTransports(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_BadAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "not-an-address"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, nil, cfg, logger.Nop())
	assert.Error(t, err)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	srv := newTestServer(t, config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	resp, err := http.Get("http://" + srv.httpServer.listener.Addr().String() + "/version")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "9.9.9", string(body))

	conn, err := grpc.NewClient(srv.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	// no worker is running, so the status stays at its initial value
	health, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, health.GetStatus())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + srv.httpServer.listener.Addr().String() + "/version")
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestShutdown_Idempotent(t *testing.T) {
	srv := newTestServer(t, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second})
	t.Cleanup(func() { srv.httpServer.listener.Close() })

	srv.Shutdown()
	srv.Shutdown()
}
