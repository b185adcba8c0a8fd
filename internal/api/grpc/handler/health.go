package handler

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/flashgen-server/internal/logger"
	"github.com/dtroode/flashgen-server/internal/model"
)

// ServiceName is the service reported alongside the overall ("") status.
const ServiceName = "flashgen.API"

// Health serves the standard gRPC health protocol. Status follows
// database reachability.
type Health struct {
	server *health.Server
	db     model.Pinger
	logger *logger.Logger
}

func NewHealth(db model.Pinger, logger *logger.Logger) *Health {
	return &Health{server: health.NewServer(), db: db, logger: logger}
}

// Register attaches the health service to s.
func (h *Health) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

// Refresh pings the database once and publishes the result.
func (h *Health) Refresh(ctx context.Context) {
	st := healthpb.HealthCheckResponse_SERVING
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health: database unreachable", "error", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.server.SetServingStatus("", st)
	h.server.SetServingStatus(ServiceName, st)
}

// Watch refreshes every interval until ctx is done, then marks everything
// as not serving.
func (h *Health) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}
