package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/flashgen-server/internal/api/grpc/handler"
	"github.com/dtroode/flashgen-server/internal/api/grpc/middleware"
	"github.com/dtroode/flashgen-server/internal/logger"
)

// Router builds the gRPC side: health and reflection only. All domain
// traffic goes over HTTP.
type Router struct {
	health *handler.Health
	logger *logger.Logger
}

// New creates new gRPC Router instance.
func New(health *handler.Health, logger *logger.Logger) *Router {
	return &Router{health: health, logger: logger}
}

// Register returns a gRPC server with logging and panic recovery
// interceptors and all services attached.
func (r *Router) Register() *grpc.Server {
	lg := middleware.InterceptorLogger(r.logger)
	logOpts := []logging.Option{logging.WithLogOnEvents(logging.FinishCall)}
	recoveryOpts := []recovery.Option{recovery.WithRecoveryHandlerContext(middleware.RecoverPanic(r.logger))}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(lg, logOpts...),
			recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			logging.StreamServerInterceptor(lg, logOpts...),
			recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	r.health.Register(s)
	reflection.Register(s)

	return s
}
