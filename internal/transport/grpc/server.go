package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// ServiceName is the health-check name of the tracker as a whole
const ServiceName = "wellness.Tracker"

// CheckFunc reports whether a dependency is usable
type CheckFunc func(ctx context.Context) error

// Server represents a gRPC server exposing health and reflection for probes
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	port       int
	log        *zap.Logger
}

// NewServer creates a new gRPC server
func NewServer(port int, log *zap.Logger) *Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recoveryInterceptor(log),
			loggingInterceptor(log),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(grpcServer)

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		port:       port,
		log:        log,
	}
}

// Start starts the gRPC server
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	s.log.Info("gRPC server listening", zap.Int("port", s.port))
	return s.Serve(listener)
}

// Serve accepts connections on lis until Stop is called
func (s *Server) Serve(lis net.Listener) error {
	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	s.log.Info("Gracefully stopping gRPC server...")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
	s.log.Info("gRPC server stopped")
}

// MonitorHealth runs checks every interval and reports NOT_SERVING for
// ServiceName while any of them fails. It returns when ctx is done.
func (s *Server) MonitorHealth(ctx context.Context, interval time.Duration, checks map[string]CheckFunc) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.runChecks(ctx, interval, checks)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) runChecks(ctx context.Context, timeout time.Duration, checks map[string]CheckFunc) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	healthy := true
	for name, check := range checks {
		if err := check(ctx); err != nil {
			healthy = false
			s.log.Warn("dependency check failed", zap.String("dependency", name), zap.Error(err))
		}
	}

	st := grpc_health_v1.HealthCheckResponse_SERVING
	if !healthy {
		st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus(ServiceName, st)
}

func loggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("grpc request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}

func recoveryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("grpc handler panicked",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
				)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
