// Package health exposes the grpc.health.v1 service. The overall status
// follows a set of dependency checks run on a fixed interval.
package health

import (
	"context"
	"net"
	"sort"
	"time"

	"github.com/sbilibin2017/mundo-divertido/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name the overall status is also published under.
const ServiceName = "mundo-divertido"

// Checker reports whether a dependency is usable.
type Checker func(ctx context.Context) error

// Server serves gRPC health checks.
type Server struct {
	address  string
	interval time.Duration
	checks   map[string]Checker
	status   *health.Server
}

// NewServer creates a health server listening on address. Each check is
// published as its own service name; the overall status is SERVING only
// when every check passes.
func NewServer(address string, interval time.Duration, checks map[string]Checker) *Server {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Server{
		address:  address,
		interval: interval,
		checks:   checks,
		status:   health.NewServer(),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, s.status)

	s.probe(ctx)
	go s.loop(ctx)

	go func() {
		<-ctx.Done()
		logger.Log.Info("Stopping gRPC health server...")
		s.status.Shutdown()
		srv.GracefulStop()
	}()

	logger.Log.Infow("Starting gRPC health server", "address", lis.Addr().String())
	return srv.Serve(lis)
}

func (s *Server) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

func (s *Server) probe(ctx context.Context) {
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	overall := healthpb.HealthCheckResponse_SERVING
	for _, name := range names {
		status := healthpb.HealthCheckResponse_SERVING
		if err := s.checks[name](ctx); err != nil {
			logger.Log.Warnw("health check failed", "check", name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = status
		}
		s.status.SetServingStatus(name, status)
	}

	s.status.SetServingStatus("", overall)
	s.status.SetServingStatus(ServiceName, overall)
}
