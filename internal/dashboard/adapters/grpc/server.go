// Package grpc поднимает gRPC сервер со стандартным health-сервисом.
package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"daynote/internal/dashboard/config"
	"daynote/pkg/logger"
)

// ServiceName имя сервиса в health-ответах.
const ServiceName = "daynote.Dashboard"

// Pinger проверяет доступность зависимости.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server gRPC сервер дневной панели.
type Server struct {
	server   *grpc.Server
	health   *health.Server
	address  string
	listener net.Listener
}

// New создает сервер с health и reflection.
func New(cfg *config.GRPCConfig) *Server {
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	return &Server{
		server:  srv,
		health:  hs,
		address: cfg.GetAddress(),
	}
}

// Start начинает прием соединений в отдельной горутине.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Log(ctx)

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = listener

	log.Info(ctx, "gRPC server started", zap.String("address", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil {
			log.Error(ctx, "failed to serve gRPC", zap.Error(err))
		}
	}()
	return nil
}

// Addr адрес, на котором слушает сервер. Пусто до Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// SetServing переключает статус сервиса и общий статус сервера.
func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(ServiceName, status)
	s.health.SetServingStatus("", status)
}

// WatchHealth пингует зависимость каждые interval до отмены ctx.
func (s *Server) WatchHealth(ctx context.Context, pinger Pinger, interval time.Duration) {
	log := logger.Log(ctx).With(zap.String("method", "Server.WatchHealth"))

	check := func() {
		pingCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()

		if err := pinger.Ping(pingCtx); err != nil {
			log.Warn(ctx, "dependency unavailable", zap.Error(err))
			s.SetServing(false)
			return
		}
		s.SetServing(true)
	}

	check()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

// Stop переводит сервис в NOT_SERVING и дожидается завершения вызовов.
// Если ctx истекает раньше, оставшиеся соединения закрываются принудительно.
func (s *Server) Stop(ctx context.Context) {
	log := logger.Log(ctx)
	log.Info(ctx, "stopping gRPC server")

	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		log.Warn(ctx, "graceful gRPC stop timed out, forcing", zap.Error(ctx.Err()))
		s.server.Stop()
		<-stopped
	}
}
