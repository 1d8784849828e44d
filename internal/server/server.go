package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/handler"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may finish after a
// stop signal.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

// RunServer listens on the configured address and serves until ctx is
// cancelled or SIGTERM, SIGINT or SIGQUIT is received, then shuts down
// gracefully.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Str("address", s.address).Msg("failed to listen")
		return fmt.Errorf("%w %s: %w", errListening, s.address, err)
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer(listener)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	// finish started server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return <-serveErr
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
