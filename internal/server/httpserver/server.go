// Package httpserver runs the hellodevops listener as a supervisor runnable.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var _ supervisor.Runnable = (*HTTPServer)(nil)

// ErrNoRoutes is returned when the server is created without routes
var ErrNoRoutes = errors.New("at least one route is required")

// Timeouts for the listener; zero leaves the go-supervisor default
type Timeouts struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

func (t Timeouts) options() []httpserver.ConfigOption {
	var opts []httpserver.ConfigOption
	if t.ReadTimeout > 0 {
		opts = append(opts, httpserver.WithReadTimeout(t.ReadTimeout))
	}
	if t.WriteTimeout > 0 {
		opts = append(opts, httpserver.WithWriteTimeout(t.WriteTimeout))
	}
	if t.IdleTimeout > 0 {
		opts = append(opts, httpserver.WithIdleTimeout(t.IdleTimeout))
	}
	if t.DrainTimeout > 0 {
		opts = append(opts, httpserver.WithDrainTimeout(t.DrainTimeout))
	}
	return opts
}

// HTTPServer serves a fixed route set on one address. Nothing changes after NewHTTPServer.
type HTTPServer struct {
	id      string
	address string
	routes  int
	runner  *httpserver.Runner
	logger  *slog.Logger
}

// NewHTTPServer builds the listener; it does not bind until Run
func NewHTTPServer(
	id, address string,
	routes []httpserver.Route,
	timeouts Timeouts,
	logger *slog.Logger,
) (*HTTPServer, error) {
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver")
	}

	cfg, err := httpserver.NewConfig(address, append([]httpserver.Route(nil), routes...), timeouts.options()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(func() (*httpserver.Config, error) { return cfg, nil }),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	return &HTTPServer{
		id:      id,
		address: address,
		routes:  len(routes),
		runner:  runner,
		logger:  logger.With("id", id),
	}, nil
}

func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.id)
}

// Run serves until ctx is cancelled or Stop is called
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", "address", s.address, "routes", s.routes)
	return s.runner.Run(ctx)
}

func (s *HTTPServer) Stop() {
	s.logger.Info("Stopping HTTP server", "address", s.address)
	s.runner.Stop()
}

// GetState reports the go-supervisor runner state
func (s *HTTPServer) GetState() string {
	return s.runner.GetState()
}
