// Package server assembles the hellodevops web service: the route table, its middleware, and
// the supervised HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"syscall"

	"github.com/atlanticdynamic/hellodevops/internal/config"
	"github.com/atlanticdynamic/hellodevops/internal/greeting"
	hsrv "github.com/atlanticdynamic/hellodevops/internal/server/httpserver"
	"github.com/atlanticdynamic/hellodevops/internal/server/middleware"
	"github.com/atlanticdynamic/hellodevops/internal/server/routing"
	"github.com/atlanticdynamic/hellodevops/internal/version"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Route names
const (
	RouteGreeting = "greeting"
	RoutePage     = "page"
	RouteMetrics  = "metrics"
)

// Service is the web service. Everything it holds is built in New and read-only afterwards.
type Service struct {
	cfg              config.Config
	logHandler       slog.Handler
	accessLogHandler slog.Handler
	logger           *slog.Logger

	table    *routing.Table
	metrics  *middleware.Metrics
	handler  *httpserver.Route
	listener *hsrv.HTTPServer
}

// New builds the service from cfg. The config is validated here; nothing is bound until Run.
func New(cfg config.Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s := &Service{
		cfg:        cfg.WithOverrides(config.Overrides{}),
		logHandler: slog.Default().Handler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.accessLogHandler == nil {
		s.accessLogHandler = s.logHandler
	}
	s.logger = slog.New(s.logHandler).WithGroup("server")

	if err := s.buildRoutes(); err != nil {
		return nil, err
	}

	listener, err := hsrv.NewHTTPServer(
		"main",
		s.cfg.Listener.Addr(),
		[]httpserver.Route{*s.handler},
		hsrv.Timeouts{
			ReadTimeout:  s.cfg.Listener.ReadTimeout.AsDuration(),
			WriteTimeout: s.cfg.Listener.WriteTimeout.AsDuration(),
			IdleTimeout:  s.cfg.Listener.IdleTimeout.AsDuration(),
			DrainTimeout: s.cfg.Listener.DrainTimeout.AsDuration(),
		},
		slog.New(s.logHandler).WithGroup("httpserver"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	s.listener = listener

	return s, nil
}

// buildRoutes creates the route table and wraps it in the middleware chain. The table is
// mounted as a single catch-all go-supervisor route so it alone decides 404 and 405.
func (s *Service) buildRoutes() error {
	routes := []routing.Route{
		{Name: RouteGreeting, Method: http.MethodGet, Path: "/", Handler: greeting.Handler()},
		{Name: RoutePage, Method: http.MethodGet, Path: "/page", Handler: greeting.PageHandler()},
	}

	if s.cfg.Metrics.Enabled {
		s.metrics = middleware.NewMetrics(s.routeName)
		routes = append(routes, routing.Route{
			Name:    RouteMetrics,
			Method:  http.MethodGet,
			Path:    s.cfg.Metrics.Path,
			Handler: s.metrics.Handler(),
		})
	}

	table, err := routing.NewTable(routes...)
	if err != nil {
		return fmt.Errorf("failed to build route table: %w", err)
	}
	s.table = table

	chain := []middleware.Instance{middleware.NewAccessLog(s.accessLogHandler, table.Name)}
	if s.metrics != nil {
		chain = append(chain, s.metrics)
	}
	if headers := s.cfg.Listener.StaticHeaders(); len(headers) > 0 {
		hm, err := middleware.NewStaticHeaders(headers)
		if err != nil {
			return fmt.Errorf("failed to create header middleware: %w", err)
		}
		chain = append(chain, hm)
	}

	route, err := httpserver.NewRouteFromHandlerFunc(
		"routes",
		"/",
		table.ServeHTTP,
		middleware.Collect(chain...)...,
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP route: %w", err)
	}
	s.handler = route
	return nil
}

// routeName labels metrics; it is only called while serving, after the table exists.
func (s *Service) routeName(r *http.Request) string {
	return s.table.Name(r)
}

// Handler returns the complete request handler, middleware included, without a listener.
func (s *Service) Handler() http.Handler {
	return s.handler
}

// Table returns the route table
func (s *Service) Table() *routing.Table {
	return s.table
}

// Addr returns the configured listen address
func (s *Service) Addr() string {
	return s.cfg.Listener.Addr()
}

// Listener returns the supervised HTTP listener
func (s *Service) Listener() supervisor.Runnable {
	return s.listener
}

// Run binds the listener and blocks until ctx is cancelled or the process receives a
// termination signal. A bind failure returns immediately.
func (s *Service) Run(ctx context.Context) error {
	if err := CheckAddr(s.Addr()); err != nil {
		return err
	}

	s.logger.Info("Starting hellodevops", append(version.Get().LogAttrs(), "address", s.Addr())...)
	for _, r := range s.table.Routes() {
		s.logger.Debug("Route registered", "name", r.Name, "route", r.Key().String())
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(s.logHandler),
		supervisor.WithRunnables(s.listener),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateSupervisor, err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	s.logger.Info("Server shutdown complete", "listener_state", s.listener.GetState())
	return nil
}

// CheckAddr verifies addr can be bound right now, so a taken port fails fast instead of
// surfacing later from inside the supervisor.
func CheckAddr(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w: %s", ErrAddressInUse, addr)
		}
		return fmt.Errorf("%w: %s: %w", ErrListen, addr, err)
	}
	return ln.Close()
}
