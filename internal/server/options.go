package server

import (
	"log/slog"
)

// Option configures a Service
type Option func(*Service)

// WithLogHandler sets a custom slog handler for the Service and everything it builds.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *Service) {
		if handler != nil {
			s.logHandler = handler
		}
	}
}

// WithAccessLogHandler sends access log lines to a separate handler.
func WithAccessLogHandler(handler slog.Handler) Option {
	return func(s *Service) {
		if handler != nil {
			s.accessLogHandler = handler
		}
	}
}
