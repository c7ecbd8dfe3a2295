// Package server runs the hellodevops web service until the context is cancelled or the process
// receives a termination signal.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/hellodevops/internal/config"
	"github.com/atlanticdynamic/hellodevops/internal/server"
)

// Run builds the service from cfg and blocks while it serves. Startup failures, including a
// port that is already bound, are returned immediately.
func Run(ctx context.Context, logger *slog.Logger, cfg config.Config) error {
	svc, err := server.New(cfg, server.WithLogHandler(logger.Handler()))
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return svc.Run(ctx)
}
