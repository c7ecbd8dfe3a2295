package main

import (
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/hellodevops/internal/config"
	"github.com/atlanticdynamic/hellodevops/internal/logging"
	"github.com/atlanticdynamic/hellodevops/internal/logging/writers"
)

// setupLogger configures the default logger from the logging section of cfg. The returned
// closer releases the log output and must be called on exit.
func setupLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	w, closer, err := writers.Open(cfg.Logging.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output: %w", err)
	}
	logger := logging.SetupLogger(cfg.Logging.Level, logging.ParseFormat(cfg.Logging.Format), w)
	return logger, closer, nil
}
