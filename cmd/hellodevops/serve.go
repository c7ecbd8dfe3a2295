package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/hellodevops/cmd/hellodevops/server"
	"github.com/urfave/cli/v3"
)

func newServeCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the hellodevops web service",
		Flags:  configFlags(),
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err, 1)
	}

	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer func() { _ = closeLog() }()

	if err := server.Run(ctx, logger, cfg); err != nil {
		logger.Error("Server failed", "error", err)
		return cli.Exit(fmt.Errorf("server failed: %w", err), 1)
	}
	return nil
}
