package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlanticdynamic/hellodevops/internal/harness"
	"github.com/atlanticdynamic/hellodevops/internal/server"
	"github.com/urfave/cli/v3"
)

func newCheckCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Check that the service answers GET / with the greeting; exits non-zero on failure",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "Base URL of a running service, e.g. http://localhost:8080",
				Sources: cli.EnvVars("HELLODEVOPS_URL"),
			},
			&cli.BoolFlag{
				Name:  "in-process",
				Usage: "Check the request handler directly, without a network listener",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Timeout for each request",
				Value: harness.DefaultTimeout,
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "Extra attempts while the service is not reachable yet",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Wait between attempts",
				Value: harness.DefaultInterval,
			},
		}, configFlags()...),
		Action: checkAction,
	}
}

var errNoTarget = errors.New("either --url or --in-process is required")

func checkAction(ctx context.Context, cmd *cli.Command) error {
	url := cmd.String("url")
	inProcess := cmd.Bool("in-process")
	if url == "" && !inProcess {
		return cli.Exit(errNoTarget, 1)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}
	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer func() { _ = closeLog() }()

	expect := harness.DefaultExpectation()
	target := url

	if inProcess {
		target = "in-process"
		svc, newErr := server.New(cfg, server.WithLogHandler(logger.Handler()))
		if newErr != nil {
			return cli.Exit(fmt.Errorf("failed to create service: %w", newErr), 1)
		}
		err = harness.CheckHandler(svc.Handler(), expect)
	} else {
		runner := harness.New(harness.Config{
			Logger:   logger,
			BaseURL:  url,
			Timeout:  cmd.Duration("timeout"),
			Retries:  int(cmd.Int("retries")),
			Interval: cmd.Duration("interval"),
		})
		err = runner.Check(ctx, expect)
	}
	if err != nil {
		return cli.Exit(fmt.Errorf("check %s against %s failed: %w", expect, target, err), 1)
	}

	_, err = fmt.Fprintf(cmd.Root().Writer, "PASS %s (%s)\n", expect, target)
	return err
}
