package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/hellodevops/internal/config"
	"github.com/urfave/cli/v3"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Validate the effective configuration (defaults, config file, env vars, flags)",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the validated configuration",
			},
		}, configFlags()...),
		Suggest: true,
		Action:  validateAction,
	}
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	// a positional argument works as well as --config
	if !cmd.IsSet("config") && cmd.Args().Len() > 0 {
		if err := cmd.Set("config", cmd.Args().First()); err != nil {
			return cli.Exit(err, 1)
		}
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Errorf("validation failed: %w", err), 1)
	}

	w := cmd.Root().Writer
	source := cmd.String("config")
	if source == "" {
		source = "(no config file)"
	}
	if _, err := fmt.Fprintf(w, "Configuration %s is valid\n", source); err != nil {
		return err
	}

	if cmd.Bool("tree") {
		_, err = fmt.Fprintln(w, cfg)
		return err
	}
	_, err = fmt.Fprintln(w, renderConfigSummary(source, cfg))
	return err
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(path string, cfg config.Config) string {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	summary.WriteString(fmt.Sprintf("- Path: %s\n", path))
	summary.WriteString(fmt.Sprintf("- Version: %s\n", cfg.Version))
	summary.WriteString(fmt.Sprintf("- Listen: %s\n", cfg.Listener.Addr()))
	summary.WriteString(fmt.Sprintf("- Static headers: %d\n", len(cfg.Listener.Headers)))
	summary.WriteString(fmt.Sprintf("- Logging: %s/%s\n", cfg.Logging.Level, cfg.Logging.Format))
	if cfg.Metrics.Enabled {
		summary.WriteString(fmt.Sprintf("- Metrics: %s\n", cfg.Metrics.Path))
	} else {
		summary.WriteString("- Metrics: disabled\n")
	}
	summary.WriteString("\nUse --tree for a more detailed view of the config.")

	return summary.String()
}
