package main

import (
	"fmt"

	"github.com/atlanticdynamic/hellodevops/internal/config"
	"github.com/urfave/cli/v3"
)

// configFlags are shared by every command that builds a config
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to TOML configuration file",
			Sources: cli.EnvVars("HELLODEVOPS_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "Address to bind the HTTP listener",
			Value:   config.DefaultHost,
			Sources: cli.EnvVars("HOST"),
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Port for the HTTP listener",
			Value:   config.DefaultPort,
			Sources: cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (trace, debug, info, warn, error)",
			Value:   config.DefaultLogLevel,
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format (text, json)",
			Value:   config.DefaultLogFormat,
			Sources: cli.EnvVars("LOG_FORMAT"),
		},
	}
}

// resolveConfig layers defaults, the optional config file, then env vars and flags.
// Only flags that were actually set override the file.
func resolveConfig(cmd *cli.Command) (config.Config, error) {
	cfg := config.NewDefault()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.NewConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	var o config.Overrides
	if cmd.IsSet("host") {
		host := cmd.String("host")
		o.Host = &host
	}
	if cmd.IsSet("port") {
		port := int(cmd.Int("port"))
		o.Port = &port
	}
	if cmd.IsSet("log-level") {
		level := cmd.String("log-level")
		o.LogLevel = &level
	}
	if cmd.IsSet("log-format") {
		format := cmd.String("log-format")
		o.LogFormat = &format
	}
	return cfg.WithOverrides(o), nil
}
