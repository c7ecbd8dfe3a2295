// Package config holds the immutable runtime configuration for hellodevops.
//
// A Config is assembled once at process start from defaults, an optional TOML file, and
// command-line/environment overrides, then validated and passed by value to the components
// that need it.
package config

import (
	"maps"
	"net"
	"strconv"
	"time"
)

// Version is the only supported config file version
const Version = "v1"

// Defaults
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8080
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	DefaultDrainTimeout = 30 * time.Second
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultMetricsPath  = "/metrics"
)

// Config is the root configuration
type Config struct {
	Version  string   `toml:"version"`
	Listener Listener `toml:"listener"`
	Logging  Logging  `toml:"logging"`
	Metrics  Metrics  `toml:"metrics"`
}

// Listener configures the HTTP listener
type Listener struct {
	Host         string            `toml:"host"`
	Port         int               `toml:"port"`
	ReadTimeout  Duration          `toml:"read_timeout"`
	WriteTimeout Duration          `toml:"write_timeout"`
	IdleTimeout  Duration          `toml:"idle_timeout"`
	DrainTimeout Duration          `toml:"drain_timeout"`
	Headers      map[string]string `toml:"headers"`
}

// Logging configures the process logger
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Metrics configures the Prometheus endpoint served on the listener
type Metrics struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// NewDefault returns the configuration used when no file is given
func NewDefault() Config {
	return Config{
		Version: Version,
		Listener: Listener{
			Host:         DefaultHost,
			Port:         DefaultPort,
			ReadTimeout:  Duration(DefaultReadTimeout),
			WriteTimeout: Duration(DefaultWriteTimeout),
			IdleTimeout:  Duration(DefaultIdleTimeout),
			DrainTimeout: Duration(DefaultDrainTimeout),
		},
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: Metrics{
			Enabled: true,
			Path:    DefaultMetricsPath,
		},
	}
}

// Addr returns the host:port the listener binds to
func (l Listener) Addr() string {
	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

// StaticHeaders returns a copy of the configured response headers
func (l Listener) StaticHeaders() map[string]string {
	return maps.Clone(l.Headers)
}

// Overrides carries values set on the command line or in the environment.
// Nil fields leave the underlying value untouched.
type Overrides struct {
	Host      *string
	Port      *int
	LogLevel  *string
	LogFormat *string
}

// WithOverrides returns a copy of c with the non-nil overrides applied
func (c Config) WithOverrides(o Overrides) Config {
	out := c
	out.Listener.Headers = maps.Clone(c.Listener.Headers)

	if o.Host != nil {
		out.Listener.Host = *o.Host
	}
	if o.Port != nil {
		out.Listener.Port = *o.Port
	}
	if o.LogLevel != nil {
		out.Logging.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		out.Logging.Format = *o.LogFormat
	}
	return out
}
