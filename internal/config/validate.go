package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/atlanticdynamic/hellodevops/internal/logging"
	"golang.org/x/net/http/httpguts"
)

// paths served by the greeting routes, unavailable to the metrics endpoint
var reservedPaths = map[string]struct{}{"/": {}, "/page": {}}

var validLogLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "warning": {}, "error": {},
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	var errs []error

	if c.Version != Version {
		errs = append(errs, fmt.Errorf("version %q: %w", c.Version, ErrUnsupportedConfigVer))
	}
	if err := c.Listener.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("listener: %w", err))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Metrics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("metrics: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrFailedToValidateConfig, errors.Join(errs...))
	}
	return nil
}

// Validate checks Listener for any configuration errors
func (l Listener) Validate() error {
	var errs []error

	if strings.TrimSpace(l.Host) == "" {
		errs = append(errs, fmt.Errorf("%w: host", ErrMissingRequiredField))
	} else if strings.ContainsAny(l.Host, " /\t") {
		errs = append(errs, fmt.Errorf("%w: host %q", ErrInvalidValue, l.Host))
	}

	if l.Port < 1 || l.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d must be between 1 and 65535",
			ErrInvalidValue, l.Port))
	}

	timeouts := []struct {
		name  string
		value Duration
	}{
		{"read_timeout", l.ReadTimeout},
		{"write_timeout", l.WriteTimeout},
		{"idle_timeout", l.IdleTimeout},
		{"drain_timeout", l.DrainTimeout},
	}
	for _, to := range timeouts {
		if to.value <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive", ErrInvalidValue, to.name))
		}
	}

	for key, value := range l.Headers {
		if err := validateHeader(key, value); err != nil {
			errs = append(errs, fmt.Errorf("invalid header '%s': %w", key, err))
		}
	}

	return errors.Join(errs...)
}

// Validate checks Logging for any configuration errors
func (l Logging) Validate() error {
	var errs []error

	if _, ok := validLogLevels[strings.ToLower(l.Level)]; !ok {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalidValue, l.Level))
	}

	switch strings.ToLower(l.Format) {
	case string(logging.FormatText), string(logging.FormatJSON):
	default:
		errs = append(errs, fmt.Errorf("%w: log format %q", ErrInvalidValue, l.Format))
	}

	return errors.Join(errs...)
}

// Validate checks Metrics for any configuration errors. A disabled endpoint is always valid.
func (m Metrics) Validate() error {
	if !m.Enabled {
		return nil
	}
	if !strings.HasPrefix(m.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidValue, m.Path)
	}
	// the path is matched literally; braces would make it a pattern
	if strings.ContainsAny(m.Path, "{}") {
		return fmt.Errorf("%w: path %q must not contain { or }", ErrInvalidValue, m.Path)
	}
	if path.Clean(m.Path) != m.Path {
		return fmt.Errorf("%w: path %q is not clean", ErrInvalidValue, m.Path)
	}
	if _, ok := reservedPaths[m.Path]; ok {
		return fmt.Errorf("%w: path %q is reserved", ErrInvalidValue, m.Path)
	}
	return nil
}

// validateHeader validates a header key-value pair using httpguts
func validateHeader(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: header name cannot be empty", ErrInvalidValue)
	}
	if !httpguts.ValidHeaderFieldName(key) {
		return fmt.Errorf("%w: header name %s", ErrInvalidValue, key)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: header value for %s", ErrInvalidValue, key)
	}
	return nil
}
