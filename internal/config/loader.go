package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atlanticdynamic/hellodevops/internal/interpolation"
	gotoml "github.com/pelletier/go-toml/v2"
)

// NewConfig loads configuration from a TOML file
func NewConfig(filePath string) (Config, error) {
	if ext := filepath.Ext(filePath); ext != ".toml" {
		return Config{}, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	cfg, err := NewConfigFromBytes(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filePath, err)
	}
	return cfg, nil
}

// NewConfigFromBytes loads configuration from TOML bytes, layered over NewDefault
func NewConfigFromBytes(data []byte) (Config, error) {
	if len(data) == 0 {
		return Config{}, fmt.Errorf("%w: no source data provided", ErrFailedToLoadConfig)
	}

	var versionCheck struct {
		Version string `toml:"version"`
	}
	if err := gotoml.Unmarshal(data, &versionCheck); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParseToml, err)
	}
	if versionCheck.Version != "" && versionCheck.Version != Version {
		return Config{}, fmt.Errorf(
			"version %s is not supported: %w",
			versionCheck.Version,
			ErrUnsupportedConfigVer,
		)
	}

	cfg := NewDefault()
	decoder := gotoml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strictErr *gotoml.StrictMissingError
		if errors.As(err, &strictErr) {
			return Config{}, fmt.Errorf("%w: %s", ErrParseToml, strictErr.String())
		}
		return Config{}, fmt.Errorf("%w: %w", ErrParseToml, err)
	}
	cfg.Version = Version

	if err := cfg.interpolate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// interpolate expands ${VAR:default} references in string settings
func (c *Config) interpolate() error {
	var errs []error

	host, err := interpolation.ExpandEnvVars(c.Listener.Host)
	if err != nil {
		errs = append(errs, fmt.Errorf("listener.host: %w", err))
	}
	c.Listener.Host = host

	output, err := interpolation.ExpandEnvVars(c.Logging.Output)
	if err != nil {
		errs = append(errs, fmt.Errorf("logging.output: %w", err))
	}
	c.Logging.Output = output

	if c.Listener.Headers != nil {
		if err := interpolation.ExpandMap(c.Listener.Headers, os.LookupEnv); err != nil {
			errs = append(errs, fmt.Errorf("listener.headers: %w", err))
		}
	}

	return errors.Join(errs...)
}
