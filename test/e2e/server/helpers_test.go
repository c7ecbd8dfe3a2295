//go:build e2e

package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	serverCmd "github.com/atlanticdynamic/hellodevops/cmd/hellodevops/server"
	"github.com/atlanticdynamic/hellodevops/internal/config"
	"github.com/atlanticdynamic/hellodevops/internal/harness"
	"github.com/atlanticdynamic/hellodevops/internal/logging"
	"github.com/atlanticdynamic/hellodevops/internal/testutil"
	"github.com/stretchr/testify/require"
)

// runServer starts the service with cfg, waits until the harness passes against it, and returns
// its base URL. The server is stopped when the test ends.
func runServer(t *testing.T, cfg config.Config) string {
	t.Helper()
	logBuf := &testutil.SyncBuffer{}
	logger := slog.New(logging.SetupHandlerText("debug", logBuf))

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() {
		errCh <- serverCmd.Run(ctx, logger, cfg)
	}()

	baseURL := fmt.Sprintf("http://%s", cfg.Listener.Addr())
	runner := harness.New(harness.Config{
		Logger:   logger,
		BaseURL:  baseURL,
		Timeout:  2 * time.Second,
		Retries:  50,
		Interval: 100 * time.Millisecond,
	})

	t.Cleanup(func() {
		t.Log("Shutting down server...")
		cancel()

		select {
		case err := <-errCh:
			if err != nil {
				t.Errorf("Server shutdown with error: %v", err)
			}
		case <-time.After(10 * time.Second):
			t.Error("Server shutdown timed out")
		}
		t.Logf("Server logs:\n%s", logBuf.String())
	})

	require.NoError(t, runner.Check(ctx, harness.DefaultExpectation()), "Server never became ready")
	return baseURL
}

// configFromTemplate renders a config template to disk and loads it like the CLI does
func configFromTemplate(t *testing.T, templatePath string, data TemplateData) config.Config {
	t.Helper()
	content, err := ProcessTemplate(templatePath, data)
	require.NoError(t, err, "Failed to process template")

	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, content, 0o644), "Failed to write config file")

	cfg, err := config.NewConfig(configPath)
	require.NoError(t, err, "Failed to load config")
	return cfg
}

// localConfig moves cfg onto a free loopback port
func localConfig(t *testing.T, cfg config.Config) config.Config {
	t.Helper()
	host := "127.0.0.1"
	port := testutil.GetRandomPort(t)
	out := cfg.WithOverrides(config.Overrides{Host: &host, Port: &port})
	out.Listener.DrainTimeout = config.Duration(time.Second)
	return out
}
