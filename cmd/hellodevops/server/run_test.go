package server

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/atlanticdynamic/hellodevops/internal/config"
	"github.com/atlanticdynamic/hellodevops/internal/logging"
	iserver "github.com/atlanticdynamic/hellodevops/internal/server"
	"github.com/atlanticdynamic/hellodevops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestServerPortInUse checks that a bound port fails startup at once
func TestServerPortInUse(t *testing.T) {
	host, port := testutil.OccupyPort(t)
	cfg := config.NewDefault()
	cfg.Listener.Host = host
	cfg.Listener.Port = port

	start := time.Now()
	err := Run(t.Context(), slog.New(logging.SetupHandlerJSON("error", io.Discard)), cfg)
	require.ErrorIs(t, err, iserver.ErrAddressInUse)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Listener.Host = ""

	err := Run(t.Context(), slog.New(logging.SetupHandlerJSON("error", io.Discard)), cfg)
	require.ErrorIs(t, err, iserver.ErrInvalidConfig)
}
