package harness

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Defaults for Runner
const (
	DefaultTimeout  = 5 * time.Second
	DefaultInterval = time.Second
)

// Config holds configuration options for creating a Runner
type Config struct {
	Logger  *slog.Logger
	BaseURL string

	// Timeout bounds each attempt
	Timeout time.Duration

	// Retries is the number of extra attempts made after a transport failure
	Retries  int
	Interval time.Duration
}

// Runner checks a running service, retrying while it is not yet reachable
type Runner struct {
	logger   *slog.Logger
	baseURL  string
	client   *http.Client
	retries  int
	interval time.Duration
}

// New creates a new Runner
func New(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Runner{
		logger:   logger.WithGroup("harness"),
		baseURL:  cfg.BaseURL,
		client:   &http.Client{Timeout: timeout},
		retries:  max(cfg.Retries, 0),
		interval: interval,
	}
}

// Check runs expect against the service. Only transport failures are retried: a service that
// answers with the wrong status or body fails at once.
func (r *Runner) Check(ctx context.Context, expect Expectation) error {
	var err error
	for attempt := 1; attempt <= r.retries+1; attempt++ {
		err = CheckURL(ctx, r.client, r.baseURL, expect)
		if err == nil {
			r.logger.Info("Check passed", "url", r.baseURL, "check", expect.String(), "attempt", attempt)
			return nil
		}
		if !errors.Is(err, ErrRequestFailed) {
			r.logger.Error("Check failed", "url", r.baseURL, "check", expect.String(), "error", err)
			return err
		}

		r.logger.Warn("Service not reachable", "url", r.baseURL, "attempt", attempt, "error", err)
		if attempt > r.retries {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(r.interval):
		}
	}
	return err
}
