package harness

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atlanticdynamic/hellodevops/internal/greeting"
	"github.com/robbyt/go-loglater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	r := New(Config{BaseURL: "http://localhost:8080", Retries: -3})
	assert.Equal(t, 0, r.retries)
	assert.Equal(t, DefaultInterval, r.interval)
	assert.Equal(t, DefaultTimeout, r.client.Timeout)
}

func TestRunner_Check(t *testing.T) {
	t.Run("passes first attempt", func(t *testing.T) {
		srv := httptest.NewServer(greeting.Handler())
		defer srv.Close()

		logs := loglater.NewLogCollector(nil)
		r := New(Config{Logger: slog.New(logs), BaseURL: srv.URL})
		require.NoError(t, r.Check(t.Context(), DefaultExpectation()))

		records := logs.GetLogs()
		require.Len(t, records, 1)
		assert.Equal(t, "Check passed", records[0].Message)
	})

	t.Run("retries until reachable", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				// drop the connection so the client sees a transport failure
				if hj, ok := w.(http.Hijacker); ok {
					if conn, _, err := hj.Hijack(); err == nil {
						_ = conn.Close()
					}
				}
				return
			}
			greeting.Handler().ServeHTTP(w, r)
		}))
		defer srv.Close()

		logs := loglater.NewLogCollector(nil)
		r := New(Config{
			Logger:   slog.New(logs),
			BaseURL:  srv.URL,
			Retries:  5,
			Interval: 10 * time.Millisecond,
		})
		require.NoError(t, r.Check(t.Context(), DefaultExpectation()))
		assert.GreaterOrEqual(t, calls.Load(), int32(3))

		var warnings int
		for _, rec := range logs.GetLogs() {
			if rec.Level == slog.LevelWarn {
				warnings++
			}
		}
		assert.Equal(t, 2, warnings)
	})

	t.Run("mismatch is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte("wrong"))
		}))
		defer srv.Close()

		r := New(Config{
			Logger:   slog.New(loglater.NewLogCollector(nil)),
			BaseURL:  srv.URL,
			Retries:  5,
			Interval: 10 * time.Millisecond,
		})
		err := r.Check(t.Context(), DefaultExpectation())
		require.Error(t, err)
		var mismatch *MismatchError
		assert.ErrorAs(t, err, &mismatch)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after retries", func(t *testing.T) {
		srv := httptest.NewServer(greeting.Handler())
		addr := srv.URL
		srv.Close()

		r := New(Config{
			Logger:   slog.New(loglater.NewLogCollector(nil)),
			BaseURL:  addr,
			Retries:  2,
			Interval: 10 * time.Millisecond,
		})
		assert.ErrorIs(t, r.Check(t.Context(), DefaultExpectation()), ErrRequestFailed)
	})
}
