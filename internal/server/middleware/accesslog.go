package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// RouteNamer resolves the route name that handles a request
type RouteNamer func(*http.Request) string

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// AccessLog logs one line per request. The request ID only goes to the log, so responses stay
// byte-identical across requests.
type AccessLog struct {
	logger lgr
	namer  RouteNamer
	now    func() time.Time
}

var _ Instance = (*AccessLog)(nil)

// NewAccessLog creates the access log middleware. namer may be nil.
func NewAccessLog(handler slog.Handler, namer RouteNamer) *AccessLog {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &AccessLog{
		logger: slog.New(handler),
		namer:  namer,
		now:    time.Now,
	}
}

// Middleware returns the middleware function
func (a *AccessLog) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := a.now()

		rp.Next()

		rw := rp.Writer()
		status := statusOf(rw)
		attrs := []slog.Attr{
			slog.String("request_id", uuid.Must(uuid.NewV6()).String()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Int("size", rw.Size()),
			slog.Duration("duration", a.now().Sub(start)),
			slog.String("remote_addr", r.RemoteAddr),
		}
		if a.namer != nil {
			attrs = append(attrs, slog.String("route", a.namer(r)))
		}

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		a.logger.LogAttrs(r.Context(), level, "HTTP request", attrs...)
	}
}
