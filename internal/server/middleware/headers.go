package middleware

import (
	"errors"
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"
)

// ErrNoHeaders is returned when a StaticHeaders middleware is built with nothing to set
var ErrNoHeaders = errors.New("no static headers configured")

// StaticHeaders sets a fixed set of response headers on every response
type StaticHeaders struct {
	headers    http.Header
	middleware httpserver.HandlerFunc
}

var _ Instance = (*StaticHeaders)(nil)

// NewStaticHeaders builds the middleware. Header names and values are validated by the config
// package before they get here.
func NewStaticHeaders(headers map[string]string) (*StaticHeaders, error) {
	if len(headers) == 0 {
		return nil, ErrNoHeaders
	}

	h := make(http.Header, len(headers))
	for key, value := range headers {
		h.Set(key, value)
	}

	return &StaticHeaders{
		headers:    h,
		middleware: supervisorHeaders.NewWithOperations(supervisorHeaders.WithSet(h)),
	}, nil
}

// Headers returns a copy of the headers this middleware sets
func (s *StaticHeaders) Headers() http.Header {
	return s.headers.Clone()
}

// Middleware returns the middleware function
func (s *StaticHeaders) Middleware() httpserver.HandlerFunc {
	return s.middleware
}
