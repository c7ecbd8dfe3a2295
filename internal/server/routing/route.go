// Package routing maps (method, path) pairs to handlers.
package routing

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrEmptyRouteName  = errors.New("empty route name")
	ErrInvalidPath     = errors.New("invalid route path")
	ErrInvalidMethod   = errors.New("invalid route method")
	ErrNilHandler      = errors.New("nil route handler")
	ErrDuplicateRoute  = errors.New("duplicate route")
	ErrDuplicateName   = errors.New("duplicate route name")
	ErrNoRoutesDefined = errors.New("no routes defined")
)

// Key identifies a route by HTTP method and exact path
type Key struct {
	Method string
	Path   string
}

// String returns "METHOD /path"
func (k Key) String() string {
	return k.Method + " " + k.Path
}

// Route maps a Key to a handler
type Route struct {
	Name    string
	Method  string
	Path    string
	Handler http.Handler
}

// Key returns the lookup key for this route
func (r Route) Key() Key {
	return Key{Method: r.Method, Path: r.Path}
}

// String returns a string representation of a Route.
func (r Route) String() string {
	return fmt.Sprintf("Route{Name: %s, %s}", r.Name, r.Key())
}

// Validate checks the route for configuration errors
func (r Route) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, ErrEmptyRouteName)
	}
	if !strings.HasPrefix(r.Path, "/") {
		errs = append(errs, fmt.Errorf("%w: %q must start with /", ErrInvalidPath, r.Path))
	} else if cleanPath(r.Path) != r.Path {
		errs = append(errs, fmt.Errorf("%w: %q is not clean", ErrInvalidPath, r.Path))
	}
	if strings.ContainsAny(r.Path, "{}") {
		errs = append(errs, fmt.Errorf("%w: %q must not contain { or }", ErrInvalidPath, r.Path))
	}
	if r.Method == "" || strings.ToUpper(r.Method) != r.Method {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidMethod, r.Method))
	}
	if r.Handler == nil {
		errs = append(errs, ErrNilHandler)
	}
	return errors.Join(errs...)
}
