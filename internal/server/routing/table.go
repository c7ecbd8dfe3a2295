package routing

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/gorilla/mux"
)

// Labels returned by Table.Name for requests that no route handles
const (
	NameNotFound         = "not_found"
	NameMethodNotAllowed = "method_not_allowed"
	NameRedirect         = "redirect"
)

// Table is an immutable route table. It is built once by NewTable and only read afterwards, so
// it is safe for concurrent use without locking.
//
// A GET route also answers HEAD unless HEAD is registered for the same path.
type Table struct {
	routes  []Route
	byKey   map[Key]Route
	allowed map[string][]string
	router  *mux.Router
}

var _ http.Handler = (*Table)(nil)

// NewTable validates the routes and builds the dispatch table
func NewTable(routes ...Route) (*Table, error) {
	if len(routes) == 0 {
		return nil, ErrNoRoutesDefined
	}

	t := &Table{
		routes:  make([]Route, 0, len(routes)),
		byKey:   make(map[Key]Route, len(routes)),
		allowed: make(map[string][]string),
		router:  mux.NewRouter(),
	}

	names := make(map[string]struct{}, len(routes))
	var errs []error
	for _, r := range routes {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r, err))
			continue
		}
		if _, dup := t.byKey[r.Key()]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateRoute, r.Key()))
			continue
		}
		if _, dup := names[r.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name))
			continue
		}

		names[r.Name] = struct{}{}
		t.routes = append(t.routes, r)
		t.byKey[r.Key()] = r
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	for _, r := range t.routes {
		methods := []string{r.Method}
		head := Key{Method: http.MethodHead, Path: r.Path}
		if _, explicit := t.byKey[head]; r.Method == http.MethodGet && !explicit {
			t.byKey[head] = r
			methods = append(methods, http.MethodHead)
		}
		t.allowed[r.Path] = append(t.allowed[r.Path], methods...)
		t.router.NewRoute().Name(r.Name).Methods(methods...).Path(r.Path).Handler(r.Handler)
	}
	for p := range t.allowed {
		slices.Sort(t.allowed[p])
	}

	// mux only reports a method mismatch when no later route clears it, so both outcomes go
	// through the table's own lookup
	t.router.NotFoundHandler = http.HandlerFunc(t.unmatched)
	t.router.MethodNotAllowedHandler = http.HandlerFunc(t.unmatched)
	return t, nil
}

// ServeHTTP dispatches to the matching route. Unclean paths are redirected to their clean form,
// unknown paths get 404 and known paths with another method get 405.
func (t *Table) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t.router.ServeHTTP(w, r)
}

// Routes returns a copy of the registered routes in registration order
func (t *Table) Routes() []Route {
	return slices.Clone(t.routes)
}

// Lookup returns the route that serves key
func (t *Table) Lookup(key Key) (Route, bool) {
	r, ok := t.byKey[key]
	return r, ok
}

// Allowed returns the methods served on path, sorted
func (t *Table) Allowed(path string) []string {
	return slices.Clone(t.allowed[path])
}

// Name returns the route name that will handle r, or NameRedirect, NameNotFound or
// NameMethodNotAllowed
func (t *Table) Name(r *http.Request) string {
	p := r.URL.Path
	if cleanPath(p) != p {
		return NameRedirect
	}
	if route, ok := t.byKey[Key{Method: r.Method, Path: p}]; ok {
		return route.Name
	}
	if _, ok := t.allowed[p]; ok {
		return NameMethodNotAllowed
	}
	return NameNotFound
}

func (t *Table) unmatched(w http.ResponseWriter, r *http.Request) {
	allowed, ok := t.allowed[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// cleanPath matches the cleaning mux applies before routing: an empty path is "/", and a
// trailing slash survives.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}
