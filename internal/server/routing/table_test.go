package routing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(
		Route{Name: "root", Method: http.MethodGet, Path: "/", Handler: textHandler("root")},
		Route{Name: "page", Method: http.MethodGet, Path: "/page", Handler: textHandler("page")},
		Route{Name: "page-post", Method: http.MethodPost, Path: "/page", Handler: textHandler("posted")},
	)
	require.NoError(t, err)
	return table
}

func TestRoute_Validate(t *testing.T) {
	h := textHandler("x")
	tests := []struct {
		name    string
		route   Route
		wantErr error
	}{
		{"valid", Route{Name: "a", Method: "GET", Path: "/", Handler: h}, nil},
		{"empty name", Route{Method: "GET", Path: "/", Handler: h}, ErrEmptyRouteName},
		{"relative path", Route{Name: "a", Method: "GET", Path: "page", Handler: h}, ErrInvalidPath},
		{"unclean path", Route{Name: "a", Method: "GET", Path: "/a//b", Handler: h}, ErrInvalidPath},
		{"pattern path", Route{Name: "a", Method: "GET", Path: "/{id}", Handler: h}, ErrInvalidPath},
		{"lowercase method", Route{Name: "a", Method: "get", Path: "/", Handler: h}, ErrInvalidMethod},
		{"empty method", Route{Name: "a", Path: "/", Handler: h}, ErrInvalidMethod},
		{"nil handler", Route{Name: "a", Method: "GET", Path: "/"}, ErrNilHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.route.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTable_Errors(t *testing.T) {
	h := textHandler("x")

	t.Run("no routes", func(t *testing.T) {
		_, err := NewTable()
		assert.ErrorIs(t, err, ErrNoRoutesDefined)
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := NewTable(
			Route{Name: "a", Method: "GET", Path: "/", Handler: h},
			Route{Name: "b", Method: "GET", Path: "/", Handler: h},
		)
		assert.ErrorIs(t, err, ErrDuplicateRoute)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := NewTable(
			Route{Name: "a", Method: "GET", Path: "/", Handler: h},
			Route{Name: "a", Method: "GET", Path: "/other", Handler: h},
		)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("invalid route", func(t *testing.T) {
		_, err := NewTable(Route{Name: "a", Method: "GET", Path: "/"})
		assert.ErrorIs(t, err, ErrNilHandler)
	})
}

func TestTable_ServeHTTP(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
		wantAllow  string
	}{
		{"root", http.MethodGet, "/", http.StatusOK, "root", ""},
		{"page", http.MethodGet, "/page", http.StatusOK, "page", ""},
		{"page post", http.MethodPost, "/page", http.StatusOK, "posted", ""},
		{"unknown path", http.MethodGet, "/missing", http.StatusNotFound, "", ""},
		{"trailing slash is a different path", http.MethodGet, "/page/", http.StatusNotFound, "", ""},
		{"head on root", http.MethodHead, "/", http.StatusOK, "root", ""},
		{"head on page", http.MethodHead, "/page", http.StatusOK, "page", ""},
		{"wrong method on root", http.MethodPost, "/", http.StatusMethodNotAllowed, "", "GET, HEAD"},
		{"wrong method on page", http.MethodDelete, "/page", http.StatusMethodNotAllowed, "", "GET, HEAD, POST"},
		{"wrong method on unknown path", http.MethodPost, "/missing", http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			table.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
		})
	}
}

func TestTable_Name(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		method     string
		path       string
		wantName   string
		wantStatus int
	}{
		{http.MethodGet, "/", "root", http.StatusOK},
		{http.MethodHead, "/page", "page", http.StatusOK},
		{http.MethodPost, "/page", "page-post", http.StatusOK},
		{http.MethodPut, "/", NameMethodNotAllowed, http.StatusMethodNotAllowed},
		{http.MethodPost, "/", NameMethodNotAllowed, http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", NameNotFound, http.StatusNotFound},
		{http.MethodGet, "//page", NameRedirect, http.StatusMovedPermanently},
		{http.MethodGet, "/a/../page", NameRedirect, http.StatusMovedPermanently},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://example.com", nil)
			req.URL.Path = tt.path
			assert.Equal(t, tt.wantName, table.Name(req))

			// the label agrees with what the table actually does
			rec := httptest.NewRecorder()
			table.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestTable_ExplicitHead(t *testing.T) {
	table, err := NewTable(
		Route{Name: "get", Method: http.MethodGet, Path: "/", Handler: textHandler("get")},
		Route{Name: "head", Method: http.MethodHead, Path: "/", Handler: textHandler("head")},
	)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodHead, "/", nil)
	assert.Equal(t, "head", table.Name(req))

	rec := httptest.NewRecorder()
	table.ServeHTTP(rec, req)
	assert.Equal(t, "head", rec.Body.String())
	assert.Equal(t, []string{"GET", "HEAD"}, table.Allowed("/"))
}

func TestTable_Accessors(t *testing.T) {
	table := newTestTable(t)

	routes := table.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "root", routes[0].Name)

	// returned slice is a copy
	routes[0].Name = "changed"
	assert.Equal(t, "root", table.Routes()[0].Name)

	r, ok := table.Lookup(Key{Method: http.MethodGet, Path: "/page"})
	require.True(t, ok)
	assert.Equal(t, "page", r.Name)

	_, ok = table.Lookup(Key{Method: http.MethodGet, Path: "/nope"})
	assert.False(t, ok)

	r, ok = table.Lookup(Key{Method: http.MethodHead, Path: "/page"})
	require.True(t, ok)
	assert.Equal(t, "page", r.Name)

	assert.Equal(t, []string{"GET", "HEAD", "POST"}, table.Allowed("/page"))
	assert.Nil(t, table.Allowed("/nope"))
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "GET /", Key{Method: "GET", Path: "/"}.String())
}
