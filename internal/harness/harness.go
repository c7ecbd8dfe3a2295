// Package harness checks that a hellodevops service answers with the expected status and body.
// The result is a plain error, so callers can turn it straight into a process exit code.
package harness

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/atlanticdynamic/hellodevops/internal/greeting"
)

// maxBodySize caps how much of a response body is read for comparison
const maxBodySize = 1 << 20

// Expectation describes a request and the response it must produce
type Expectation struct {
	Method string
	Path   string
	Status int
	Body   string
}

// DefaultExpectation is GET / answered with 200 and the greeting
func DefaultExpectation() Expectation {
	return Expectation{
		Method: http.MethodGet,
		Path:   "/",
		Status: http.StatusOK,
		Body:   greeting.Message,
	}
}

func (e Expectation) String() string {
	return fmt.Sprintf("%s %s -> %d", e.method(), e.path(), e.Status)
}

func (e Expectation) method() string {
	if e.Method == "" {
		return http.MethodGet
	}
	return e.Method
}

func (e Expectation) path() string {
	if e.Path == "" {
		return "/"
	}
	return e.Path
}

// CheckHandler serves one request through handler in-process and compares the response
func CheckHandler(handler http.Handler, expect Expectation) error {
	if handler == nil {
		return ErrNilHandler
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(expect.method(), expect.path(), nil))
	return compare(expect, rec.Code, rec.Body.Bytes())
}

// CheckURL issues one request against the service at baseURL and compares the response.
// Transport failures wrap ErrRequestFailed.
func CheckURL(ctx context.Context, client *http.Client, baseURL string, expect Expectation) error {
	target, err := resolve(baseURL, expect.path())
	if err != nil {
		return err
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, expect.method(), target, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: reading body: %w", ErrRequestFailed, err)
	}
	return compare(expect, resp.StatusCode, body)
}

// resolve joins the request path onto baseURL
func resolve(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
