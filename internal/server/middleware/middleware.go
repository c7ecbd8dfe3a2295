// Package middleware provides the go-supervisor middleware used by the hellodevops listener.
package middleware

import (
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Instance is the interface all middleware instances must implement
type Instance interface {
	Middleware() httpserver.HandlerFunc
}

// Collect returns the HandlerFuncs of the instances in order, skipping nils
func Collect(instances ...Instance) []httpserver.HandlerFunc {
	out := make([]httpserver.HandlerFunc, 0, len(instances))
	for _, inst := range instances {
		if inst == nil {
			continue
		}
		out = append(out, inst.Middleware())
	}
	return out
}

// statusOf returns the status written to rw, defaulting to 200 when the handler wrote none
func statusOf(rw httpserver.ResponseWriter) int {
	if status := rw.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
