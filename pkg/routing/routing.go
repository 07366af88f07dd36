// Package routing provides the agent's HTTP mux.
package routing

import (
	"net/http"
	"path"
)

// NormalizedServeMux wraps an http.ServeMux and cleans request paths before
// dispatch, so "//status" and "/status/" reach the "/status" handler instead
// of redirecting.
type NormalizedServeMux struct {
	mux *http.ServeMux
}

func NewNormalizedServeMux() *NormalizedServeMux {
	return &NormalizedServeMux{mux: http.NewServeMux()}
}

// Handle registers a handler for the given pattern.
func (nm *NormalizedServeMux) Handle(pattern string, handler http.Handler) {
	nm.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function for the given pattern.
func (nm *NormalizedServeMux) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	nm.mux.HandleFunc(pattern, handler)
}

func (nm *NormalizedServeMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if cleaned := path.Clean(r.URL.Path); cleaned != r.URL.Path {
		r.URL.Path = cleaned
	}

	nm.mux.ServeHTTP(w, r)
}
