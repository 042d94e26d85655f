// Package controller holds the net/http middlewares and helper handlers the
// API server is assembled from.
//
// WithCORS answers cross-origin requests and preflights. WithLogger assigns
// every request an ID (taken from X-Request-Id when present and echoed back),
// stores a request-scoped logger in the context and writes an access log.
// PprofMux serves net/http/pprof under PprofPrefix.
package controller
