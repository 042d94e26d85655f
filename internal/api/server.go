// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the password service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"

	"passgen/internal/api/handler/v1handler"
	"passgen/internal/config"
	"passgen/internal/generator"
	"passgen/pkg/controller"
)

//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options configures NewServer. Zero durations keep the net/http defaults.
type Options struct {
	// SecHandlerOptions configures bearer authentication for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// V1 configures request handling of the v1 API.
	V1 v1handler.Options

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// RequestTimeout bounds each request through http.TimeoutHandler.
	RequestTimeout time.Duration
	// MetricsPath serves the Prometheus registry. Defaults to /metrics.
	MetricsPath string
	// EnablePprof mounts the pprof handlers under /debug/pprof/.
	EnablePprof bool
	// AllowedOrigins restricts CORS to the listed origins. Empty allows any.
	AllowedOrigins []string
}

// NewOptions maps the http, jwt and generator sections of cfg to Options. It
// fails when the configured generator defaults are invalid.
func NewOptions(cfg *config.Config) (Options, error) {
	defaults, err := generator.DefaultRequest(cfg)
	if err != nil {
		return Options{}, err
	}

	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		V1:                v1handler.Options{Defaults: defaults},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		EnablePprof:       cfg.HTTP.EnablePprof,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}, nil
}

// Deps are the collaborators shared by every route.
type Deps struct {
	v1handler.Deps

	// Gatherer serves the metrics endpoint. Nil uses prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewServer builds the HTTP server: metrics, the embedded OpenAPI document
// with its Swagger UI, the v1 routes (behind bearer auth when a public key is
// set) and optionally pprof. Every request passes the CORS, access log and
// timeout middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Password Generator Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	mux.Handle("/v1/", v1handler.New(deps.Deps, opts.V1).Routes(secHandler))

	// pprof
	if opts.EnablePprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	// cors
	handler := controller.WithCORS(mux, opts.AllowedOrigins...)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
