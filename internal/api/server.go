// Package api configures and exposes the HTTP server, routes, metrics and
// related middleware for the receipt relay service.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"relay/internal/api/handler"
	"relay/internal/config"
	"relay/pkg/controller"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":5000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// WebhookSecret guards the webhook endpoint; empty disables the check.
	WebhookSecret string
	// JWTPublicKey verifies operator tokens on /v1 endpoints.
	JWTPublicKey string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,

		WebhookSecret: cfg.Webhook.Secret,
		JWTPublicKey:  cfg.JWT.PublicKey,
	}
}

// Deps carries everything the routes need.
type Deps struct {
	handler.Deps
}

// NewRouter builds the route tree: public probes and the webhook endpoint,
// the JWT-protected operator API under /v1, metrics and pprof.
func NewRouter(deps Deps, opts Options) (chi.Router, error) {
	router := chi.NewRouter()
	router.Use(controller.WithRecovery, controller.WithAccessLog, controller.WithCORS)

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("WA Receipt Processor running"))
	})
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Method(http.MethodPost, "/webhooks/whatsapp",
		handler.NewWebhook(deps.Deps, opts.WebhookSecret))

	auth, err := handler.NewAuth(opts.JWTPublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not create auth middleware: %w", err)
	}
	operator := handler.NewOperator(deps.Deps)
	router.Route("/v1", func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Get("/receipts", operator.Receipts)
		r.Get("/receipts/{id}", operator.Receipt)
		r.Get("/receipts/{id}/media", operator.Media)
		r.Delete("/receipts/{id}", operator.DeleteReceipt)
		r.Get("/queries", operator.Queries)
		r.Get("/events", operator.Events)
	})

	router.Handle(opts.MetricsPath, promhttp.Handler())
	router.Mount("/debug/pprof", controller.PprofMux())

	return router, nil
}

// NewServer wires up and returns a configured *http.Server using the
// provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	router, err := NewRouter(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           router,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
