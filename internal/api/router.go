// Package api exposes code issuance, date validation and QR rendering over
// HTTP as JSON.
//
// Every JSON response uses one envelope: {"data": ...} on success and
// {"error": {"code", "message", "details", "request_id"}} on failure, where
// code is a message catalog key and message its translation. The language is
// negotiated from the "lang" query parameter or Accept-Language.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/curp/internal/issuer"
	"github.com/dmitrymomot/curp/internal/metrics"
	"github.com/dmitrymomot/curp/pkg/httpserver"
	"github.com/dmitrymomot/curp/pkg/i18n"
	"github.com/dmitrymomot/curp/pkg/logger"
	"github.com/dmitrymomot/curp/pkg/requestid"
)

// Options configures the router. Issuer and Translator are required.
type Options struct {
	Issuer     *issuer.Service
	Translator *i18n.Translator
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	// ReadyChecks run on GET /health/ready.
	ReadyChecks []func(context.Context) error
}

// NewRouter mounts every route:
//
//	POST /v1/curp
//	POST /v1/dates/validate
//	GET  /v1/states
//	GET  /v1/curp/{code}/qr.png?size=N
//	GET  /health/live
//	GET  /health/ready
//	GET  /metrics
func NewRouter(opts Options) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	h := &Handler{
		issuer: opts.Issuer,
		tr:     opts.Translator,
		log:    log.With(logger.Component("api")),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(opts.Translator))

	r.NotFound(h.notFound)
	r.MethodNotAllowed(h.methodNotAllowed)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/curp", h.issue)
		v1.Get("/curp/{code}/qr.png", h.qr)
		v1.Post("/dates/validate", h.validateDate)
		v1.Get("/states", h.states)
	})

	r.Route("/health", func(health chi.Router) {
		health.Get("/live", httpserver.LivenessHandler())
		health.Get("/ready", httpserver.ReadinessHandler(log, opts.ReadyChecks...))
	})

	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	return r
}
