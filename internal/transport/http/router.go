// Package httptransport assembles the public HTTP surface from the
// per-domain handlers.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lifebank/internal/platform/tracing"
	"lifebank/internal/transport/http/shared"
)

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the operational endpoints and mounts each domain
// handler. Domain middleware (auth, logging, request time) is applied
// inside the handlers themselves.
func NewRouter(health http.HandlerFunc, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(tracing.Middleware)

	r.Get("/healthz", health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

// Healthz builds the health endpoint. With no checks it always reports ok.
func Healthz(checks ...func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(); err != nil {
				shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
				return
			}
		}
		shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
