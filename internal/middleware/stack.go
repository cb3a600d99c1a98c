package middleware

import (
	"github.com/go-chi/chi/v5"
)

// StackConfig configures the middleware applied to every route.
type StackConfig struct {
	CSP            string
	EnableMetrics  bool
	TracingService string // empty disables tracing
}

// ApplyStack applies the canonical middleware stack to r.
func ApplyStack(r chi.Router, cfg StackConfig) {
	// outermost safety net
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(SecurityHeaders(cfg.CSP))
	if cfg.EnableMetrics {
		r.Use(Metrics())
	}
	if cfg.TracingService != "" {
		r.Use(Tracing(cfg.TracingService))
	}
}
