package handlers

import (
	"encoding/json"
	"io/fs"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siteprisme.fr/internal/config"
	"siteprisme.fr/internal/health"
	"siteprisme.fr/internal/log"
	"siteprisme.fr/internal/middleware"
	"siteprisme.fr/internal/services"
)

// maxBodyBytes bounds contact request bodies.
const maxBodyBytes = 64 << 10

// Deps are the services the routes are built from
type Deps struct {
	Config   *config.Config
	Projects *services.ProjectService
	Contact  *services.ContactService
	Health   *health.Manager
	Static   fs.FS
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) http.Handler {
	cfg := d.Config
	r := chi.NewRouter()

	tracing := ""
	if cfg.Observability.Tracing {
		tracing = "siteprisme"
	}
	middleware.ApplyStack(r, middleware.StackConfig{
		EnableMetrics:  cfg.Observability.Metrics,
		TracingService: tracing,
	})

	// Initialize handlers
	pageHandler := NewPageHandler(d.Projects, cfg.Site, cfg.Carousel.Interval.Std())
	projectHandler := NewProjectHandler(d.Projects)
	contactHandler := NewContactHandler(d.Contact, pageHandler)
	emailHandler := NewEmailHandler(d.Contact, cfg.Email.ExposeErrors)

	limit := middleware.ContactRateLimit(cfg.RateLimit.ContactPerMinute)

	r.Get("/", pageHandler.Index)
	r.With(limit).Post("/contact", contactHandler.SubmitForm)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", projectHandler.ListProjects)
		r.Get("/portfolio/{id}", projectHandler.GetProject)
		r.Get("/testimonials", projectHandler.ListTestimonials)

		r.With(limit).Post("/contact", contactHandler.SubmitJSON)

		// every method reaches the handler, which answers 405 itself; only
		// sends count against the relay's own limit
		r.With(
			middleware.CORS("*", []string{http.MethodPost, http.MethodOptions}, []string{"Content-Type"}),
			middleware.ForMethods(middleware.ContactRateLimit(cfg.RateLimit.ContactPerMinute), http.MethodPost),
		).HandleFunc("/send-email", emailHandler.SendEmail)

		if d.Health != nil {
			r.Get("/health", d.Health.ServeHTTP)
		} else {
			r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
				respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			})
		}
	})

	if cfg.Observability.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Static files
	if d.Static != nil {
		fileServer := http.FileServer(http.FS(d.Static))
		r.Handle("/static/*", http.StripPrefix("/static/", cacheStatic(fileServer)))
	}

	return r
}

func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger := log.WithComponent("handlers")
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// parseIntParam reads an integer query parameter, falling back to defaultVal
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clientIP strips the port from the remote address
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
