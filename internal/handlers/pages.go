package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"siteprisme.fr/internal/config"
	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/log"
	"siteprisme.fr/internal/services"
	"siteprisme.fr/internal/views"
)

const siteDescription = "SitePrisme, agence de développement web à Strasbourg : sites vitrines, e-commerce et applications web sur mesure."

// PageHandler renders the single page
type PageHandler struct {
	projects *services.ProjectService
	site     config.SiteConfig
	interval time.Duration
	now      func() time.Time
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, site config.SiteConfig, interval time.Duration) *PageHandler {
	return &PageHandler{
		projects: ps,
		site:     site,
		interval: interval,
		now:      time.Now,
	}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, services.FormState{})
}

// Data resolves the page state from the request query.
func (h *PageHandler) Data(r *http.Request, form services.FormState) views.PageData {
	q := r.URL.Query()
	sel := h.projects.Select(q.Get(views.ParamCategory), q.Get(views.ParamStack))
	testimonials := h.projects.Testimonials()

	d := views.PageData{
		SiteName:         h.site.Name,
		CanonicalURL:     canonicalURL(h.site.BaseURL),
		Description:      siteDescription,
		Year:             h.now().Year(),
		Selection:        sel,
		Categories:       content.Categories,
		Projects:         h.projects.Filter(sel),
		Testimonials:     testimonials,
		Carousel:         services.NewCarousel(len(testimonials), parseIntParam(r, views.ParamTestimonial, 0)),
		CarouselInterval: h.interval,
		Form:             form,
	}
	if id := q.Get(views.ParamProject); id != "" {
		if p, err := h.projects.GetByID(id); err == nil {
			d.Selected = p
		}
	}
	return d
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, form services.FormState) {
	var buf bytes.Buffer
	if err := views.Render(&buf, h.Data(r, form)); err != nil {
		logger := log.WithComponentFromContext(r.Context(), "pages")
		logger.Error().Err(err).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func canonicalURL(base string) string {
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/"
}
