package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/services"
)

// ProjectHandler handles portfolio endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/portfolio. Without a category the whole
// catalogue is returned; otherwise the portfolio filter applies.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		respondJSON(w, http.StatusOK, models.ProjectList{Projects: h.projectService.GetAll()})
		return
	}

	sel := h.projectService.Select(category, r.URL.Query().Get("stack"))
	respondJSON(w, http.StatusOK, models.ProjectList{Projects: h.projectService.Filter(sel)})
}

// GetProject handles GET /api/portfolio/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// ListTestimonials handles GET /api/testimonials
func (h *ProjectHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials := h.projectService.Testimonials()
	if testimonials == nil {
		testimonials = []models.TestimonialEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"testimonials": testimonials})
}
