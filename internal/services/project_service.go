package services

import (
	"errors"
	"fmt"

	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/models"
)

// ErrProjectNotFound is returned by GetByID for unknown ids.
var ErrProjectNotFound = errors.New("project not found")

// DefaultCategory is the filter selected when none is given.
const DefaultCategory = "Fast Food"

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	if projects == nil {
		projects = &models.ProjectList{}
	}
	return &ProjectService{projects: projects}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// Categories returns the portfolio filters in display order
func (s *ProjectService) Categories() []models.Category {
	return content.Categories
}

// Selection is a resolved portfolio filter state
type Selection struct {
	Category models.Category
	Stack    string // only meaningful for e-commerce
	Known    bool
}

// ECommerce reports whether the stack toggle applies
func (sel Selection) ECommerce() bool {
	return sel.Category.Value == content.CategoryECommerce
}

// Select resolves a category (display name or value) and stack. An empty
// category selects the default; the stack falls back to Shopify whenever the
// category is not e-commerce or the stack is not one of the toggle choices.
func (s *ProjectService) Select(category, stack string) Selection {
	if category == "" {
		category = DefaultCategory
	}

	cat, ok := content.CategoryByName(category)
	if !ok {
		cat, ok = content.CategoryByValue(category)
	}
	if !ok {
		return Selection{Category: models.Category{Name: category}, Stack: content.StackShopify}
	}

	sel := Selection{Category: cat, Stack: content.StackShopify, Known: true}
	if sel.ECommerce() && stack == content.StackWordPress {
		sel.Stack = content.StackWordPress
	}
	return sel
}

// Filter returns the projects shown for a selection, in catalogue order.
// Unknown categories match nothing.
func (s *ProjectService) Filter(sel Selection) []models.Project {
	if !sel.Known {
		return []models.Project{}
	}

	out := make([]models.Project, 0)
	for _, p := range s.projects.Projects {
		if p.Category != sel.Category.Value {
			continue
		}
		if sel.ECommerce() && p.Stack != sel.Stack {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Testimonials returns every project testimonial in catalogue order
func (s *ProjectService) Testimonials() []models.TestimonialEntry {
	var out []models.TestimonialEntry
	for _, p := range s.projects.Projects {
		if p.Testimonial == nil {
			continue
		}
		out = append(out, models.TestimonialEntry{
			Testimonial:  *p.Testimonial,
			ProjectID:    p.ID,
			ProjectTitle: p.Title,
			Category:     p.Category,
		})
	}
	return out
}
