package content

import (
	"fmt"

	"siteprisme.fr/internal/models"
)

// Defect describes one problem found in the catalogue.
type Defect struct {
	ProjectID string
	Index     int
	Problem   string
}

func (d Defect) String() string {
	if d.ProjectID == "" {
		return fmt.Sprintf("project #%d: %s", d.Index, d.Problem)
	}
	return fmt.Sprintf("project %q: %s", d.ProjectID, d.Problem)
}

// Validate reports catalogue defects. The site still serves a catalogue with
// defects; the report is for `siteprisme check` and the startup log.
func Validate(list *models.ProjectList) []Defect {
	if list == nil {
		return []Defect{{Index: -1, Problem: "catalogue is empty"}}
	}

	var defects []Defect
	seen := make(map[string]bool, len(list.Projects))

	for i, p := range list.Projects {
		add := func(problem string) {
			defects = append(defects, Defect{ProjectID: p.ID, Index: i, Problem: problem})
		}

		if p.ID == "" {
			add("missing id")
		} else if seen[p.ID] {
			add("duplicate id")
		}
		seen[p.ID] = true

		if p.Title == "" {
			add("missing title")
		}
		if _, ok := CategoryByValue(p.Category); !ok {
			add(fmt.Sprintf("unknown category %q", p.Category))
		}
		if p.Category == CategoryECommerce && p.Stack != StackShopify && p.Stack != StackWordPress {
			add(fmt.Sprintf("e-commerce project with stack %q is unreachable from the stack toggle", p.Stack))
		}
		if p.Image == "" {
			add("missing image")
		}
		if p.Testimonial != nil && p.Testimonial.Quote == "" {
			add("testimonial without quote")
		}
	}

	return defects
}
