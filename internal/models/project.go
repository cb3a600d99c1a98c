package models

// Project represents a portfolio case study
type Project struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	Stack        string       `json:"stack"`
	Description  string       `json:"description"`
	Image        string       `json:"image"`
	URL          string       `json:"url,omitempty"`
	Year         int          `json:"year"`
	Technologies []string     `json:"technologies"`
	Testimonial  *Testimonial `json:"testimonial,omitempty"`
}

// Testimonial is the client quote attached to a project
type Testimonial struct {
	Author string `json:"author"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// TestimonialEntry is a testimonial together with the project it came from
type TestimonialEntry struct {
	Testimonial
	ProjectID    string `json:"project_id"`
	ProjectTitle string `json:"project_title"`
	Category     string `json:"category"`
}
