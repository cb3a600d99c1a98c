// Package views renders the site's single page with gomponents.
package views

import (
	"io"
	"net/url"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/services"
)

// Query parameters understood by GET /.
const (
	ParamCategory    = "categorie"
	ParamStack       = "stack"
	ParamProject     = "projet"
	ParamTestimonial = "temoignage"
)

// PageData is everything the page needs, resolved by the handler.
type PageData struct {
	SiteName     string
	Description  string
	CanonicalURL string
	Year         int

	Selection  services.Selection
	Categories []models.Category
	Projects   []models.Project
	Selected   *models.Project // open in the modal

	Testimonials     []models.TestimonialEntry
	Carousel         services.Carousel
	CarouselInterval time.Duration

	Form services.FormState
}

// Render writes the full page.
func Render(w io.Writer, d PageData) error {
	return Page(d).Render(w)
}

// Page is the whole document, sections in their fixed order.
func Page(d PageData) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       d.SiteName + " - Agence de développement web à Strasbourg",
		Description: d.Description,
		Language:    "fr",
		Head: []g.Node{
			g.If(d.CanonicalURL != "", Link(Rel("canonical"), Href(d.CanonicalURL))),
			Link(Rel("stylesheet"), Href("/static/css/site.css")),
			Link(Rel("icon"), Href("/static/img/favicon.svg")),
			Script(Src("/static/js/site.js"), Defer()),
		},
		Body: []g.Node{
			Navbar(d),
			Main(
				Hero(),
				ExpertisesSection(),
				ProcessSection(),
				PortfolioSection(d),
				TestimonialsSection(d),
				ContactSection(d.Form),
			),
			SiteFooter(d),
		},
	})
}

// pageQuery is the URL state of the page.
type pageQuery struct {
	category    string
	stack       string
	project     string
	testimonial int
}

func queryFor(d PageData) pageQuery {
	q := pageQuery{
		category:    d.Selection.Category.Name,
		testimonial: d.Carousel.Index(),
	}
	if d.Selection.ECommerce() {
		q.stack = d.Selection.Stack
	}
	if d.Selected != nil {
		q.project = d.Selected.ID
	}
	return q
}

// href renders q as a link to the page, anchored at fragment.
func (q pageQuery) href(fragment string) string {
	v := url.Values{}
	if q.category != "" && q.category != services.DefaultCategory {
		v.Set(ParamCategory, q.category)
	}
	if q.stack != "" {
		v.Set(ParamStack, q.stack)
	}
	if q.project != "" {
		v.Set(ParamProject, q.project)
	}
	if q.testimonial > 0 {
		v.Set(ParamTestimonial, strconv.Itoa(q.testimonial))
	}

	u := "/"
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}
	if fragment != "" {
		u += "#" + fragment
	}
	return u
}

func icon(name string) g.Node {
	return Span(Class("icon icon-"+name), g.Attr("aria-hidden", "true"))
}

func sectionHeader(title, intro string) g.Node {
	return Div(Class("section-header reveal"),
		H2(g.Text(title)),
		P(Class("lead"), g.Text(intro)),
	)
}

func tags(items []string, class string) g.Node {
	return Ul(Class(class),
		g.Group(g.Map(items, func(s string) g.Node {
			return Li(g.Text(s))
		})),
	)
}
