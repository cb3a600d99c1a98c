package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"siteprisme.fr/internal/models"
)

const maxRating = 5

// TestimonialsSection is the carousel. Every slide is rendered; the current
// one is marked active. Prev, next and dot links work without script, and
// site.js advances the slides every data-interval milliseconds while the
// pointer is not over the carousel.
func TestimonialsSection(d PageData) g.Node {
	if d.Carousel.Empty() {
		return nil
	}

	q := queryFor(d)
	at := func(i int) string {
		tq := q
		tq.testimonial = i
		return tq.href("temoignages")
	}

	return Section(ID("temoignages"), Class("section section-alt"),
		Div(Class("container"),
			sectionHeader("Témoignages Clients",
				"Découvrez les retours de nos clients sur nos réalisations et notre accompagnement."),
			Div(Class("carousel"),
				g.Attr("data-interval", strconv.FormatInt(d.CarouselInterval.Milliseconds(), 10)),
				g.Attr("data-index", strconv.Itoa(d.Carousel.Index())),
				Div(Class("slides"),
					g.Group(g.Map(indexed(d.Testimonials), func(e indexedTestimonial) g.Node {
						return slide(e, e.index == d.Carousel.Index())
					})),
				),
				g.If(d.Carousel.Len() > 1, Div(Class("carousel-controls"),
					A(Class("carousel-prev"), Href(at(d.Carousel.Prev())), g.Attr("aria-label", "Témoignage précédent"), icon("chevron-left")),
					Div(Class("dots"),
						g.Group(g.Map(indexed(d.Testimonials), func(e indexedTestimonial) g.Node {
							cls := "dot"
							if e.index == d.Carousel.Index() {
								cls += " active"
							}
							return A(Class(cls), Href(at(e.index)), g.Attr("data-slide", strconv.Itoa(e.index)),
								g.Attr("aria-label", "Témoignage "+strconv.Itoa(e.index+1)))
						})),
					),
					A(Class("carousel-next"), Href(at(d.Carousel.Next())), g.Attr("aria-label", "Témoignage suivant"), icon("chevron-right")),
				)),
			),
		),
	)
}

type indexedTestimonial struct {
	models.TestimonialEntry
	index int
}

func indexed(entries []models.TestimonialEntry) []indexedTestimonial {
	out := make([]indexedTestimonial, len(entries))
	for i, e := range entries {
		out[i] = indexedTestimonial{TestimonialEntry: e, index: i}
	}
	return out
}

func slide(e indexedTestimonial, active bool) g.Node {
	cls := "slide"
	if active {
		cls += " active"
	}
	return Figure(Class(cls), g.Attr("data-slide", strconv.Itoa(e.index)),
		g.If(e.Rating > 0, Div(Class("rating"), g.Attr("aria-label", strconv.Itoa(e.Rating)+"/5"),
			g.Text(stars(e.Rating)))),
		BlockQuote(P(g.Text(e.Quote))),
		FigCaption(
			Strong(g.Text(e.Author)),
			g.If(e.Role != "", Span(Class("role"), g.Text(e.Role))),
			Span(Class("project"), g.Text(e.ProjectTitle)),
		),
	)
}

func stars(rating int) string {
	rating = max(0, min(rating, maxRating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", maxRating-rating)
}
