package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/models"
)

const maxCardTechnologies = 5

// PortfolioSection renders the category filters, the e-commerce stack toggle,
// the filtered grid and the project modal.
func PortfolioSection(d PageData) g.Node {
	q := queryFor(d)
	q.project = ""

	return Section(ID("portfolio"), Class("section"),
		Div(Class("container"),
			sectionHeader("Nos Réalisations",
				"Découvrez une sélection de nos projets les plus récents, alliant design moderne et performances techniques."),
			Div(Class("filters"), g.Attr("role", "tablist"),
				g.Group(g.Map(d.Categories, func(cat models.Category) g.Node {
					fq := q
					fq.category = cat.Name
					fq.stack = ""
					active := d.Selection.Known && d.Selection.Category.Value == cat.Value
					return A(
						Class(filterClass(active)),
						Href(fq.href("portfolio")),
						g.Attr("role", "tab"),
						g.Attr("aria-selected", strconv.FormatBool(active)),
						icon(cat.Icon),
						g.Text(cat.Name),
					)
				})),
			),
			g.If(d.Selection.ECommerce(), stackToggle(d, q)),
			projectGrid(d, q),
			g.Iff(d.Selected != nil, func() g.Node { return projectModal(d) }),
		),
	)
}

func filterClass(active bool) string {
	if active {
		return "filter active"
	}
	return "filter"
}

func stackToggle(d PageData, q pageQuery) g.Node {
	return Div(Class("stack-toggle"),
		g.Group(g.Map(content.ECommerceStacks, func(st models.Category) g.Node {
			sq := q
			sq.stack = st.Value
			return A(
				Class(filterClass(d.Selection.Stack == st.Value)),
				Href(sq.href("portfolio")),
				icon(st.Icon),
				g.Text(st.Name),
			)
		})),
	)
}

func projectGrid(d PageData, q pageQuery) g.Node {
	if len(d.Projects) == 0 {
		return P(Class("empty"), g.Text("Aucun projet dans cette catégorie pour le moment."))
	}
	return Div(Class("grid grid-3 projects"),
		g.Group(g.Map(d.Projects, func(p models.Project) g.Node {
			return projectCard(p, q)
		})),
	)
}

func projectCard(p models.Project, q pageQuery) g.Node {
	q.project = p.ID

	techs := p.Technologies
	extra := 0
	if len(techs) > maxCardTechnologies {
		extra = len(techs) - maxCardTechnologies
		techs = techs[:maxCardTechnologies]
	}

	return Article(Class("card project reveal"), g.Attr("data-project", p.ID),
		A(Href(q.href("portfolio")), Class("project-link"),
			Img(Src(p.Image), Alt(p.Title), Loading("lazy")),
			Div(Class("project-meta"),
				Span(Class("badge"), icon(categoryIcon(p.Category)), g.Text(categoryName(p.Category))),
				Span(Class("year"), g.Text(strconv.Itoa(p.Year))),
			),
			H3(g.Text(p.Title)),
			P(g.Text(p.Description)),
			Ul(Class("tech-tags"),
				g.Group(g.Map(techs, func(t string) g.Node { return Li(g.Text(t)) })),
				g.If(extra > 0, Li(g.Textf("+%d", extra))),
			),
		),
	)
}

func projectModal(d PageData) g.Node {
	p := d.Selected
	closeQ := queryFor(d)
	closeQ.project = ""

	return Div(Class("modal-backdrop"), ID("project-modal"),
		Div(Class("modal"), g.Attr("role", "dialog"), g.Attr("aria-modal", "true"), g.Attr("aria-labelledby", "modal-title"),
			A(Class("modal-close"), Href(closeQ.href("portfolio")), g.Attr("aria-label", "Fermer"), icon("x")),
			Img(Src(p.Image), Alt(p.Title)),
			Div(Class("project-meta"),
				Span(Class("badge"), icon(categoryIcon(p.Category)), g.Text(categoryName(p.Category))),
				Span(Class("year"), g.Text(strconv.Itoa(p.Year))),
			),
			H3(ID("modal-title"), g.Text(p.Title)),
			P(g.Text(p.Description)),
			H4(g.Text("Technologies utilisées :")),
			tags(p.Technologies, "tech-tags"),
			g.Iff(p.Testimonial != nil, func() g.Node {
				return BlockQuote(Class("modal-quote"),
					P(g.Text(p.Testimonial.Quote)),
					Footer(g.Text(p.Testimonial.Author+", "+p.Testimonial.Role)),
				)
			}),
			g.If(p.URL != "", A(Class("btn btn-primary"), Href(p.URL), Target("_blank"), Rel("noopener"),
				g.Text("Voir le site"), icon("external-link"))),
		),
	)
}

func categoryName(value string) string {
	if c, ok := content.CategoryByValue(value); ok {
		return c.Name
	}
	return value
}

func categoryIcon(value string) string {
	if c, ok := content.CategoryByValue(value); ok {
		return c.Icon
	}
	return "globe"
}
