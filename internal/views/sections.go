package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/models"
)

// Navbar is the fixed top navigation. The active item follows the scroll
// position on the client.
func Navbar(d PageData) g.Node {
	return Nav(Class("navbar"), ID("navbar"),
		Div(Class("container navbar-inner"),
			A(Class("logo"), Href("#"), g.Text(d.SiteName)),
			Input(Type("checkbox"), ID("nav-toggle"), Class("nav-toggle")),
			Label(For("nav-toggle"), Class("nav-burger"), g.Attr("aria-label", "Menu"), icon("menu")),
			Ul(Class("nav-links"),
				g.Group(g.Map(content.Navigation, func(item models.NavItem) g.Node {
					return Li(A(
						Href(item.Href),
						g.Attr("data-section", item.ID),
						g.If(item.ID == "home", Class("active")),
						g.Text(item.Name),
					))
				})),
			),
		),
	)
}

// Hero is the opening banner.
func Hero() g.Node {
	return Section(ID("home"), Class("hero"),
		Div(Class("container hero-inner"),
			Span(Class("badge"), icon("check-circle"), g.Text("SitePrisme - Agence de développement web spécialisée")),
			H1(
				g.Text("Créons ensemble votre "),
				Span(Class("gradient-text"), g.Text("présence digitale")),
			),
			P(Class("lead"),
				g.Text("Nous développons des sites web professionnels et performants avec "),
				Strong(g.Text("React, Shopify et WordPress")),
				g.Text(", adaptés aux besoins spécifiques de votre entreprise."),
			),
			Ul(Class("hero-features"),
				g.Group(g.Map(content.HeroFeatures, func(f string) g.Node {
					return Li(icon("check-circle"), g.Text(f))
				})),
			),
			Div(Class("hero-actions"),
				A(Class("btn btn-primary"), Href("#portfolio"), g.Text("Voir nos réalisations"), icon("arrow-right")),
				A(Class("btn btn-outline"), Href("#contact"), g.Text("Discuter de votre projet")),
			),
		),
	)
}

// ExpertisesSection lists the service cards and the values.
func ExpertisesSection() g.Node {
	return Section(ID("expertises"), Class("section"),
		Div(Class("container"),
			sectionHeader("Nos Domaines d'Expertise",
				"Nous développons des solutions web spécialisées pour différents secteurs d'activité, avec une expertise technique adaptée à chaque domaine."),
			Div(Class("grid grid-2"),
				g.Group(g.Map(content.Expertises, expertiseCard)),
			),
			Div(Class("grid grid-3 values"),
				g.Group(g.Map(content.Values, valueCard)),
			),
			Div(Class("cta-card reveal"),
				H3(g.Text("Votre secteur ne figure pas dans la liste ?")),
				P(g.Text("Nous adaptons nos solutions à tous types d'activités. Parlons de vos besoins spécifiques.")),
				A(Class("btn btn-primary"), Href("#contact"), g.Text("Discuter de votre projet")),
			),
		),
	)
}

func expertiseCard(e models.Expertise) g.Node {
	return Article(Class("card expertise reveal"), ID("expertise-"+e.ID),
		Div(Class("card-head"),
			icon(e.Icon),
			Div(
				H3(g.Text(e.Title)),
				P(Class("subtitle"), g.Text(e.Subtitle)),
			),
		),
		P(g.Text(e.Description)),
		H4(g.Text("Fonctionnalités clés :")),
		tags(e.Features, "features"),
		H4(g.Text("Technologies utilisées :")),
		tags(e.Technologies, "tech-tags"),
	)
}

func valueCard(v models.Value) g.Node {
	return Div(Class("value reveal"),
		icon(v.Icon),
		H3(g.Text(v.Title)),
		P(g.Text(v.Description)),
	)
}

// ProcessSection is the four-step showcase.
func ProcessSection() g.Node {
	return Section(ID("processus"), Class("section section-alt"),
		Div(Class("container"),
			sectionHeader("Notre Processus de Développement",
				"Une méthodologie éprouvée pour transformer vos idées en solutions digitales performantes, en respectant vos délais et votre budget."),
			Ol(Class("steps"),
				g.Group(g.Map(content.Process, processStep)),
			),
			Div(Class("cta-card reveal"),
				H3(g.Text("Prêt à démarrer votre projet ?")),
				P(g.Text("Discutons de vos besoins et voyons comment notre processus peut s'adapter à vos objectifs spécifiques.")),
				Div(Class("cta-actions"),
					A(Class("btn btn-primary"), Href("#contact"), g.Text("Démarrer maintenant")),
					A(Class("btn btn-outline"), Href("#portfolio"), g.Text("Voir nos réalisations")),
				),
			),
		),
	)
}

func processStep(s models.ProcessStep) g.Node {
	return Li(Class("step reveal"),
		Span(Class("step-number"), g.Text(strconv.Itoa(s.Number))),
		Div(Class("step-body"),
			H3(icon(s.Icon), g.Text(s.Title)),
			P(g.Text(s.Description)),
			tags(s.Details, "step-details"),
		),
	)
}

// SiteFooter closes the page.
func SiteFooter(d PageData) g.Node {
	return Footer(Class("footer"),
		Div(Class("container footer-grid"),
			Div(Class("footer-brand"),
				H3(g.Text(d.SiteName)),
				P(g.Text("Nous créons des expériences digitales exceptionnelles qui transforment vos idées en solutions performantes et sur mesure.")),
				Ul(Class("footer-contact"),
					g.Group(g.Map(content.ContactChannels, func(ch models.ContactChannel) g.Node {
						return Li(icon(ch.Icon), A(Href(ch.Href), g.Text(ch.Text)))
					})),
				),
			),
			g.Group(g.Map(content.Footer, func(s models.FooterSection) g.Node {
				return Div(Class("footer-links"),
					H4(g.Text(s.Title)),
					Ul(g.Group(g.Map(s.Links, func(l models.FooterLink) g.Node {
						return Li(A(Href(l.Href), g.Text(l.Name)))
					}))),
				)
			})),
		),
		Div(Class("container footer-bottom"),
			P(g.Textf("© %d %s. Tous droits réservés.", d.Year, d.SiteName)),
			Ul(Class("socials"),
				g.Group(g.Map(content.Socials, func(l models.FooterLink) g.Node {
					return Li(A(Href(l.Href), g.Attr("aria-label", l.Name), icon(strings.ToLower(l.Name))))
				})),
			),
		),
	)
}
