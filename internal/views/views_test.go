package views

import (
	"html"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/services"
)

func render(t *testing.T, d PageData) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Render(&sb, d))
	return sb.String()
}

func pageData(t *testing.T, category, stack string) PageData {
	t.Helper()
	list, err := content.LoadPortfolio("")
	require.NoError(t, err)
	ps := services.NewProjectService(list)
	sel := ps.Select(category, stack)
	testimonials := ps.Testimonials()
	return PageData{
		SiteName:         "SitePrisme",
		Year:             2026,
		Selection:        sel,
		Categories:       ps.Categories(),
		Projects:         ps.Filter(sel),
		Testimonials:     testimonials,
		Carousel:         services.NewCarousel(len(testimonials), 0),
		CarouselInterval: 5 * time.Second,
	}
}

func TestPage_SectionOrder(t *testing.T) {
	out := render(t, pageData(t, "", ""))

	ids := []string{`id="navbar"`, `id="home"`, `id="expertises"`, `id="processus"`,
		`id="portfolio"`, `id="temoignages"`, `id="contact"`, `<footer class="footer"`}
	last := -1
	for _, id := range ids {
		i := strings.Index(out, id)
		require.NotEqual(t, -1, i, "missing %s", id)
		assert.Greater(t, i, last, "%s out of order", id)
		last = i
	}
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, `lang="fr"`)
}

func TestPortfolio_DefaultSelection(t *testing.T) {
	out := render(t, pageData(t, "", ""))

	assert.Contains(t, out, `aria-selected="true"`)
	assert.Contains(t, out, `data-project="burger-factory"`)
	assert.NotContains(t, out, `data-project="le-cellier-gourmand"`)
	assert.NotContains(t, out, `class="stack-toggle"`, "toggle only for e-commerce")
}

func TestPortfolio_ECommerceStack(t *testing.T) {
	out := render(t, pageData(t, "E-commerce", ""))
	assert.Contains(t, out, `class="stack-toggle"`)
	assert.Contains(t, out, `data-project="maison-alsace"`)
	assert.NotContains(t, out, `data-project="atelier-textile"`)

	out = render(t, pageData(t, "E-commerce", "wordpress"))
	assert.Contains(t, out, `data-project="atelier-textile"`)
	assert.NotContains(t, out, `data-project="maison-alsace"`)
	assert.Contains(t, out, `href="/?categorie=E-commerce&amp;projet=atelier-textile&amp;stack=wordpress#portfolio"`)
}

func TestPortfolio_UnknownCategory(t *testing.T) {
	out := render(t, pageData(t, "Boulangerie", ""))
	assert.Contains(t, out, "Aucun projet dans cette catégorie")
	assert.NotContains(t, out, `aria-selected="true"`)
}

func TestPortfolio_Modal(t *testing.T) {
	d := pageData(t, "Restaurant", "")
	d.Selected = &d.Projects[0]

	out := render(t, d)
	assert.Contains(t, out, `id="project-modal"`)
	assert.Contains(t, out, `class="modal-close" href="/?categorie=Restaurant#portfolio"`)
}

func TestTestimonials(t *testing.T) {
	d := pageData(t, "", "")
	n := len(d.Testimonials)
	require.Greater(t, n, 1)
	d.Carousel = services.NewCarousel(n, 0)

	out := render(t, d)
	assert.Contains(t, out, `data-interval="5000"`)
	assert.Contains(t, out, `class="slide active" data-slide="0"`)
	assert.Equal(t, n, strings.Count(out, `<figure class="slide`))
	assert.Contains(t, out, `class="carousel-prev" href="/?temoignage=`+strconv.Itoa(n-1)+`#temoignages"`)
	assert.Contains(t, out, `class="carousel-next" href="/?temoignage=1#temoignages"`)

	d.Testimonials = nil
	d.Carousel = services.NewCarousel(0, 0)
	assert.NotContains(t, render(t, d), `id="temoignages"`)
}

func TestContactForm_ErrorsAndValues(t *testing.T) {
	d := pageData(t, "", "")
	req := models.ContactRequest{Nom: "Jeanne", Email: "pas-un-email", TypeProjet: "refonte", Description: "court"}
	d.Form = services.NewFormState(req, &services.ValidationError{Fields: services.ValidateContact(req)})

	out := render(t, d)
	assert.Contains(t, out, `value="Jeanne"`)
	// apostrophes are escaped in the rendered HTML
	assert.Contains(t, out, html.EscapeString(services.MsgEmailInvalid))
	assert.Contains(t, out, html.EscapeString(services.MsgTelephoneRequired))
	assert.Contains(t, out, html.EscapeString(services.MsgDescriptionTooShort))
	assert.Contains(t, out, `<option value="refonte" selected>`)
	assert.Contains(t, out, "5/500")
	assert.Contains(t, out, "Erreur de validation")
	assert.Contains(t, out, `class="toast toast-error"`)
}

func TestContactForm_Success(t *testing.T) {
	d := pageData(t, "", "")
	d.Form = services.NewFormState(models.ContactRequest{Nom: "Jeanne"}, nil)

	out := render(t, d)
	assert.Contains(t, out, "Message envoyé !")
	assert.NotContains(t, out, `value="Jeanne"`)
	assert.Contains(t, out, "0/500")
}

func TestContactForm_EscapesValues(t *testing.T) {
	d := pageData(t, "", "")
	d.Form = services.FormState{Values: models.ContactRequest{Nom: `"><script>alert(1)</script>`}}

	out := render(t, d)
	assert.NotContains(t, out, "<script>alert(1)</script>")
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", stars(4))
	assert.Equal(t, "★★★★★", stars(9))
	assert.Equal(t, "☆☆☆☆☆", stars(-1))
}
