package relay

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"siteprisme.fr/internal/models"
)

// Subject returns the notification subject for a submission.
func Subject(req models.ContactRequest) string {
	return fmt.Sprintf("Nouveau message de %s via le formulaire", strings.TrimSpace(req.Nom))
}

// MessageHTML renders the notification body. Every value is escaped;
// description newlines become <br> elements.
func MessageHTML(req models.ContactRequest) (string, error) {
	entreprise := strings.TrimSpace(req.Entreprise)
	if entreprise == "" {
		entreprise = "-"
	}

	body := g.Group{
		h.H2(g.Text("Nouveau message du formulaire de contact")),
		line("Nom", req.Nom),
		line("Email", req.Email),
		line("Téléphone", req.Telephone),
		line("Entreprise", entreprise),
		line("Type de projet", req.TypeProjet),
		h.P(h.B(g.Text("Description :")), h.Br(), g.Group(multiline(req.Description))),
	}

	var sb strings.Builder
	if err := body.Render(&sb); err != nil {
		return "", fmt.Errorf("render message: %w", err)
	}
	return sb.String(), nil
}

func line(label, value string) g.Node {
	return h.P(h.B(g.Text(label+" :")), g.Text(" "+value))
}

func multiline(s string) []g.Node {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	nodes := make([]g.Node, 0, len(lines)*2)
	for i, l := range lines {
		if i > 0 {
			nodes = append(nodes, h.Br())
		}
		nodes = append(nodes, g.Text(l))
	}
	return nodes
}
