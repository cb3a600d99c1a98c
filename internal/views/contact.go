package views

import (
	"strconv"
	"unicode/utf8"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/services"
)

// ContactSection is the contact form with its inline errors, the toast of
// the last submission and the follow-up steps.
func ContactSection(state services.FormState) g.Node {
	v := state.Values

	return Section(ID("contact"), Class("section"),
		Div(Class("container narrow"),
			sectionHeader("Discutons de votre projet",
				"Partagez-nous vos besoins et nous vous proposerons une solution sur mesure parfaitement adaptée à vos objectifs."),
			g.Iff(state.Toast != nil, func() g.Node { return toast(state.Toast) }),
			Form(Class("contact-form card"), Method("post"), Action("/contact#contact"), g.Attr("novalidate"),
				Div(Class("form-row"),
					textField(models.FieldNom, "Nom complet *", "text", v.Nom, "Votre nom et prénom", "name", state.Errors),
					textField(models.FieldEmail, "Email *", "email", v.Email, "votre@email.com", "email", state.Errors),
				),
				Div(Class("form-row"),
					textField(models.FieldTelephone, "Téléphone *", "tel", v.Telephone, "06 12 34 56 78", "tel", state.Errors),
					textField(models.FieldEntreprise, "Entreprise", "text", v.Entreprise, "Nom de votre entreprise", "organization", state.Errors),
				),
				projectTypeField(v.TypeProjet, state.Errors),
				descriptionField(v.Description, state.Errors),
				Div(Class("form-submit"),
					Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("Envoyer ma demande"), icon("send")),
					P(Class("hint"), g.Text("Nous vous recontacterons dans les 24h pour discuter de votre projet.")),
				),
			),
			Div(Class("grid grid-3 contact-steps"),
				g.Group(g.Map(content.ContactSteps, valueCard)),
			),
		),
	)
}

func toast(t *models.Toast) g.Node {
	return Div(Class("toast toast-"+t.Kind), g.Attr("role", "status"), g.Attr("aria-live", "polite"),
		Strong(g.Text(t.Title)),
		P(g.Text(t.Description)),
	)
}

func fieldClass(name string, errs models.FieldErrors) string {
	if _, bad := errs[name]; bad {
		return "field has-error"
	}
	return "field"
}

func fieldError(name string, errs models.FieldErrors) g.Node {
	msg, bad := errs[name]
	if !bad {
		return nil
	}
	return P(Class("field-error"), ID(name+"-error"), icon("alert-circle"), g.Text(msg))
}

func invalidAttrs(name string, errs models.FieldErrors) g.Node {
	if _, bad := errs[name]; !bad {
		return nil
	}
	return g.Group{g.Attr("aria-invalid", "true"), g.Attr("aria-describedby", name+"-error")}
}

func textField(name, label, typ, value, placeholder, autocomplete string, errs models.FieldErrors) g.Node {
	return Div(Class(fieldClass(name, errs)),
		Label(For(name), g.Text(label)),
		Input(ID(name), Name(name), Type(typ), Value(value), Placeholder(placeholder), AutoComplete(autocomplete),
			invalidAttrs(name, errs)),
		fieldError(name, errs),
	)
}

func projectTypeField(selected string, errs models.FieldErrors) g.Node {
	name := models.FieldTypeProjet
	return Div(Class(fieldClass(name, errs)),
		Label(For(name), g.Text("Type de projet *")),
		Select(ID(name), Name(name), invalidAttrs(name, errs),
			Option(Value(""), g.If(selected == "", Selected()), g.Text("Sélectionnez le type de projet")),
			g.Group(g.Map(content.ProjectTypes, func(pt models.ProjectType) g.Node {
				return Option(Value(pt.Value), g.If(pt.Value == selected, Selected()), g.Text(pt.Label))
			})),
		),
		fieldError(name, errs),
	)
}

func descriptionField(value string, errs models.FieldErrors) g.Node {
	name := models.FieldDescription
	return Div(Class(fieldClass(name, errs)),
		Label(For(name), g.Text("Description du projet *")),
		Textarea(ID(name), Name(name), Rows("5"),
			MaxLength(strconv.Itoa(services.MaxDescriptionLength)),
			Placeholder("Décrivez votre projet : objectifs, fonctionnalités souhaitées, cible, contraintes particulières..."),
			invalidAttrs(name, errs),
			g.Text(value),
		),
		Div(Class("field-footer"),
			g.If(errs[name] == "", P(Class("hint"), g.Textf("Minimum %d caractères", services.MinDescriptionLength))),
			fieldError(name, errs),
			Span(Class("counter"), g.Attr("data-counter-for", name),
				g.Textf("%d/%d", utf8.RuneCountInString(value), services.MaxDescriptionLength)),
		),
	)
}
