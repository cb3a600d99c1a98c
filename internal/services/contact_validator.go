package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/models"
)

// MinDescriptionLength is counted in characters after trimming.
// MaxDescriptionLength only drives the form counter and maxlength; longer
// text is accepted.
const (
	MinDescriptionLength = 20
	MaxDescriptionLength = 500
)

// Field error messages.
const (
	MsgNomRequired         = "Le nom est requis"
	MsgEmailRequired       = "L'email est requis"
	MsgEmailInvalid        = "Format d'email invalide"
	MsgTelephoneRequired   = "Le téléphone est requis"
	MsgTypeProjetRequired  = "Le type de projet est requis"
	MsgTypeProjetUnknown   = "Type de projet inconnu"
	MsgDescriptionRequired = "La description du projet est requise"
	MsgDescriptionTooShort = "Veuillez détailler davantage votre projet (minimum 20 caractères)"
)

// notSpaceOrAt matches one character that is neither '@' nor whitespace in
// the ECMAScript sense, which covers NBSP, \v, the line separators and the
// BOM besides ASCII space.
const notSpaceOrAt = `[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// ValidationError carries the per-field messages of a rejected submission.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid contact request: " + strings.Join(keys, ", ")
}

// ValidateContact checks a contact request and returns the per-field errors,
// empty when the request can be sent.
func ValidateContact(req models.ContactRequest) models.FieldErrors {
	errs := models.FieldErrors{}

	if strings.TrimSpace(req.Nom) == "" {
		errs[models.FieldNom] = MsgNomRequired
	}

	if strings.TrimSpace(req.Email) == "" {
		errs[models.FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(req.Email) {
		errs[models.FieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(req.Telephone) == "" {
		errs[models.FieldTelephone] = MsgTelephoneRequired
	}

	if req.TypeProjet == "" {
		errs[models.FieldTypeProjet] = MsgTypeProjetRequired
	} else if !content.IsProjectType(req.TypeProjet) {
		errs[models.FieldTypeProjet] = MsgTypeProjetUnknown
	}

	desc := strings.TrimSpace(req.Description)
	switch n := utf8.RuneCountInString(desc); {
	case n == 0:
		errs[models.FieldDescription] = MsgDescriptionRequired
	case n < MinDescriptionLength:
		errs[models.FieldDescription] = MsgDescriptionTooShort
	}

	return errs
}

// MissingRequired lists the required fields that are empty, in form order.
// The email relay endpoint only checks presence, not format.
func MissingRequired(req models.ContactRequest) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{models.FieldNom, req.Nom},
		{models.FieldEmail, req.Email},
		{models.FieldTelephone, req.Telephone},
		{models.FieldTypeProjet, req.TypeProjet},
		{models.FieldDescription, req.Description},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
