package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"siteprisme.fr/internal/models"
)

func validRequest() models.ContactRequest {
	return models.ContactRequest{
		Nom:         "Jeanne Dupont",
		Email:       "user@example.com",
		Telephone:   "06 12 34 56 78",
		TypeProjet:  "vitrine",
		Description: "Un site vitrine pour ma boulangerie",
	}
}

func TestValidateContact_Valid(t *testing.T) {
	assert.Empty(t, ValidateContact(validRequest()))
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ContactRequest)
		want   models.FieldErrors
	}{
		{
			name:   "BlankNom",
			mutate: func(r *models.ContactRequest) { r.Nom = "   " },
			want:   models.FieldErrors{models.FieldNom: MsgNomRequired},
		},
		{
			name:   "EmptyEmail",
			mutate: func(r *models.ContactRequest) { r.Email = "" },
			want:   models.FieldErrors{models.FieldEmail: MsgEmailRequired},
		},
		{
			name:   "EmailWithoutTLD",
			mutate: func(r *models.ContactRequest) { r.Email = "user@example" },
			want:   models.FieldErrors{models.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "EmailWithoutAt",
			mutate: func(r *models.ContactRequest) { r.Email = "user.example.com" },
			want:   models.FieldErrors{models.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "EmailWithSpace",
			mutate: func(r *models.ContactRequest) { r.Email = "us er@example.com" },
			want:   models.FieldErrors{models.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "EmailWithNBSP",
			mutate: func(r *models.ContactRequest) { r.Email = "a\u00a0b@example.com" },
			want:   models.FieldErrors{models.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "EmailWithVerticalTab",
			mutate: func(r *models.ContactRequest) { r.Email = "a@exa\vmple.com" },
			want:   models.FieldErrors{models.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "EmailWithLineSeparator",
			mutate: func(r *models.ContactRequest) { r.Email = "a@example.c\u2028om" },
			want:   models.FieldErrors{models.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "EmailWithBOM",
			mutate: func(r *models.ContactRequest) { r.Email = "\ufeffa@example.com" },
			want:   models.FieldErrors{models.FieldEmail: MsgEmailInvalid},
		},
		{
			name:   "EmailAccentedLocalPart",
			mutate: func(r *models.ContactRequest) { r.Email = "élodie@example.fr" },
			want:   models.FieldErrors{},
		},
		{
			name:   "BlankTelephone",
			mutate: func(r *models.ContactRequest) { r.Telephone = "\t" },
			want:   models.FieldErrors{models.FieldTelephone: MsgTelephoneRequired},
		},
		{
			name:   "NoProjectType",
			mutate: func(r *models.ContactRequest) { r.TypeProjet = "" },
			want:   models.FieldErrors{models.FieldTypeProjet: MsgTypeProjetRequired},
		},
		{
			name:   "UnknownProjectType",
			mutate: func(r *models.ContactRequest) { r.TypeProjet = "jeu-video" },
			want:   models.FieldErrors{models.FieldTypeProjet: MsgTypeProjetUnknown},
		},
		{
			name:   "BlankDescription",
			mutate: func(r *models.ContactRequest) { r.Description = "  \n " },
			want:   models.FieldErrors{models.FieldDescription: MsgDescriptionRequired},
		},
		{
			name:   "Description19",
			mutate: func(r *models.ContactRequest) { r.Description = strings.Repeat("a", 19) },
			want:   models.FieldErrors{models.FieldDescription: MsgDescriptionTooShort},
		},
		{
			name:   "Description19PaddedWithSpaces",
			mutate: func(r *models.ContactRequest) { r.Description = "  " + strings.Repeat("a", 19) + "   " },
			want:   models.FieldErrors{models.FieldDescription: MsgDescriptionTooShort},
		},
		{
			name:   "Description20",
			mutate: func(r *models.ContactRequest) { r.Description = strings.Repeat("a", 20) },
			want:   models.FieldErrors{},
		},
		{
			name:   "Description20Accented",
			mutate: func(r *models.ContactRequest) { r.Description = strings.Repeat("é", 20) },
			want:   models.FieldErrors{},
		},
		{
			name:   "Description500",
			mutate: func(r *models.ContactRequest) { r.Description = strings.Repeat("a", 500) },
			want:   models.FieldErrors{},
		},
		{
			name:   "DescriptionLongerThanCounter",
			mutate: func(r *models.ContactRequest) { r.Description = strings.Repeat("x", 600) },
			want:   models.FieldErrors{},
		},
		{
			name:   "DescriptionWithCRLF",
			mutate: func(r *models.ContactRequest) { r.Description = strings.Repeat(strings.Repeat("x", 99)+"\r\n", 5) },
			want:   models.FieldErrors{},
		},
		{
			name:   "EntrepriseOptional",
			mutate: func(r *models.ContactRequest) { r.Entreprise = "" },
			want:   models.FieldErrors{},
		},
		{
			name: "EverythingBlank",
			mutate: func(r *models.ContactRequest) {
				*r = models.ContactRequest{}
			},
			want: models.FieldErrors{
				models.FieldNom:         MsgNomRequired,
				models.FieldEmail:       MsgEmailRequired,
				models.FieldTelephone:   MsgTelephoneRequired,
				models.FieldTypeProjet:  MsgTypeProjetRequired,
				models.FieldDescription: MsgDescriptionRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Equal(t, tt.want, ValidateContact(req))
		})
	}
}

func TestMissingRequired(t *testing.T) {
	assert.Empty(t, MissingRequired(validRequest()))

	req := validRequest()
	req.Email = ""
	req.Description = ""
	req.Entreprise = ""
	assert.Equal(t, []string{models.FieldEmail, models.FieldDescription}, MissingRequired(req))

	// presence only, no format checks
	req = validRequest()
	req.Email = "not-an-email"
	req.Description = "court"
	assert.Empty(t, MissingRequired(req))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: models.FieldErrors{
		models.FieldTelephone: MsgTelephoneRequired,
		models.FieldEmail:     MsgEmailInvalid,
	}}
	assert.Equal(t, "invalid contact request: email, telephone", err.Error())
}
