package services

import (
	"errors"

	"siteprisme.fr/internal/models"
)

var (
	toastSent = models.Toast{
		Kind:        models.ToastSuccess,
		Title:       "Message envoyé !",
		Description: "Nous vous recontacterons dans les plus brefs délais.",
	}
	toastInvalid = models.Toast{
		Kind:        models.ToastError,
		Title:       "Erreur de validation",
		Description: "Veuillez corriger les erreurs dans le formulaire.",
	}
	toastFailed = models.Toast{
		Kind:        models.ToastError,
		Title:       "Erreur d'envoi",
		Description: "Une erreur est survenue. Veuillez réessayer.",
	}
)

// ToastFor maps the result of Submit to the notification shown to the visitor.
func ToastFor(err error) models.Toast {
	if err == nil {
		return toastSent
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return toastInvalid
	}
	return toastFailed
}

// FormState is what the contact form shows after a submission: the values to
// keep, the inline errors and the toast.
type FormState struct {
	Values models.ContactRequest
	Errors models.FieldErrors
	Toast  *models.Toast
}

// NewFormState builds the form state after Submit returned err. A successful
// submission resets every field to the empty string.
func NewFormState(req models.ContactRequest, err error) FormState {
	toast := ToastFor(err)
	state := FormState{Values: req, Toast: &toast}
	if err == nil {
		state.Values = models.ContactRequest{}
		return state
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		state.Errors = verr.Fields
	}
	return state
}
