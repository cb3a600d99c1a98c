package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/services"
)

// ContactHandler accepts contact form submissions
type ContactHandler struct {
	contact *services.ContactService
	pages   *PageHandler
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, pages *PageHandler) *ContactHandler {
	return &ContactHandler{contact: cs, pages: pages}
}

// SubmitForm handles POST /contact, the browser form post. The page is
// rendered again with the toast and, unless the message went out, the
// visitor's values and inline errors.
func (h *ContactHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	req := models.ContactRequest{
		Nom:         r.PostFormValue(models.FieldNom),
		Email:       r.PostFormValue(models.FieldEmail),
		Telephone:   r.PostFormValue(models.FieldTelephone),
		Entreprise:  r.PostFormValue(models.FieldEntreprise),
		TypeProjet:  r.PostFormValue(models.FieldTypeProjet),
		Description: r.PostFormValue(models.FieldDescription),
	}

	_, err := h.contact.Submit(r.Context(), req, meta(r, services.SourceForm))
	h.pages.render(w, r, submitStatus(err), services.NewFormState(req, err))
}

// SubmitJSON handles POST /api/contact
func (h *ContactHandler) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	receipt, err := h.contact.Submit(r.Context(), req, meta(r, services.SourceAPI))
	toast := services.ToastFor(err)

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": verr.Fields,
			"toast":  toast,
		})
	case err != nil:
		respondJSON(w, http.StatusBadGateway, map[string]any{
			"error": toast.Description,
			"toast": toast,
		})
	default:
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"id":      receipt.ID,
			"toast":   toast,
		})
	}
}

func submitStatus(err error) int {
	var verr *services.ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func meta(r *http.Request, source string) services.Meta {
	return services.Meta{
		Source:     source,
		RemoteAddr: clientIP(r),
		UserAgent:  r.UserAgent(),
	}
}
