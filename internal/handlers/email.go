package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"siteprisme.fr/internal/log"
	"siteprisme.fr/internal/metrics"
	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/services"
)

// Error bodies of the email relay endpoint.
const (
	msgMethodNotAllowed = "Méthode non autorisée"
	msgMissingFields    = "Champs requis manquants"
	msgSendFailed       = "Erreur lors de l'envoi de l'email"
	msgEmailDisabled    = "Service d'envoi d'email non configuré"
)

// EmailHandler is the email relay endpoint used by external front ends
type EmailHandler struct {
	contact      *services.ContactService
	exposeErrors bool
}

// NewEmailHandler creates a new EmailHandler. With exposeErrors set, provider
// failures are returned to the caller as "details".
func NewEmailHandler(cs *services.ContactService, exposeErrors bool) *EmailHandler {
	return &EmailHandler{contact: cs, exposeErrors: exposeErrors}
}

// SendEmail handles every method on /api/send-email. Only field presence is
// checked before the message is handed to the email provider.
func (h *EmailHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		respondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		metrics.RecordSubmission(services.SourceSendEmail, metrics.OutcomeRejected)
		respondError(w, http.StatusBadRequest, msgMissingFields)
		return
	}
	if missing := services.MissingRequired(req); len(missing) > 0 {
		metrics.RecordSubmission(services.SourceSendEmail, metrics.OutcomeRejected)
		logger := log.WithComponentFromContext(r.Context(), "send-email")
		logger.Debug().
			Strs("missing", missing).
			Msg("rejected email relay request")
		respondError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	receipt, err := h.contact.SendEmail(r.Context(), req, meta(r, services.SourceSendEmail))
	if errors.Is(err, services.ErrEmailDisabled) {
		respondError(w, http.StatusServiceUnavailable, msgEmailDisabled)
		return
	}
	if err != nil {
		body := map[string]string{"error": msgSendFailed}
		if h.exposeErrors {
			body["details"] = err.Error()
		}
		respondJSON(w, http.StatusInternalServerError, body)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    map[string]string{"id": receipt.Reference},
	})
}
