package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"siteprisme.fr/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// keep-alive connections of the shared transports are closed lazily
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func sampleSubmission() models.Submission {
	return models.Submission{
		ID: "sub-1",
		Request: models.ContactRequest{
			Nom:         "Jeanne Dupont",
			Email:       "jeanne@example.com",
			Telephone:   "06 12 34 56 78",
			TypeProjet:  "vitrine",
			Description: "Un site vitrine pour ma boulangerie.\nAvec une carte.",
		},
	}
}

func TestFormspree_Success(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	ch := NewFormspree(srv.URL, srv.Client())
	_, err := ch.Deliver(context.Background(), sampleSubmission())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"nom":         "Jeanne Dupont",
		"email":       "jeanne@example.com",
		"telephone":   "06 12 34 56 78",
		"entreprise":  "",
		"typeProjet":  "vitrine",
		"description": "Un site vitrine pour ma boulangerie.\nAvec une carte.",
	}, got)
}

func TestFormspree_NonSuccessStatus(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			_, _ = w.Write([]byte(`{"error":"nope"}`))
		}))

		_, err := NewFormspree(srv.URL, srv.Client()).Deliver(context.Background(), sampleSubmission())
		srv.Close()

		var se *StatusError
		require.True(t, errors.As(err, &se), "status %d", code)
		assert.Equal(t, code, se.Code)
		assert.Equal(t, ChannelFormspree, se.Channel)
		assert.Equal(t, `{"error":"nope"}`, se.Body)
	}
}

func TestFormspree_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the server only notices the client going away once the body is read
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewFormspree(srv.URL, srv.Client()).Deliver(ctx, sampleSubmission())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMessageHTML_EscapesAndBreaksLines(t *testing.T) {
	req := sampleSubmission().Request
	req.Nom = `<script>alert("x")</script>`

	out, err := MessageHTML(req)
	require.NoError(t, err)

	assert.Contains(t, out, "<h2>Nouveau message du formulaire de contact</h2>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<p><b>Entreprise :</b> -</p>")
	assert.Contains(t, out, "Un site vitrine pour ma boulangerie.<br>Avec une carte.")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Nouveau message de Jeanne Dupont via le formulaire", Subject(sampleSubmission().Request))
}

func TestEmail_Deliver(t *testing.T) {
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer srv.Close()

	ch, err := NewEmail(EmailConfig{
		APIKey:  "re_test",
		From:    "onboarding@resend.dev",
		To:      "owner@example.com",
		BaseURL: srv.URL + "/",
	}, srv.Client())
	require.NoError(t, err)

	id, err := ch.Deliver(context.Background(), sampleSubmission())
	require.NoError(t, err)
	assert.Equal(t, "email-123", id)

	assert.Equal(t, "onboarding@resend.dev", payload["from"])
	assert.Equal(t, []any{"owner@example.com"}, payload["to"])
	assert.Equal(t, "Nouveau message de Jeanne Dupont via le formulaire", payload["subject"])
	assert.Contains(t, payload["html"], "jeanne@example.com")
}

func TestEmail_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer srv.Close()

	ch, err := NewEmail(EmailConfig{APIKey: "re_test", From: "x", To: "y", BaseURL: srv.URL + "/"}, srv.Client())
	require.NoError(t, err)

	_, err = ch.Deliver(context.Background(), sampleSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email:")
}

func TestNewHTTPClient_Timeouts(t *testing.T) {
	c := NewHTTPClient(0, false)
	assert.Equal(t, defaultClientTimeout, c.Timeout)

	c = NewHTTPClient(2*time.Second, true)
	assert.Equal(t, 2*time.Second, c.Timeout)
	_, isPlain := c.Transport.(*http.Transport)
	assert.False(t, isPlain, "traced client wraps the transport")
}
