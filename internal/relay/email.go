package relay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resend/resend-go/v2"

	"siteprisme.fr/internal/models"
)

// EmailConfig holds the sender identity and recipient of notifications.
type EmailConfig struct {
	APIKey  string
	From    string
	To      string
	BaseURL string // optional API base, empty for the provider default
}

// Email sends submissions through the Resend API.
type Email struct {
	client *resend.Client
	from   string
	to     string
}

// NewEmail creates the email channel.
func NewEmail(cfg EmailConfig, httpClient *http.Client) (*Email, error) {
	if httpClient == nil {
		httpClient = NewHTTPClient(0, false)
	}
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("email: invalid base url: %w", err)
		}
		client.BaseURL = u
	}
	return &Email{client: client, from: cfg.From, to: cfg.To}, nil
}

// Name implements Channel.
func (e *Email) Name() string { return ChannelEmail }

// Deliver sends the HTML notification and returns the provider message id.
func (e *Email) Deliver(ctx context.Context, sub models.Submission) (string, error) {
	html, err := MessageHTML(sub.Request)
	if err != nil {
		return "", fmt.Errorf("email: %w", err)
	}

	sent, err := e.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    e.from,
		To:      []string{e.to},
		Subject: Subject(sub.Request),
		Html:    html,
		ReplyTo: sub.Request.Email,
	})
	if err != nil {
		return "", fmt.Errorf("email: %w", err)
	}
	return sent.Id, nil
}
