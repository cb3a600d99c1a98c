package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"siteprisme.fr/internal/models"
)

// Formspree posts submissions to a hosted Formspree form.
type Formspree struct {
	endpoint string
	client   *http.Client
}

// NewFormspree creates a channel posting to endpoint.
func NewFormspree(endpoint string, client *http.Client) *Formspree {
	if client == nil {
		client = NewHTTPClient(0, false)
	}
	return &Formspree{endpoint: endpoint, client: client}
}

// Name implements Channel.
func (f *Formspree) Name() string { return ChannelFormspree }

// Deliver sends the six form fields as JSON. Any 2xx status is a success.
func (f *Formspree) Deliver(ctx context.Context, sub models.Submission) (string, error) {
	body, err := json.Marshal(sub.Request)
	if err != nil {
		return "", fmt.Errorf("formspree: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("formspree: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("formspree: %w", err)
	}
	defer resp.Body.Close()

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{
			Channel: ChannelFormspree,
			Code:    resp.StatusCode,
			Body:    strings.TrimSpace(string(snippet)),
		}
	}
	return "", nil
}
