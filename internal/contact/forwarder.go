package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Forwarder delivers accepted messages to a webhook, typically a team chat
// or CRM intake endpoint.
type Forwarder struct {
	url    string
	client *http.Client
}

// NewForwarder creates a Forwarder posting to url.
func NewForwarder(url string) *Forwarder {
	return &Forwarder{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Forward POSTs m as JSON to the webhook.
func (f *Forwarder) Forward(ctx context.Context, m *Message) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshalling contact message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
