package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// SecretHeader carries the shared secret on webhook deliveries.
const SecretHeader = "X-Revalidate-Secret"

// WebhookSink POSTs {"path": ...} to an on-demand revalidation endpoint of the
// frontend. Any non-2xx response is a failure.
type WebhookSink struct {
	url    string
	secret string
	client *http.Client
}

func NewWebhookSink(url, secret string, client *http.Client) *WebhookSink {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookSink{url: url, secret: secret, client: client}
}

type webhookRequest struct {
	Path string `json:"path"`
}

func (s *WebhookSink) InvalidatePath(ctx context.Context, path string) error {
	body, err := json.Marshal(webhookRequest{Path: path})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build revalidate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.secret != "" {
		req.Header.Set(SecretHeader, s.secret)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("revalidate request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("revalidate request: unexpected status %d", resp.StatusCode)
	}
	return nil
}
