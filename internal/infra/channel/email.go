package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"careops/internal/pkg/config"
	"careops/internal/pkg/errs"
)

// EmailChannel delivers email through the tenant-wide mail relay, a small
// HTTP service fronting the actual provider.
type EmailChannel struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewEmailChannel(cfg config.ChannelsConfig) *EmailChannel {
	return &EmailChannel{
		baseURL: cfg.MailRelayURL,
		apiKey:  cfg.MailRelayAPIKey,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (c *EmailChannel) Send(ctx context.Context, target, subject, body string) error {
	if c.baseURL == "" {
		return errs.New("mail relay is not configured")
	}

	payload, err := json.Marshal(sendEmailRequest{To: target, Subject: subject, Body: body})
	if err != nil {
		return errs.Wrap(err, "failed to encode email request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/send", bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build email request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "mail relay request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("mail relay returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
