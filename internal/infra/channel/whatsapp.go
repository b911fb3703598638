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

// WhatsAppChannel delivers messages through the WhatsApp bridge service.
// Subject is part of the MessagingChannel contract but WhatsApp has no
// subject line, so it is dropped.
type WhatsAppChannel struct {
	baseURL string
	client  *http.Client
}

func NewWhatsAppChannel(cfg config.ChannelsConfig) *WhatsAppChannel {
	return &WhatsAppChannel{
		baseURL: cfg.WhatsAppBridgeURL,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type sendWhatsAppRequest struct {
	Phone string `json:"phone"`
	Body  string `json:"body"`
}

func (c *WhatsAppChannel) Send(ctx context.Context, target, _ string, body string) error {
	if c.baseURL == "" {
		return errs.New("whatsapp bridge is not configured")
	}

	payload, err := json.Marshal(sendWhatsAppRequest{Phone: target, Body: body})
	if err != nil {
		return errs.Wrap(err, "failed to encode whatsapp request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build whatsapp request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "whatsapp bridge request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Newf("whatsapp bridge returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
