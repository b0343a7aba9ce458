// Package whatsapp implements the outbound notification channel against a
// WhatsApp gateway HTTP API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// Client posts text messages to a WhatsApp gateway
type Client struct {
	apiURL     string
	token      string
	recipient  string
	httpClient *http.Client
}

// NewClientFromEnv builds a client from WHATSAPP_API_URL, WHATSAPP_API_TOKEN
// and WHATSAPP_RECIPIENT
func NewClientFromEnv() *Client {
	return &Client{
		apiURL:    os.Getenv("WHATSAPP_API_URL"),
		token:     os.Getenv("WHATSAPP_API_TOKEN"),
		recipient: os.Getenv("WHATSAPP_RECIPIENT"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendRequest struct {
	To   string `json:"to"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

// Notify sends a single text message. A non-2xx gateway response is a
// delivery failure.
func (c *Client) Notify(ctx context.Context, message string) error {
	if c.apiURL == "" {
		return fmt.Errorf("whatsapp gateway not configured")
	}

	payload := sendRequest{To: c.recipient, Type: "text"}
	payload.Text.Body = message

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	logger.Debug(ctx).
		Str("recipient", c.recipient).
		Msg("WhatsApp message delivered")
	return nil
}
