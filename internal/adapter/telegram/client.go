package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Notifier delivers a text message to the owner chat. Delivery is advisory:
// the order is already durable when a notification is attempted.
type Notifier interface {
	SendText(ctx context.Context, text string) error
}

// Client implements Notifier via the bot sendMessage endpoint.
type Client struct {
	baseURL    *url.URL
	token      string
	chatID     string
	httpClient *http.Client
	logger     *slog.Logger
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// NewClient creates a bot API client with default timeout.
func NewClient(baseURL, token, chatID string, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse bot api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("bot api url must be absolute")
	}
	return &Client{
		baseURL: parsed,
		token:   token,
		chatID:  chatID,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SendText posts a message to the configured chat.
func (c *Client) SendText(ctx context.Context, text string) error {
	endpoint := *c.baseURL
	endpoint.Path = fmt.Sprintf("/bot%s/sendMessage", c.token)

	payload, err := json.Marshal(sendMessageRequest{ChatID: c.chatID, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("notification request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("bot api error: %s", resp.Status)
	}

	return nil
}
