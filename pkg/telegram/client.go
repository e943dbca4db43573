package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the Telegram Bot API. The bot token is supplied per call
// because it lives in the notification config collection, not in the
// environment, and operators can rotate it at runtime.
type Client struct {
	APIBase    string
	httpClient *http.Client
}

func NewClient(apiBase string) *Client {
	return &Client{
		APIBase:    apiBase,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage delivers one text message to a single chat.
func (c *Client) SendMessage(ctx context.Context, botToken, chatID, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", c.APIBase, botToken)

	body, _ := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result sendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("telegram API rejected message: %s", result.Description)
	}
	return nil
}
