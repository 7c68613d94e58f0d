package telegram

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lumiforge/mealsub-backend/internal/config"
)

const defaultAPIURL = "https://api.telegram.org"

// Client отправляет алерты в административный чат
type Client struct {
	token   string
	chatID  string
	service string
	apiURL  string
	client  *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		token:   cfg.TelegramBotToken,
		chatID:  cfg.TelegramAdminChatID,
		service: cfg.ServiceName,
		apiURL:  defaultAPIURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// IsConfigured проверяет, заданы ли токен бота и чат
func (c *Client) IsConfigured() bool {
	return c.token != "" && c.chatID != ""
}

func (c *Client) SendAlert(msg string) error {
	if !c.IsConfigured() {
		return nil
	}
	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.token)
	text := "🚨 ERROR: " + msg
	if c.service != "" {
		text = fmt.Sprintf("🚨 [%s] ERROR: %s", c.service, msg)
	}

	vals := url.Values{}
	vals.Set("chat_id", c.chatID)
	vals.Set("text", text)

	resp, err := c.client.PostForm(apiURL, vals)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram api returned status %d", resp.StatusCode)
	}
	return nil
}
