package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"match-tracker-service/internal/domain"
)

const defaultTelegramBaseURL = "https://api.telegram.org"

// TelegramConfig controls how the Telegram publisher reaches the Bot API.
type TelegramConfig struct {
	BaseURL    string
	Token      string
	ChatID     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// TelegramPublisher delivers tracking output via the Telegram Bot API.
// Messages are plain text, one fixture per line; richer rendering belongs to
// a formatting layer this service does not own.
type TelegramPublisher struct {
	baseURL    string
	token      string
	chatID     string
	httpClient *http.Client
}

// NewTelegramPublisher constructs a Telegram publisher.
func NewTelegramPublisher(cfg TelegramConfig) *TelegramPublisher {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTelegramBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &TelegramPublisher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.Token,
		chatID:     cfg.ChatID,
		httpClient: httpClient,
	}
}

func (p *TelegramPublisher) PublishDiscovered(ctx context.Context, fixtures []domain.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("Today's matches:\n")
	for _, f := range fixtures {
		fmt.Fprintf(&b, "%s vs %s at %s local / %s UTC (%s)\n", f.Home, f.Away, f.LocalTime, f.UTCTime, f.League)
	}
	return p.sendMessage(ctx, b.String())
}

func (p *TelegramPublisher) PublishResults(ctx context.Context, fixtures []domain.Fixture) error {
	if len(fixtures) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("Full time:\n")
	for _, f := range fixtures {
		fmt.Fprintf(&b, "%s %d - %d %s (%s)\n", f.Home, f.Score.Home, f.Score.Away, f.Away, f.League)
	}
	return p.sendMessage(ctx, b.String())
}

func (p *TelegramPublisher) PublishHeartbeat(ctx context.Context) error {
	return p.sendMessage(ctx, "still watching the scoreboard")
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (p *TelegramPublisher) sendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(sendMessageRequest{ChatID: p.chatID, Text: strings.TrimSpace(text)})
	if err != nil {
		return fmt.Errorf("telegram: marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", p.baseURL, p.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("telegram: unexpected status %d", resp.StatusCode)
	}
	return nil
}
