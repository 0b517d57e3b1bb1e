package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"match-tracker-service/internal/domain"
	"match-tracker-service/internal/logging"
	"match-tracker-service/internal/providers"
)

// Config controls how the ESPN client reaches the scoreboard feed.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Location   *time.Location
	Logger     *slog.Logger
}

// Client fetches a competition scoreboard from the ESPN site API and maps it
// to domain fixtures.
type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	logger     *slog.Logger
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		loc:        loc,
		logger:     cfg.Logger,
	}
}

// FetchFixtures retrieves one day's scoreboard for the given competition
// code. date is an optional YYYYMMDD string; empty means the upstream
// default (today).
func (c *Client) FetchFixtures(ctx context.Context, leagueCode, date string) ([]domain.Fixture, error) {
	req, err := c.buildRequest(ctx, leagueCode, date)
	if err != nil {
		return nil, fmt.Errorf("espn: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.TransportError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &providers.TransportError{Provider: providerName, StatusCode: resp.StatusCode}
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("espn: decode scoreboard: %w", err)
	}

	fixtures := mapScoreboard(payload, leagueCode, c.loc, c.logger)
	logging.Info(c.logger, "scoreboard fetched",
		logging.FieldProvider, providerName,
		logging.FieldLeague, leagueCode,
		logging.FieldDate, date,
		logging.FieldCount, len(fixtures),
	)
	return fixtures, nil
}

func (c *Client) buildRequest(ctx context.Context, leagueCode, date string) (*http.Request, error) {
	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, leagueCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if date != "" {
		q := req.URL.Query()
		q.Set("dates", date)
		req.URL.RawQuery = q.Encode()
	}

	return req, nil
}
