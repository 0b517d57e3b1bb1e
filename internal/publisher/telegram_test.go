package publisher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"match-tracker-service/internal/domain"
)

func telegramTestServer(t *testing.T, status int, captured *[]sendMessageRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/bottest-token/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		*captured = append(*captured, req)
		w.WriteHeader(status)
	}))
}

func TestPublishResultsSendsOneMessage(t *testing.T) {
	var captured []sendMessageRequest
	srv := telegramTestServer(t, http.StatusOK, &captured)
	defer srv.Close()

	p := NewTelegramPublisher(TelegramConfig{
		BaseURL: srv.URL,
		Token:   "test-token",
		ChatID:  "-100123",
	})

	fixtures := []domain.Fixture{
		{Home: "Arsenal", Away: "Wolves", League: "English Premier League", Score: domain.Score{Home: 2, Away: 1}},
		{Home: "Fulham", Away: "Everton", League: "English Premier League", Score: domain.Score{Home: 0, Away: 0}},
	}
	if err := p.PublishResults(context.Background(), fixtures); err != nil {
		t.Fatalf("expected publish to succeed, got %v", err)
	}

	if len(captured) != 1 {
		t.Fatalf("expected one sendMessage call, got %d", len(captured))
	}
	if captured[0].ChatID != "-100123" {
		t.Fatalf("unexpected chat id %s", captured[0].ChatID)
	}
	if !strings.Contains(captured[0].Text, "Arsenal 2 - 1 Wolves") {
		t.Fatalf("unexpected message text %q", captured[0].Text)
	}
}

func TestPublishDiscoveredSkipsEmptyBatch(t *testing.T) {
	var captured []sendMessageRequest
	srv := telegramTestServer(t, http.StatusOK, &captured)
	defer srv.Close()

	p := NewTelegramPublisher(TelegramConfig{BaseURL: srv.URL, Token: "test-token", ChatID: "1"})
	if err := p.PublishDiscovered(context.Background(), nil); err != nil {
		t.Fatalf("expected nil error for empty batch, got %v", err)
	}
	if len(captured) != 0 {
		t.Fatalf("expected no calls for empty batch, got %d", len(captured))
	}
}

func TestPublishHeartbeat(t *testing.T) {
	var captured []sendMessageRequest
	srv := telegramTestServer(t, http.StatusOK, &captured)
	defer srv.Close()

	p := NewTelegramPublisher(TelegramConfig{BaseURL: srv.URL, Token: "test-token", ChatID: "1"})
	if err := p.PublishHeartbeat(context.Background()); err != nil {
		t.Fatalf("expected heartbeat to succeed, got %v", err)
	}
	if len(captured) != 1 {
		t.Fatalf("expected one call, got %d", len(captured))
	}
}

func TestPublishErrorsOnNonOKStatus(t *testing.T) {
	var captured []sendMessageRequest
	srv := telegramTestServer(t, http.StatusForbidden, &captured)
	defer srv.Close()

	p := NewTelegramPublisher(TelegramConfig{BaseURL: srv.URL, Token: "test-token", ChatID: "1"})
	err := p.PublishResults(context.Background(), []domain.Fixture{{Home: "A", Away: "B"}})
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
}
