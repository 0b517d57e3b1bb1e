package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"

	"match-tracker-service/internal/domain"
	"match-tracker-service/internal/scheduler"
	"match-tracker-service/internal/store"
)

// StatusReporter exposes the health of the scheduled cycles.
type StatusReporter interface {
	Status() scheduler.Status
}

// Handler wires HTTP routes to the tracking engine's state.
type Handler struct {
	reporter StatusReporter
	store    store.TrackedStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(reporter StatusReporter, trackedStore store.TrackedStore, logger *slog.Logger) *Handler {
	return &Handler{
		reporter: reporter,
		store:    trackedStore,
		logger:   logger,
		now:      time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness based on recent cycle outcomes.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.reporter == nil || !h.reporter.Status().IsReady() {
		h.writeError(w, nethttp.StatusServiceUnavailable, "not ready")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

type statusResponse struct {
	Time                string `json:"time"`
	TrackedFixtures     int    `json:"tracked_fixtures"`
	ConsecutiveFailures int    `json:"consecutive_failures"`
	LastError           string `json:"last_error,omitempty"`
	LastAttempt         string `json:"last_attempt,omitempty"`
	LastSuccess         string `json:"last_success,omitempty"`
}

// Status returns the scheduler health and the tracked-fixture count.
func (h *Handler) Status(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := statusResponse{Time: h.now().UTC().Format(time.RFC3339)}

	if h.reporter != nil {
		st := h.reporter.Status()
		resp.ConsecutiveFailures = st.ConsecutiveFailures
		resp.LastError = st.LastError
		if !st.LastAttempt.IsZero() {
			resp.LastAttempt = st.LastAttempt.UTC().Format(time.RFC3339)
		}
		if !st.LastSuccess.IsZero() {
			resp.LastSuccess = st.LastSuccess.UTC().Format(time.RFC3339)
		}
	}

	if h.store != nil {
		records, err := h.store.List(r.Context())
		if err != nil {
			h.writeError(w, nethttp.StatusInternalServerError, "failed to read tracked fixtures")
			return
		}
		resp.TrackedFixtures = len(records)
	}

	h.writeJSON(w, nethttp.StatusOK, resp)
}

type trackedResponse struct {
	Count    int                     `json:"count"`
	Fixtures []domain.TrackedFixture `json:"fixtures"`
}

// Tracked lists the fixtures currently awaiting resolution.
func (h *Handler) Tracked(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.store == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "store not configured")
		return
	}
	records, err := h.store.List(r.Context())
	if err != nil {
		h.writeError(w, nethttp.StatusInternalServerError, "failed to read tracked fixtures")
		return
	}
	if records == nil {
		records = []domain.TrackedFixture{}
	}
	h.writeJSON(w, nethttp.StatusOK, trackedResponse{Count: len(records), Fixtures: records})
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
