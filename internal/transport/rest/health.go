package rest

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probe endpoints. The database is the only hard
// dependency: the language model degrades to the template fallback and
// image generation to a 502, so both are reported but never fail a probe.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time

	llm    CompStatus
	images CompStatus
}

// NewHealthHandler creates a HealthHandler. llmProvider is the active chat
// backend name, or "fallback" when no credential is configured.
func NewHealthHandler(db dbPinger, version, llmProvider string, imageConfigured bool) *HealthHandler {
	images := CompStatus{Status: "ok"}
	if !imageConfigured {
		images = CompStatus{Status: "disabled", Detail: "credential not configured"}
	}
	return &HealthHandler{
		db:      db,
		version: version,
		started: time.Now(),
		llm:     CompStatus{Status: "ok", Detail: llmProvider},
		images:  images,
	}
}

// HealthResponse is the body of every probe endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 until the database accepts connections.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports every component along with version and uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.probeDB(r.Context())

	writeJSON(w, statusCode(db.Status), HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Uptime:  time.Since(h.started).Truncate(time.Second).String(),
		Components: map[string]CompStatus{
			"database": db,
			"llm":      h.llm,
			"images":   h.images,
		},
		Timestamp: time.Now(),
	})
}

func (h *HealthHandler) probeDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
