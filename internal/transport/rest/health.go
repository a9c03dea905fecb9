package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and health probes. Readiness
// depends on the catalog cache store being reachable.
type HealthHandler struct {
	cache   pinger
	backend string
	version string
}

// NewHealthHandler creates a HealthHandler. backend names the cache store in
// the health report.
func NewHealthHandler(cache pinger, backend, version string) *HealthHandler {
	return &HealthHandler{cache: cache, backend: backend, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live always reports ok.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready reports 503 while the cache store is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.probe(r.Context())
	writeJSON(w, statusOf(comp), HealthResponse{Status: comp.Status, Timestamp: time.Now()})
}

// Health is Ready plus version and per-component detail.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.probe(r.Context())
	writeJSON(w, statusOf(comp), HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"cache": comp},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.cache.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Backend: h.backend}
	}
	return CompStatus{Status: "ok", Backend: h.backend, Latency: time.Since(start).String()}
}

func statusOf(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
