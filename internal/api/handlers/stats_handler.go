package handlers

import (
	"net/http"
	"time"

	"github.com/shaling-ai/data-insights/internal/core"
)

type StatsHandler struct {
	src core.DataSource
}

func NewStatsHandler(src core.DataSource) *StatsHandler {
	return &StatsHandler{src: src}
}

// GetStats returns the five dataset counts.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.src.Stats())
}

// Healthz reports liveness.
func (h *StatsHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "time": time.Now().UTC()})
}
