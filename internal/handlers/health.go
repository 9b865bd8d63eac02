package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/atlasbanco/website/internal/logger"
	"github.com/atlasbanco/website/internal/version"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp string        `json:"timestamp"`
	Uptime    string        `json:"uptime"`
	Build     version.Build `json:"build"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Build:     version.Current(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error("health response failed", logger.Error(err))
	}
}
