package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether the storage backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the health check endpoint
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health. It reports degraded with a 503 when the
// database does not answer within two seconds.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	WriteJSON(w, code, map[string]string{"status": status})
}
