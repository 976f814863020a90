package http

import (
	"log/slog"
	"net/http"
)

// PingHandler answers liveness probes.
type PingHandler struct {
	responder responder
}

// NewPingHandler creates the ping handler.
func NewPingHandler(logger *slog.Logger) *PingHandler {
	return &PingHandler{responder: newResponder(logger)}
}

// Ping responds with a static liveness payload.
func (h *PingHandler) Ping(w http.ResponseWriter, r *http.Request) {
	h.responder.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "UP"})
}
