package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nfl-data-service/internal/app/injuries"
	"github.com/preston-bernstein/nfl-data-service/internal/app/madden"
	"github.com/preston-bernstein/nfl-data-service/internal/app/pff"
	"github.com/preston-bernstein/nfl-data-service/internal/app/players"
	"github.com/preston-bernstein/nfl-data-service/internal/app/rankings"
)

// Services bundles the query services exposed over HTTP.
type Services struct {
	Injuries *injuries.Service
	Madden   *madden.Service
	PFF      *pff.Service
	Rankings *rankings.Service
	Players  *players.Service
}

// ReadyFunc reports whether backing storage can serve requests.
type ReadyFunc func(ctx context.Context) error

// Handler wires HTTP routes to the query services.
type Handler struct {
	svc     Services
	logger  *slog.Logger
	readyFn ReadyFunc
}

// NewHandler constructs a Handler. readyFn may be nil.
func NewHandler(svc Services, logger *slog.Logger, readyFn ReadyFunc) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		readyFn: readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.readyFn != nil {
		if err := h.readyFn(r.Context()); err != nil {
			loggerFromContext(r, h.logger).Warn("readiness check failed", "error", err)
			writeError(w, r, http.StatusServiceUnavailable, "cache backend unavailable", h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
