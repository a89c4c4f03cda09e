package handlers

import (
	"net/http"
	"strings"

	domainplayers "github.com/preston-bernstein/nfl-data-service/internal/domain/players"
)

// Players lists reconciled players, narrowed by ?position= or ?team=.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()
	var (
		items []domainplayers.UnifiedPlayer
		err   error
	)
	switch {
	case q.Get("position") != "":
		items, err = h.svc.Players.ByPosition(r.Context(), strings.TrimSpace(q.Get("position")))
	case q.Get("team") != "":
		items, err = h.svc.Players.ByTeam(r.Context(), strings.TrimSpace(q.Get("team")))
	default:
		items, err = h.svc.Players.Players(r.Context())
	}
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.logger)
}

// PlayerByName returns one reconciled player.
func (h *Handler) PlayerByName(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	player, ok, err := h.svc.Players.ByName(r.Context(), r.PathValue("name"))
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, player, h.logger)
}

// PlayerStats summarizes reconciled players.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	summary, err := h.svc.Players.Stats(r.Context())
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeSummary(w, r, summary, h.logger)
}
