package handlers

import (
	"net/http"

	"github.com/preston-bernstein/nfl-data-service/internal/app/rankings"
)

// LineRankings lists every offensive line ranking.
func (h *Handler) LineRankings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	items, err := h.svc.Rankings.Rankings(r.Context())
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.logger)
}

// LineRankingsTop returns the first ?n= rankings.
func (h *Handler) LineRankingsTop(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	n, err := queryInt(r, "n", rankings.DefaultTopN)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	items, err := h.svc.Rankings.Top(r.Context(), n)
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.logger)
}

// LineRankingsRange returns rankings in [?min=, ?max=].
func (h *Handler) LineRankingsRange(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	min, max, err := queryRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	items, err := h.svc.Rankings.ByRankRange(r.Context(), min, max)
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.logger)
}

// LineRankingByTeam returns one team's ranking.
func (h *Handler) LineRankingByTeam(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	ranking, ok, err := h.svc.Rankings.ByTeam(r.Context(), r.PathValue("team"))
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ranking, h.logger)
}

// LineRankingStats reports the rank distribution and key detail summaries.
func (h *Handler) LineRankingStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	summary, err := h.svc.Rankings.Stats(r.Context())
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeSummary(w, r, summary, h.logger)
}
