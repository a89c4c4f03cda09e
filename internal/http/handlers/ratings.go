package handlers

import (
	"net/http"
	"strings"

	"github.com/preston-bernstein/nfl-data-service/internal/app/pff"
	"github.com/preston-bernstein/nfl-data-service/internal/domain/ratings"
)

// MaddenRatings lists Madden ratings, narrowed by one of ?position=, ?team= or ?source=.
func (h *Handler) MaddenRatings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()
	var (
		items []ratings.MaddenRating
		err   error
	)
	switch {
	case q.Get("position") != "":
		items, err = h.svc.Madden.ByPosition(r.Context(), strings.TrimSpace(q.Get("position")))
	case q.Get("team") != "":
		items, err = h.svc.Madden.ByTeam(r.Context(), strings.TrimSpace(q.Get("team")))
	case q.Get("source") != "":
		items, err = h.svc.Madden.BySource(r.Context(), strings.TrimSpace(q.Get("source")))
	default:
		items, err = h.svc.Madden.Ratings(r.Context())
	}
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.logger)
}

// MaddenPlayer returns one player's Madden rating.
func (h *Handler) MaddenPlayer(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rating, ok, err := h.svc.Madden.ByName(r.Context(), r.PathValue("name"))
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, rating, h.logger)
}

// MaddenStats summarizes Madden ratings.
func (h *Handler) MaddenStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	summary, err := h.svc.Madden.Stats(r.Context())
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeSummary(w, r, summary, h.logger)
}

// PFFRatings lists PFF rows, narrowed by ?position= or ?team=.
func (h *Handler) PFFRatings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()
	var (
		items []ratings.PFFRating
		err   error
	)
	switch {
	case q.Get("position") != "":
		items, err = h.svc.PFF.ByPosition(r.Context(), strings.TrimSpace(q.Get("position")))
	case q.Get("team") != "":
		items, err = h.svc.PFF.ByTeam(r.Context(), strings.TrimSpace(q.Get("team")))
	default:
		items, err = h.svc.PFF.Ratings(r.Context())
	}
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.logger)
}

// PFFTop returns the best ranked rows at ?position=, limited by ?n=.
func (h *Handler) PFFTop(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	position := strings.TrimSpace(r.URL.Query().Get("position"))
	if position == "" {
		writeError(w, r, http.StatusBadRequest, "position is required", h.logger)
		return
	}
	n, err := queryInt(r, "n", pff.DefaultTopN)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	items, err := h.svc.PFF.TopByPosition(r.Context(), position, n)
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.logger)
}

// PFFRange returns rows with overall rank in [?min=, ?max=].
func (h *Handler) PFFRange(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	min, max, err := queryRange(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	items, err := h.svc.PFF.ByRankRange(r.Context(), min, max)
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items, h.logger)
}

// PFFPlayer returns one player's PFF row.
func (h *Handler) PFFPlayer(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	rating, ok, err := h.svc.PFF.ByName(r.Context(), r.PathValue("name"))
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, rating, h.logger)
}

// PFFStats summarizes PFF rows.
func (h *Handler) PFFStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	summary, err := h.svc.PFF.Stats(r.Context())
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeSummary(w, r, summary, h.logger)
}
