package handlers

import (
	"net/http"
	"strings"
)

// Injuries returns the league report, or players with ?status= across all teams.
func (h *Handler) Injuries(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		entries, err := h.svc.Injuries.ByStatus(r.Context(), status)
		if err != nil {
			writeSourceError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, entries, h.logger)
		return
	}
	reports, err := h.svc.Injuries.Reports(r.Context())
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, reports, h.logger)
}

// InjuriesByTeam returns one team's report.
func (h *Handler) InjuriesByTeam(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	report, ok, err := h.svc.Injuries.ByTeam(r.Context(), r.PathValue("team"))
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

// InjuryStats summarizes the report by status, position and team.
func (h *Handler) InjuryStats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	summary, err := h.svc.Injuries.Stats(r.Context())
	if err != nil {
		writeSourceError(w, r, err, h.logger)
		return
	}
	writeSummary(w, r, summary, h.logger)
}
