package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/preston-bernstein/nfl-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/nfl-data-service/internal/logging"
)

// Reloader replaces one source's cached records with a fresh fetch.
type Reloader interface {
	Reload(ctx context.Context) (int, error)
}

// AdminHandler exposes admin-only endpoints (cache refresh).
type AdminHandler struct {
	sources map[string]Reloader
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler over the named sources.
func NewAdminHandler(sources map[string]Reloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		sources: sources,
		token:   token,
		logger:  logger,
	}
}

// RefreshCache refetches ?source= (or every source when omitted or "all") and
// rewrites its cache entry. Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	names, ok := h.selectSources(strings.TrimSpace(r.URL.Query().Get("source")))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown source", logger)
		return
	}

	refreshed := make(map[string]int, len(names))
	for _, name := range names {
		count, err := h.sources[name].Reload(r.Context())
		if err != nil {
			logging.Warn(logger, "admin cache refresh failed",
				slog.String(logging.FieldSource, name),
				slog.Any("error", err),
			)
			writeSourceError(w, r, err, logger)
			return
		}
		refreshed[name] = count
		logging.Info(logger, "admin cache refreshed",
			slog.String(logging.FieldSource, name),
			slog.Int(logging.FieldCount, count),
		)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"refreshed": refreshed,
	}, logger)
}

func (h *AdminHandler) selectSources(requested string) ([]string, bool) {
	if requested == "" || strings.EqualFold(requested, "all") {
		names := make([]string, 0, len(h.sources))
		for name := range h.sources {
			names = append(names, name)
		}
		sort.Strings(names)
		return names, true
	}
	name := strings.ToLower(requested)
	if _, ok := h.sources[name]; !ok {
		return nil, false
	}
	return []string{name}, true
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
