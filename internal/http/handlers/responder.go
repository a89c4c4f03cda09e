package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nfl-data-service/internal/http/middleware"
	"github.com/preston-bernstein/nfl-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/nfl-data-service/internal/logging"
	"github.com/preston-bernstein/nfl-data-service/internal/providers"
	"github.com/preston-bernstein/nfl-data-service/internal/stats"
)

const msgNoData = "no data loaded"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeSourceError reports a failed upstream read as 502 without leaking the cause.
func writeSourceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	logger = loggerFromContext(r, logger)
	message := "upstream source unavailable"
	if fe, ok := providers.AsFetchError(err); ok && fe.Source != "" {
		message = fmt.Sprintf("%s source unavailable", fe.Source)
	}
	logging.Warn(logger, "source read failed", slog.Any("error", err))
	writeError(w, r, http.StatusBadGateway, message, logger)
}

// writeSummary renders a stats summary, or the no-data marker when nothing is loaded.
func writeSummary(w http.ResponseWriter, r *http.Request, summary stats.Summary, logger *slog.Logger) {
	if !summary.Loaded {
		writeJSON(w, http.StatusOK, map[string]string{"error": msgNoData}, logger)
		return
	}
	writeJSON(w, http.StatusOK, summary, logger)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

// queryInt reads an optional integer parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

// queryRange reads required min and max rank parameters.
func queryRange(r *http.Request) (float64, float64, error) {
	var bounds [2]float64
	for i, name := range []string{"min", "max"} {
		raw := strings.TrimSpace(r.URL.Query().Get(name))
		if raw == "" {
			return 0, 0, fmt.Errorf("%s is required", name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid %s", name)
		}
		bounds[i] = v
	}
	if bounds[0] > bounds[1] {
		return 0, 0, fmt.Errorf("min must not exceed max")
	}
	return bounds[0], bounds[1], nil
}
