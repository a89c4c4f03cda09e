package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nfl-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil, in which
// case no admin routes are mounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)

	mux.HandleFunc("/injuries", handler.Injuries)
	mux.HandleFunc("/injuries/stats", handler.InjuryStats)
	mux.HandleFunc("/injuries/teams/{team}", handler.InjuriesByTeam)

	mux.HandleFunc("/ratings/madden", handler.MaddenRatings)
	mux.HandleFunc("/ratings/madden/stats", handler.MaddenStats)
	mux.HandleFunc("/ratings/madden/players/{name}", handler.MaddenPlayer)

	mux.HandleFunc("/ratings/pff", handler.PFFRatings)
	mux.HandleFunc("/ratings/pff/top", handler.PFFTop)
	mux.HandleFunc("/ratings/pff/range", handler.PFFRange)
	mux.HandleFunc("/ratings/pff/stats", handler.PFFStats)
	mux.HandleFunc("/ratings/pff/players/{name}", handler.PFFPlayer)

	mux.HandleFunc("/rankings/ol", handler.LineRankings)
	mux.HandleFunc("/rankings/ol/top", handler.LineRankingsTop)
	mux.HandleFunc("/rankings/ol/range", handler.LineRankingsRange)
	mux.HandleFunc("/rankings/ol/stats", handler.LineRankingStats)
	mux.HandleFunc("/rankings/ol/teams/{team}", handler.LineRankingByTeam)

	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/stats", handler.PlayerStats)
	mux.HandleFunc("/players/{name}", handler.PlayerByName)

	if admin != nil {
		mux.HandleFunc("/admin/cache/refresh", admin.RefreshCache)
	}
	return mux
}
