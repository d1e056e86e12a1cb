package http

import (
	nethttp "net/http"

	"github.com/rs/cors"

	"github.com/preston-bernstein/sleeper-bridge/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux and allows cross-origin GETs from any origin.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Home)
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /league/{leagueId}", handler.League)
	mux.HandleFunc("GET /roster/{leagueId}", handler.Rosters)
	mux.HandleFunc("GET /matchups/{leagueId}/{week}", handler.Matchups)
	mux.HandleFunc("GET /league_users/{leagueId}", handler.LeagueUsers)
	mux.HandleFunc("GET /user/{username}", handler.User)
	mux.HandleFunc("GET /player_names", handler.PlayerNames)
	mux.HandleFunc("GET /simplified_rosters/{leagueId}", handler.SimplifiedRosters)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodHead, nethttp.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(mux)
}
