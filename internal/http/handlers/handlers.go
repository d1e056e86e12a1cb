package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sleeper-bridge/internal/app/passthrough"
	"github.com/preston-bernstein/sleeper-bridge/internal/app/players"
	"github.com/preston-bernstein/sleeper-bridge/internal/app/rosters"
	"github.com/preston-bernstein/sleeper-bridge/internal/logging"
)

// HomeMessage is the liveness text served at "/".
const HomeMessage = "✅ Sleeper API Bridge is running!"

// Handler wires HTTP routes to the bridge services.
type Handler struct {
	passthrough *passthrough.Service
	rosters     *rosters.Service
	players     *players.Service
	logger      *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(pt *passthrough.Service, rs *rosters.Service, ps *players.Service, logger *slog.Logger) *Handler {
	return &Handler{
		passthrough: pt,
		rosters:     rs,
		players:     ps,
		logger:      logger,
	}
}

// Home reports that the bridge is up.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(HomeMessage))
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// League proxies league metadata.
func (h *Handler) League(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return h.passthrough.League(ctx, r.PathValue("leagueId"))
	})
}

// Rosters proxies the raw league rosters.
func (h *Handler) Rosters(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return h.passthrough.Rosters(ctx, r.PathValue("leagueId"))
	})
}

// Matchups proxies the matchups for one league week.
func (h *Handler) Matchups(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return h.passthrough.Matchups(ctx, r.PathValue("leagueId"), r.PathValue("week"))
	})
}

// LeagueUsers proxies the raw league users.
func (h *Handler) LeagueUsers(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return h.passthrough.LeagueUsers(ctx, r.PathValue("leagueId"))
	})
}

// User proxies a user lookup.
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return h.passthrough.User(ctx, r.PathValue("username"))
	})
}

// PlayerNames returns the player id -> full name map.
func (h *Handler) PlayerNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.players.Names(r.Context())
	if err != nil {
		writeUpstreamError(w, r, players.FailureMessage, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served player names", slog.Int(logging.FieldCount, len(names)))
	writeJSON(w, http.StatusOK, names, h.logger)
}

// SimplifiedRosters returns the reduced per-team view of a league.
func (h *Handler) SimplifiedRosters(w http.ResponseWriter, r *http.Request) {
	leagueID := r.PathValue("leagueId")
	teams, err := h.rosters.SimplifiedRosters(r.Context(), leagueID)
	if err != nil {
		writeUpstreamError(w, r, rosters.FailureMessage, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served simplified rosters",
		slog.String(logging.FieldLeagueID, leagueID),
		slog.Int(logging.FieldCount, len(teams)),
	)
	writeJSON(w, http.StatusOK, teams, h.logger)
}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request, fetch func(context.Context) (json.RawMessage, error)) {
	body, err := fetch(r.Context())
	if err != nil {
		writeUpstreamError(w, r, passthrough.FailureMessage, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, body, h.logger)
}
