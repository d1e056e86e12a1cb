package passthrough

import (
	"context"
	"encoding/json"

	"github.com/preston-bernstein/sleeper-bridge/internal/providers"
)

// FailureMessage is reported to clients when a passthrough call fails.
const FailureMessage = "Sleeper API request failed"

// Service forwards a single GET to the upstream and returns its body verbatim.
type Service struct {
	upstream providers.Upstream
}

// NewService constructs a Service backed by upstream.
func NewService(upstream providers.Upstream) *Service {
	return &Service{upstream: upstream}
}

// Forward fetches pathSuffix from the upstream. The returned JSON is the upstream body, unmodified.
func (s *Service) Forward(ctx context.Context, pathSuffix string) (json.RawMessage, error) {
	if s.upstream == nil {
		return nil, providers.ErrUpstreamUnavailable
	}
	var body json.RawMessage
	if err := s.upstream.Get(ctx, pathSuffix, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// League fetches league metadata.
func (s *Service) League(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return s.Forward(ctx, "league/"+leagueID)
}

// Rosters fetches the raw rosters collection for a league.
func (s *Service) Rosters(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return s.Forward(ctx, "league/"+leagueID+"/rosters")
}

// Matchups fetches the matchups for a league week.
func (s *Service) Matchups(ctx context.Context, leagueID, week string) (json.RawMessage, error) {
	return s.Forward(ctx, "league/"+leagueID+"/matchups/"+week)
}

// LeagueUsers fetches the raw users collection for a league.
func (s *Service) LeagueUsers(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return s.Forward(ctx, "league/"+leagueID+"/users")
}

// User fetches a user by username or id.
func (s *Service) User(ctx context.Context, username string) (json.RawMessage, error) {
	return s.Forward(ctx, "user/"+username)
}
