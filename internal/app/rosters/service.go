package rosters

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/sleeper-bridge/internal/domain/rosters"
	"github.com/preston-bernstein/sleeper-bridge/internal/providers"
)

// FailureMessage is reported to clients when either league collection cannot be fetched.
const FailureMessage = "Failed to fetch rosters or users"

// Service joins a league's rosters and users into simplified team views.
type Service struct {
	upstream providers.Upstream
}

// NewService constructs a Service backed by upstream.
func NewService(upstream providers.Upstream) *Service {
	return &Service{upstream: upstream}
}

// SimplifiedRosters fetches rosters and users for leagueID in parallel and joins them.
// If either fetch fails no partial result is returned.
func (s *Service) SimplifiedRosters(ctx context.Context, leagueID string) ([]rosters.SimplifiedTeam, error) {
	if s.upstream == nil {
		return nil, providers.ErrUpstreamUnavailable
	}

	var (
		items []rosters.Roster
		users []rosters.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.upstream.Get(gctx, "league/"+leagueID+"/rosters", &items)
	})
	g.Go(func() error {
		return s.upstream.Get(gctx, "league/"+leagueID+"/users", &users)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return SimplifyRosters(items, users), nil
}

// SimplifyRosters joins rosters to their owners' display names and splits each roster into starters and bench.
// Output order follows the rosters slice.
func SimplifyRosters(items []rosters.Roster, users []rosters.User) []rosters.SimplifiedTeam {
	names := make(map[string]string, len(users))
	for _, u := range users {
		name := rosters.UnknownTeamName
		if u.DisplayName != nil {
			name = *u.DisplayName
		}
		names[u.UserID] = name
	}

	teams := make([]rosters.SimplifiedTeam, 0, len(items))
	for _, r := range items {
		teams = append(teams, rosters.SimplifiedTeam{
			TeamName: teamName(names, r.OwnerID),
			Starters: nonNil(r.Starters),
			Bench:    bench(r.Players, r.Starters),
			RosterID: r.RosterID,
		})
	}
	return teams
}

func teamName(names map[string]string, ownerID *string) string {
	if ownerID == nil {
		return rosters.UnknownTeamName
	}
	if name, ok := names[*ownerID]; ok {
		return name
	}
	return rosters.UnknownTeamName
}

// bench keeps every entry of players not present in starters, in order.
// Duplicate ids in players are filtered per copy, not collapsed.
func bench(players, starters []string) []string {
	starting := make(map[string]struct{}, len(starters))
	for _, id := range starters {
		starting[id] = struct{}{}
	}
	out := make([]string, 0, len(players))
	for _, id := range players {
		if _, ok := starting[id]; ok {
			continue
		}
		out = append(out, id)
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
