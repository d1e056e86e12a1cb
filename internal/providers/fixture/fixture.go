package fixture

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/preston-bernstein/sleeper-bridge/internal/providers"
)

// LeagueID is the league served by the fixture upstream.
const LeagueID = "fixture-league"

// Username is the user served by the fixture upstream.
const Username = "fixture_user"

// Provider answers Sleeper paths from canned documents, useful for local testing and demos.
// Unknown leagues and users decode as JSON null, matching what Sleeper returns for them.
type Provider struct {
	docs map[string]string
}

// New creates a fixture provider with the default canned league.
func New() *Provider {
	return &Provider{docs: defaultDocuments()}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return "fixture" }

// Get decodes the canned document for path into dest.
func (p *Provider) Get(ctx context.Context, path string, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, ok := p.docs[strings.Trim(path, "/")]
	if !ok {
		body = "null"
	}
	if err := json.Unmarshal([]byte(body), dest); err != nil {
		return &providers.DecodeError{Path: path, Err: err}
	}
	return nil
}

func defaultDocuments() map[string]string {
	return map[string]string{
		"league/" + LeagueID: `{
			"league_id": "fixture-league",
			"name": "Fixture Dynasty League",
			"season": "2024",
			"sport": "nfl",
			"status": "in_season",
			"total_rosters": 2
		}`,
		"league/" + LeagueID + "/rosters": `[
			{"roster_id": 1, "owner_id": "u1", "starters": ["4046", "6786"], "players": ["4046", "6786", "4984", "8138"]},
			{"roster_id": 2, "owner_id": "u2", "starters": ["4034"], "players": ["4034", "6794"]}
		]`,
		"league/" + LeagueID + "/users": `[
			{"user_id": "u1", "display_name": "Gridiron Gurus"},
			{"user_id": "u2"}
		]`,
		"league/" + LeagueID + "/matchups/1": `[
			{"roster_id": 1, "matchup_id": 1, "points": 112.4, "starters": ["4046", "6786"]},
			{"roster_id": 2, "matchup_id": 1, "points": 98.7, "starters": ["4034"]}
		]`,
		"user/" + Username: `{"user_id": "u1", "username": "fixture_user", "display_name": "Gridiron Gurus"}`,
		"players/nfl": `{
			"4046": {"player_id": "4046", "full_name": "Patrick Mahomes", "position": "QB"},
			"6786": {"player_id": "6786", "full_name": "CeeDee Lamb", "position": "WR"},
			"4984": {"player_id": "4984", "full_name": "Josh Allen", "position": "QB"},
			"8138": {"player_id": "8138", "full_name": "Breece Hall", "position": "RB"},
			"4034": {"player_id": "4034", "full_name": "Christian McCaffrey", "position": "RB"},
			"6794": {"player_id": "6794", "full_name": "Justin Jefferson", "position": "WR"},
			"KC": {"player_id": "KC", "position": "DEF", "team": "KC"}
		}`,
	}
}
