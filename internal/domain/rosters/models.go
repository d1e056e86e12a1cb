package rosters

// UnknownTeamName is used when a roster owner cannot be resolved to a display name.
const UnknownTeamName = "Unknown"

// Roster is one team's assignment within a league as returned by Sleeper.
// Optional fields decode as nil when absent or null upstream.
type Roster struct {
	RosterID *int     `json:"roster_id"`
	OwnerID  *string  `json:"owner_id"`
	Starters []string `json:"starters"`
	Players  []string `json:"players"`
}

// User is a league member as returned by Sleeper.
type User struct {
	UserID      string  `json:"user_id"`
	DisplayName *string `json:"display_name"`
}

// SimplifiedTeam is the reduced per-team view served to clients.
// Starters and Bench are never nil so they always encode as arrays.
type SimplifiedTeam struct {
	TeamName string   `json:"team_name"`
	Starters []string `json:"starters"`
	Bench    []string `json:"bench"`
	RosterID *int     `json:"roster_id"`
}
