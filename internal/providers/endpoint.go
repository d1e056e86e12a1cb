package providers

import "strings"

// EndpointName collapses an upstream path into a low-cardinality label for logs and metrics,
// e.g. "league/123/matchups/4" becomes "league_matchups".
func EndpointName(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch parts[0] {
	case "league":
		if len(parts) >= 3 && parts[2] != "" {
			return "league_" + parts[2]
		}
		return "league"
	case "user":
		return "user"
	case "players":
		return "players"
	default:
		return "other"
	}
}
