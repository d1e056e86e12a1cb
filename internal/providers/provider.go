package providers

import "context"

// Upstream issues GET requests against the Sleeper API.
// Path is relative to the configured base URL (e.g. "league/123/rosters") and is not validated or escaped.
// Get decodes the JSON body into dest and returns an error for transport failures,
// non-2xx statuses, and bodies that are not valid JSON for dest.
type Upstream interface {
	Get(ctx context.Context, path string, dest any) error
}
