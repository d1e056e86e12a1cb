package players

import (
	"context"

	"github.com/preston-bernstein/sleeper-bridge/internal/domain/players"
	"github.com/preston-bernstein/sleeper-bridge/internal/providers"
)

// FailureMessage is reported to clients when the player catalog cannot be fetched.
const FailureMessage = "Failed to fetch player names"

const catalogPath = "players/nfl"

// Service projects the NFL player catalog down to player names.
type Service struct {
	upstream providers.Upstream
}

// NewService constructs a Service backed by upstream.
func NewService(upstream providers.Upstream) *Service {
	return &Service{upstream: upstream}
}

// Names fetches the full catalog and returns id -> full name for every player that has one.
func (s *Service) Names(ctx context.Context) (players.NameMap, error) {
	if s.upstream == nil {
		return nil, providers.ErrUpstreamUnavailable
	}
	var catalog players.Catalog
	if err := s.upstream.Get(ctx, catalogPath, &catalog); err != nil {
		return nil, err
	}
	return ExtractNames(catalog), nil
}

// ExtractNames keeps entries with a full name. Entries without one are dropped, not mapped to empty.
func ExtractNames(catalog players.Catalog) players.NameMap {
	names := make(players.NameMap, len(catalog))
	for id, p := range catalog {
		if p.FullName == nil {
			continue
		}
		names[id] = *p.FullName
	}
	return names
}
