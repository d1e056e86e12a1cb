package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/sleeper-bridge/internal/providers"
)

type namedUpstream interface {
	Name() string
}

// normalizeProviderName returns a lower-cased provider name, deriving from the instance when not explicitly configured.
func normalizeProviderName(raw string, upstream providers.Upstream) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := upstream.(namedUpstream); ok {
		return strings.ToLower(named.Name())
	}
	if upstream != nil {
		return strings.ToLower(fmt.Sprintf("%T", upstream))
	}
	return ""
}
