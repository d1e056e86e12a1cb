package fixture

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/preston-bernstein/sleeper-bridge/internal/domain/players"
	"github.com/preston-bernstein/sleeper-bridge/internal/domain/rosters"
)

func TestFixtureDocumentsAreValidJSON(t *testing.T) {
	for path, body := range defaultDocuments() {
		if !json.Valid([]byte(body)) {
			t.Fatalf("fixture document for %s is not valid JSON", path)
		}
	}
}

func TestFixtureServesLeagueRosters(t *testing.T) {
	p := New()
	var items []rosters.Roster
	if err := p.Get(context.Background(), "league/"+LeagueID+"/rosters", &items); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rosters, got %d", len(items))
	}
}

func TestFixtureCatalogHasEntryWithoutFullName(t *testing.T) {
	p := New()
	var catalog players.Catalog
	if err := p.Get(context.Background(), "players/nfl", &catalog); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if catalog["KC"].FullName != nil {
		t.Fatalf("expected team defense entry without full name")
	}
}

func TestFixtureUnknownPathDecodesNull(t *testing.T) {
	p := New()
	var raw json.RawMessage
	if err := p.Get(context.Background(), "league/does-not-exist", &raw); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("expected null for unknown league, got %s", raw)
	}
}

func TestFixtureRespectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var raw json.RawMessage
	if err := New().Get(ctx, "players/nfl", &raw); err == nil {
		t.Fatal("expected context error")
	}
}
