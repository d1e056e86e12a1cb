package rosters

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSimplifiedTeamJSONTags(t *testing.T) {
	teamType := reflect.TypeOf(SimplifiedTeam{})
	fields := map[string]string{
		"TeamName": "team_name",
		"Starters": "starters",
		"Bench":    "bench",
		"RosterID": "roster_id",
	}
	for name, tag := range fields {
		f, ok := teamType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := f.Tag.Get("json"); got != tag {
			t.Fatalf("field %s expected tag %s, got %s", name, tag, got)
		}
	}
}

func TestRosterDecodesOptionalFields(t *testing.T) {
	var r Roster
	if err := json.Unmarshal([]byte(`{"roster_id": 3, "owner_id": null, "players": ["p1"]}`), &r); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if r.RosterID == nil || *r.RosterID != 3 {
		t.Fatalf("expected roster id 3, got %v", r.RosterID)
	}
	if r.OwnerID != nil {
		t.Fatalf("expected nil owner for null owner_id")
	}
	if r.Starters != nil {
		t.Fatalf("expected nil starters when absent")
	}
}

func TestUserDecodesMissingDisplayName(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"user_id": "u1"}`), &u); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if u.UserID != "u1" || u.DisplayName != nil {
		t.Fatalf("unexpected user %+v", u)
	}
}
