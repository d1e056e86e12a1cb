package players

// Player is the projection of a Sleeper catalog record this service reads.
// The catalog carries dozens of other fields; decoding only FullName keeps the pass cheap.
type Player struct {
	FullName *string `json:"full_name"`
}

// Catalog maps player id to record, matching the shape of players/nfl.
type Catalog map[string]Player

// NameMap maps player id to full name.
type NameMap map[string]string
