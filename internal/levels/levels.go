package levels

import "chain-reaction/internal/game"

// Level describes one playable board: its grid size and which cells are
// walled off. Capacities are derived from this at level start and never
// recomputed.
type Level struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Size    int         `json:"size"`
	Blocked []game.Move `json:"blocked,omitempty"`
}

// catalog is the built-in level set, ordered by ascending ID.
var catalog = []Level{
	{ID: 1, Name: "Open Field", Size: 5},
	{ID: 2, Name: "Pillars", Size: 5, Blocked: []game.Move{
		{Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 3},
	}},
	{ID: 3, Name: "Crossroads", Size: 6, Blocked: []game.Move{
		{Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	}},
	{ID: 4, Name: "Corridor", Size: 7, Blocked: []game.Move{
		{Row: 0, Col: 3}, {Row: 1, Col: 3}, {Row: 2, Col: 3},
		{Row: 4, Col: 3}, {Row: 5, Col: 3}, {Row: 6, Col: 3},
	}},
	{ID: 5, Name: "Broken Corners", Size: 7, Blocked: []game.Move{
		{Row: 0, Col: 0}, {Row: 0, Col: 6}, {Row: 6, Col: 0}, {Row: 6, Col: 6},
	}},
	{ID: 6, Name: "Arena", Size: 8, Blocked: []game.Move{
		{Row: 3, Col: 0}, {Row: 4, Col: 0}, {Row: 3, Col: 7}, {Row: 4, Col: 7},
		{Row: 0, Col: 3}, {Row: 0, Col: 4}, {Row: 7, Col: 3}, {Row: 7, Col: 4},
	}},
}

// Get returns the level with the given ID.
func Get(id int) (Level, bool) {
	for _, l := range catalog {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

// All returns the catalog in order. The returned slice is shared; callers
// must not mutate it.
func All() []Level {
	return catalog
}

// Count reports how many levels the catalog holds.
func Count() int {
	return len(catalog)
}

// NewBoard builds the level's board with capacities already applied.
func (l Level) NewBoard() game.Board {
	b := game.NewBoard(l.Size, l.Blocked)
	game.ApplyCapacities(&b)
	return b
}
