package game

import (
	"errors"
	"strings"

	"lukechampine.com/frand"
)

// ErrNoValidMoves is returned when the bot has no legal placement at all.
// Callers must handle it; it is never swallowed.
var ErrNoValidMoves = errors.New("no valid moves available")

// Difficulty orders the bot tiers. Each tier tries its own preference first
// and falls back through the tiers below it when nothing qualifies.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "easy"
	}
}

// ParseDifficulty maps a tier name to a Difficulty, case-insensitively.
// Unknown names fall back to Easy.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return Medium
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Easy
	}
}

// FindMove picks a placement for color at the given difficulty. Tiers chain
// downward: expert -> hard -> medium -> easy. Only the easy tier (and an
// ambiguous tie at the bottom of the chain) is random; whenever a tier's
// preference singles out a cell the result is deterministic for a given
// board.
func FindMove(b *Board, color Color, d Difficulty) (Move, error) {
	valid := ValidMoves(b, color)
	if len(valid) == 0 {
		return Move{}, ErrNoValidMoves
	}
	if d >= Expert {
		if m, ok := advantageMove(b, color, valid); ok {
			return m, nil
		}
	}
	if d >= Hard {
		if m, ok := tacticalMove(b, color, valid); ok {
			return m, nil
		}
	}
	if d >= Medium {
		if m, ok := greedyMove(b, color, valid); ok {
			return m, nil
		}
	}
	return valid[frand.Intn(len(valid))], nil
}

// headroom is how many dots a cell can still take before going over
// capacity.
func headroom(c Cell) int {
	return c.Capacity - c.Dots
}

// advantageMove (expert) looks for a self-owned cell that is winning a race
// with an orthogonal opponent neighbor: strictly less headroom than the
// neighbor, so it pops first and converts the neighbor's buildup.
func advantageMove(b *Board, color Color, valid []Move) (Move, bool) {
	for _, m := range valid {
		cell := b.Cells[m.Row][m.Col]
		if cell.Owner != color || cell.Dots == 0 {
			continue
		}
		for _, d := range orthogonal {
			nr, nc := m.Row+d[0], m.Col+d[1]
			if !b.InBounds(nr, nc) {
				continue
			}
			neighbor := b.Cells[nr][nc]
			if neighbor.Owner != color.Opponent() {
				continue
			}
			if headroom(cell) < headroom(neighbor) {
				return m, true
			}
		}
	}
	return Move{}, false
}

// tacticalMove (hard) prefers a loaded self cell (dots == capacity) touching
// the opponent, favoring one whose opponent neighbor is itself loaded, since
// placing there converts the buildup before it fires back.
func tacticalMove(b *Board, color Color, valid []Move) (Move, bool) {
	var fallback *Move
	for _, m := range valid {
		cell := b.Cells[m.Row][m.Col]
		if cell.Owner != color || cell.Dots != cell.Capacity || cell.Dots == 0 {
			continue
		}
		for _, d := range orthogonal {
			nr, nc := m.Row+d[0], m.Col+d[1]
			if !b.InBounds(nr, nc) {
				continue
			}
			neighbor := b.Cells[nr][nc]
			if neighbor.Owner != color.Opponent() {
				continue
			}
			if neighbor.Dots == neighbor.Capacity {
				return m, true
			}
			if fallback == nil {
				mm := m
				fallback = &mm
			}
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Move{}, false
}

// greedyMove (medium) prefers a self cell about to explode; failing that, the
// lowest-capacity valid cell (corners before edges before interior), ties
// going to scan order.
func greedyMove(b *Board, color Color, valid []Move) (Move, bool) {
	for _, m := range valid {
		cell := b.Cells[m.Row][m.Col]
		if cell.Owner == color && cell.Dots > 0 && cell.Dots == cell.Capacity {
			return m, true
		}
	}
	best := valid[0]
	bestCap := b.Cells[best.Row][best.Col].Capacity
	for _, m := range valid[1:] {
		if c := b.Cells[m.Row][m.Col].Capacity; c < bestCap {
			best, bestCap = m, c
		}
	}
	return best, true
}
