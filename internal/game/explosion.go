package game

// ExplodeCell removes one capacity's worth of dots from (row, col) and pushes
// one dot into each in-bounds, non-blocked orthogonal neighbor, converting it
// to the exploding owner. Any surplus beyond capacity+1 stays on the source.
// A capacity-0 cell (fully walled in) has nowhere to spread, so it drains to
// zero instead; otherwise Settle would revisit it forever.
// Returns the affected neighbor coordinates.
func ExplodeCell(b *Board, row, col int) []Move {
	cell := &b.Cells[row][col]
	owner := cell.Owner
	if cell.Capacity == 0 {
		cell.Dots = 0
		cell.Owner = None
		return nil
	}
	cell.Dots -= cell.Capacity

	affected := make([]Move, 0, 4)
	for _, d := range orthogonal {
		nr, nc := row+d[0], col+d[1]
		if !b.InBounds(nr, nc) || b.Cells[nr][nc].Blocked {
			continue
		}
		neighbor := &b.Cells[nr][nc]
		neighbor.Dots++
		neighbor.Owner = owner
		affected = append(affected, Move{Row: nr, Col: nc})
	}
	return affected
}

// Settle runs explosion waves until the board is stable or one color owns
// every playable cell. Each wave is a single row-major sweep that explodes
// every over-capacity cell in place, so explosions later in a sweep see the
// partially updated board. The win check runs after every wave with at least
// one explosion and a win stops settling immediately.
// Returns the winner (None if the board merely went stable) and the number
// of waves that exploded something, for callers pacing per-wave rendering.
func Settle(b *Board) (Color, int) {
	waves := 0
	for {
		exploded := false
		for r := 0; r < b.Size; r++ {
			for c := 0; c < b.Size; c++ {
				if ShouldExplode(b, r, c) {
					ExplodeCell(b, r, c)
					exploded = true
				}
			}
		}
		if !exploded {
			return None, waves
		}
		waves++
		if winner := CheckWin(b); winner != None {
			return winner, waves
		}
	}
}
