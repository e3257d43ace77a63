package game

// orthogonal is the cardinal neighborhood: explosions never spread
// diagonally.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// CapacityOf counts the in-bounds, non-blocked orthogonal neighbors of
// (row, col). The result, 0..4, is the cell's explosion threshold: corners of
// an open board get 2, edges 3, interior cells 4, and each blocked neighbor
// removes one.
func CapacityOf(b *Board, row, col int) int {
	n := 0
	for _, d := range orthogonal {
		nr, nc := row+d[0], col+d[1]
		if b.InBounds(nr, nc) && !b.Cells[nr][nc].Blocked {
			n++
		}
	}
	return n
}

// ApplyCapacities computes and assigns the capacity of every non-blocked
// cell. Run once, immediately after NewBoard and before any placement.
func ApplyCapacities(b *Board) {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c].Blocked {
				continue
			}
			b.SetCapacity(r, c, CapacityOf(b, r, c))
		}
	}
}
