package game

// IsValidMove reports whether player may place a dot at (row, col): in
// bounds, not blocked, and the cell is empty or already theirs. Turn order is
// deliberately not checked here so the same rule serves the human and bot
// paths.
func IsValidMove(b *Board, row, col int, player Color) bool {
	if !b.InBounds(row, col) {
		return false
	}
	cell := b.Cells[row][col]
	if cell.Blocked {
		return false
	}
	return cell.Dots == 0 || cell.Owner == player
}

// ShouldExplode reports whether the cell at (row, col) is past capacity.
// Exactly at capacity is stable.
func ShouldExplode(b *Board, row, col int) bool {
	cell := b.Cells[row][col]
	return cell.Dots > cell.Capacity
}

// ValidMoves lists every legal placement for player, in row-major order.
func ValidMoves(b *Board, player Color) []Move {
	var moves []Move
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if IsValidMove(b, r, c, player) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// CellsToExplode lists every over-capacity cell, in row-major order.
func CellsToExplode(b *Board) []Move {
	var cells []Move
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if ShouldExplode(b, r, c) {
				cells = append(cells, Move{Row: r, Col: c})
			}
		}
	}
	return cells
}
