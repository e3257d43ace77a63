package game

// CheckWin returns the color owning every playable cell, or None. A board
// with empty playable cells has no winner yet; a board with no playable
// cells at all (everything blocked) never declares one.
func CheckWin(b *Board) Color {
	red, blue, empty := 0, 0, 0
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			cell := b.Cells[r][c]
			if cell.Blocked {
				continue
			}
			switch {
			case cell.Dots == 0:
				empty++
			case cell.Owner == Red:
				red++
			case cell.Owner == Blue:
				blue++
			}
		}
	}
	if empty > 0 {
		return None
	}
	if red > 0 && blue == 0 {
		return Red
	}
	if blue > 0 && red == 0 {
		return Blue
	}
	return None
}
