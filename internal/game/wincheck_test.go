package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestCheckWinEmptyCellsMeanNoWinner(t *testing.T) {
	is := is.New(t)
	b := NewBoard(3, nil)
	ApplyCapacities(&b)
	b.PlaceDot(0, 0, Red)
	is.Equal(CheckWin(&b), None) // open cells remain
}

func TestCheckWinDomination(t *testing.T) {
	is := is.New(t)
	b := NewBoard(3, nil)
	ApplyCapacities(&b)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b.PlaceDot(r, c, Red)
		}
	}
	is.Equal(CheckWin(&b), Red)

	b.Cells[1][1].Owner = Blue
	is.Equal(CheckWin(&b), None) // both colors present
}

func TestCheckWinBlueDomination(t *testing.T) {
	is := is.New(t)
	b := NewBoard(2, []Move{{Row: 0, Col: 0}})
	ApplyCapacities(&b)
	b.PlaceDot(0, 1, Blue)
	b.PlaceDot(1, 0, Blue)
	b.PlaceDot(1, 1, Blue)
	is.Equal(CheckWin(&b), Blue) // blocked cells never count
}

func TestCheckWinFullyBlockedBoard(t *testing.T) {
	is := is.New(t)
	b := NewBoard(2, []Move{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
	})
	ApplyCapacities(&b)
	is.Equal(CheckWin(&b), None) // no playable cells, no winner
}
