package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTiers = []Difficulty{Easy, Medium, Hard, Expert}

func TestParseDifficulty(t *testing.T) {
	assert.Equal(t, Easy, ParseDifficulty("easy"))
	assert.Equal(t, Medium, ParseDifficulty("MEDIUM"))
	assert.Equal(t, Hard, ParseDifficulty(" Hard "))
	assert.Equal(t, Expert, ParseDifficulty("expert"))
	// Unknown names fall back to easy.
	assert.Equal(t, Easy, ParseDifficulty("nightmare"))
	assert.Equal(t, Easy, ParseDifficulty(""))
}

func TestFindMoveAlwaysLegal(t *testing.T) {
	b := NewBoard(4, []Move{{Row: 1, Col: 2}})
	ApplyCapacities(&b)
	b.PlaceDot(0, 0, Blue)
	b.PlaceDot(0, 1, Blue)
	b.PlaceDot(2, 2, Red)
	b.Cells[2][2].Dots = 3

	for _, tier := range allTiers {
		for i := 0; i < 20; i++ {
			mv, err := FindMove(&b, Blue, tier)
			require.NoError(t, err, tier.String())
			assert.True(t, IsValidMove(&b, mv.Row, mv.Col, Blue),
				"tier %s returned %+v", tier, mv)
		}
	}
}

func TestFindMoveNoValidMoves(t *testing.T) {
	b := NewBoard(2, nil)
	ApplyCapacities(&b)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			b.PlaceDot(r, c, Blue)
		}
	}
	for _, tier := range allTiers {
		_, err := FindMove(&b, Red, tier)
		assert.ErrorIs(t, err, ErrNoValidMoves, tier.String())
	}
}

func TestMediumPrefersLoadedCell(t *testing.T) {
	b := NewBoard(3, nil)
	ApplyCapacities(&b)
	b.PlaceDot(2, 0, Red)
	b.Cells[1][1].Owner = Red
	b.Cells[1][1].Dots = 4 // loaded interior cell

	mv, err := FindMove(&b, Red, Medium)
	require.NoError(t, err)
	assert.Equal(t, Move{Row: 1, Col: 1}, mv)
}

func TestMediumFallsBackToLowestCapacity(t *testing.T) {
	b := NewBoard(3, nil)
	ApplyCapacities(&b)
	// No loaded cells anywhere: the first corner wins on capacity.
	mv, err := FindMove(&b, Red, Medium)
	require.NoError(t, err)
	assert.Equal(t, Move{Row: 0, Col: 0}, mv)
}

func TestHardPrefersContactOverScanOrder(t *testing.T) {
	b := NewBoard(3, nil)
	ApplyCapacities(&b)
	// Loaded red corner at (0,0) with no blue contact.
	b.Cells[0][0].Owner = Red
	b.Cells[0][0].Dots = 2
	// Loaded red corner at (2,2) touching blue (2,1).
	b.Cells[2][2].Owner = Red
	b.Cells[2][2].Dots = 2
	b.PlaceDot(2, 1, Blue)

	// Medium takes the first loaded cell; hard insists on enemy contact.
	mv, err := FindMove(&b, Red, Medium)
	require.NoError(t, err)
	assert.Equal(t, Move{Row: 0, Col: 0}, mv)

	mv, err = FindMove(&b, Red, Hard)
	require.NoError(t, err)
	assert.Equal(t, Move{Row: 2, Col: 2}, mv)
}

func TestHardPrioritizesLoadedOpponentNeighbor(t *testing.T) {
	b := NewBoard(3, nil)
	ApplyCapacities(&b)
	// Loaded red at (0,0) touching a quiet blue cell.
	b.Cells[0][0].Owner = Red
	b.Cells[0][0].Dots = 2
	b.PlaceDot(0, 1, Blue)
	// Loaded red at (2,2) touching a blue cell that is itself about to pop.
	b.Cells[2][2].Owner = Red
	b.Cells[2][2].Dots = 2
	b.Cells[2][1].Owner = Blue
	b.Cells[2][1].Dots = 3 // edge, capacity 3

	mv, err := FindMove(&b, Red, Hard)
	require.NoError(t, err)
	assert.Equal(t, Move{Row: 2, Col: 2}, mv)
}

func TestExpertPicksAdvantageCell(t *testing.T) {
	b := NewBoard(3, nil)
	ApplyCapacities(&b)
	// Red at (1,1) needs one more dot to pop; adjacent blue needs three.
	b.Cells[1][1].Owner = Red
	b.Cells[1][1].Dots = 3
	b.PlaceDot(1, 2, Blue)

	mv, err := FindMove(&b, Red, Expert)
	require.NoError(t, err)
	assert.Equal(t, Move{Row: 1, Col: 1}, mv)
}

func TestSingleLoadedCellIsDeterministic(t *testing.T) {
	b := NewBoard(3, nil)
	ApplyCapacities(&b)
	b.Cells[1][0].Owner = Red
	b.Cells[1][0].Dots = 3 // edge cell at capacity, nowhere near blue

	// Every tier above easy resolves to the same unambiguous cell.
	for _, tier := range []Difficulty{Medium, Hard, Expert} {
		mv, err := FindMove(&b, Red, tier)
		require.NoError(t, err)
		assert.Equal(t, Move{Row: 1, Col: 0}, mv, tier.String())
	}
}
