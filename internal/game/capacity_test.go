package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityOpenBoard(t *testing.T) {
	b := NewBoard(4, nil)
	ApplyCapacities(&b)

	// Corners touch two neighbors, edges three, interior four.
	assert.Equal(t, 2, b.Cell(0, 0).Capacity)
	assert.Equal(t, 2, b.Cell(0, 3).Capacity)
	assert.Equal(t, 2, b.Cell(3, 0).Capacity)
	assert.Equal(t, 2, b.Cell(3, 3).Capacity)
	assert.Equal(t, 3, b.Cell(0, 1).Capacity)
	assert.Equal(t, 3, b.Cell(1, 0).Capacity)
	assert.Equal(t, 3, b.Cell(3, 2).Capacity)
	assert.Equal(t, 4, b.Cell(1, 1).Capacity)
	assert.Equal(t, 4, b.Cell(2, 2).Capacity)
}

func TestCapacityBlockedNeighborsReduce(t *testing.T) {
	b := NewBoard(3, []Move{{Row: 1, Col: 1}})
	ApplyCapacities(&b)

	// Each edge cell lost its interior neighbor.
	assert.Equal(t, 2, b.Cell(0, 1).Capacity)
	assert.Equal(t, 2, b.Cell(1, 0).Capacity)
	assert.Equal(t, 2, b.Cell(1, 2).Capacity)
	assert.Equal(t, 2, b.Cell(2, 1).Capacity)
	// Corners are untouched.
	assert.Equal(t, 2, b.Cell(0, 0).Capacity)
	// The blocked cell itself keeps capacity zero.
	assert.Equal(t, 0, b.Cell(1, 1).Capacity)
}

func TestCapacityDegenerateBoards(t *testing.T) {
	one := NewBoard(1, nil)
	ApplyCapacities(&one)
	assert.Equal(t, 0, one.Cell(0, 0).Capacity)

	empty := NewBoard(0, nil)
	require.Equal(t, 0, empty.Size)
	require.Len(t, empty.Cells, 0)
	ApplyCapacities(&empty) // must not panic

	// A cell walled in on all four sides also gets zero.
	walled := NewBoard(3, []Move{
		{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1},
	})
	ApplyCapacities(&walled)
	assert.Equal(t, 0, walled.Cell(1, 1).Capacity)
}

func TestNewBoardBlockedCells(t *testing.T) {
	b := NewBoard(3, []Move{{Row: 0, Col: 2}, {Row: 5, Col: 5}})
	cell := b.Cell(0, 2)
	assert.True(t, cell.Blocked)
	assert.Equal(t, BlockedOwner, cell.Owner)
	assert.Equal(t, 0, cell.Dots)
	// The out-of-bounds coordinate is ignored, everything else is open.
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 0 && c == 2 {
				continue
			}
			assert.False(t, b.Cell(r, c).Blocked)
			assert.Equal(t, None, b.Cell(r, c).Owner)
		}
	}
}
