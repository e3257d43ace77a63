package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chain-reaction/internal/game"
)

func TestCatalogIsSequential(t *testing.T) {
	all := All()
	require.Equal(t, Count(), len(all))
	for i, l := range all {
		assert.Equal(t, i+1, l.ID)
		assert.Greater(t, l.Size, 0)
		for _, m := range l.Blocked {
			assert.True(t, m.Row >= 0 && m.Row < l.Size)
			assert.True(t, m.Col >= 0 && m.Col < l.Size)
		}
	}
}

func TestGet(t *testing.T) {
	l, ok := Get(1)
	require.True(t, ok)
	assert.Equal(t, "Open Field", l.Name)

	_, ok = Get(Count() + 1)
	assert.False(t, ok)
}

func TestNewBoardAppliesCapacities(t *testing.T) {
	l, ok := Get(2) // 5x5 with four interior pillars
	require.True(t, ok)
	b := l.NewBoard()

	assert.Equal(t, 2, b.Cell(0, 0).Capacity)
	assert.True(t, b.Cell(1, 1).Blocked)
	// (0,1) sits above pillar (1,1): an edge cell down to capacity 2.
	assert.Equal(t, 2, b.Cell(0, 1).Capacity)
	// Center of the pillar square keeps all four neighbors open.
	assert.Equal(t, game.None, b.Cell(2, 2).Owner)
	assert.Equal(t, 4, b.Cell(2, 2).Capacity)
}
