// File: islands/lakes_test.go
package islands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islegrid/islands"
)

// TestLakes_SingleLake: a 2×2 water pocket sealed inside a land ring.
//
//	0 0 0 0
//	0 1 1 0
//	0 1 1 0
//	0 0 0 0
func TestLakes_SingleLake(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	})

	lakes, err := islands.Lakes(g)
	require.NoError(t, err)
	require.Len(t, lakes, 1)
	assert.Len(t, lakes[0], 4)
}

// TestLakes_DrainedChannel: the water strip reaches the border at (3,1),
// so nothing is landlocked.
//
//	0 0 0 0
//	0 1 1 1
//	0 0 0 0
func TestLakes_DrainedChannel(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 0, 0, 0},
	})

	lakes, err := islands.Lakes(g)
	require.NoError(t, err)
	assert.Empty(t, lakes)
}

// TestLakes_Degenerate: all-land and all-water grids hold no lake.
func TestLakes_Degenerate(t *testing.T) {
	allLand := mustGrid(t, [][]int{
		{0, 0, 0},
		{0, 0, 0},
	})
	lakes, err := islands.Lakes(allLand)
	require.NoError(t, err)
	assert.Empty(t, lakes)

	allWater := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 1, 1},
	})
	lakes, err = islands.Lakes(allWater)
	require.NoError(t, err)
	assert.Empty(t, lakes)

	_, err = islands.Lakes(nil)
	assert.ErrorIs(t, err, islands.ErrNilGrid)
}

// TestLakes_DualOfClosed: a lake is exactly a closed island of the
// land/water-inverted grid.
func TestLakes_DualOfClosed(t *testing.T) {
	values := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 0},
		{1, 0, 0, 0, 0, 1, 1, 0},
		{1, 0, 1, 0, 1, 1, 1, 0},
		{1, 0, 0, 0, 0, 1, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 0},
	}
	inverted := make([][]int, len(values))
	for y, row := range values {
		inverted[y] = make([]int, len(row))
		for x, v := range row {
			inverted[y][x] = 1 - v
		}
	}

	lakes, err := islands.Lakes(mustGrid(t, values))
	require.NoError(t, err)
	n, err := islands.Closed(mustGrid(t, inverted))
	require.NoError(t, err)

	assert.Equal(t, n, len(lakes))
	assert.Len(t, lakes, 1, "only the water cell at (2,2) is landlocked")
}
