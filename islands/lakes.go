package islands

import (
	"github.com/katalvlaran/islegrid/grid"
)

// Lakes finds every lake of g: a maximal connected water region with no
// cell on the outer border and no path through water to the border. It is
// the mirror image of ClosedRegions with the roles of land and water
// swapped. Returns regions of row-major cell indices in row-major
// discovery order.
//
// Time:   O(W×H×d), where d = 4 or 8.
// Memory: O(W×H) for visited flags and output.
func Lakes(g *grid.Grid) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	f := newFloodFiller(g, false, DepthFirst)

	// Open water drains off the border; flush it first.
	for y := 0; y < g.Height; y++ {
		f.seed(0, y)
		f.seed(g.Width-1, y)
	}
	for x := 0; x < g.Width; x++ {
		f.seed(x, 0)
		f.seed(x, g.Height-1)
	}

	// Remaining water regions are landlocked.
	var lakes [][]int
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if !g.IsWater(x, y) || f.visited[g.Index(x, y)] {
				continue
			}
			lake, _ := f.fill(g.Index(x, y))
			lakes = append(lakes, lake)
		}
	}

	return lakes, nil
}
