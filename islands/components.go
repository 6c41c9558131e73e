package islands

import (
	"github.com/katalvlaran/islegrid/grid"
)

// Components finds all contiguous land regions of g, border-touching or
// not, according to the grid's connectivity. Returns a slice of regions;
// each region is a slice of row-major cell indices, in row-major discovery
// order. A grid with no land yields a nil slice.
//
// Unlike ClosedRegions, no border pass runs: every land region counts.
//
// Time:   O(W×H×d), where d = 4 or 8.
// Memory: O(W×H) for visited flags and output.
func Components(g *grid.Grid) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	f := newFloodFiller(g, true, DepthFirst)
	var comps [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsLand(x, y) || f.visited[g.Index(x, y)] {
				continue
			}
			comp, _ := f.fill(g.Index(x, y)) // no hooks installed, cannot fail
			comps = append(comps, comp)
		}
	}

	return comps, nil
}
