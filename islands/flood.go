package islands

import (
	"fmt"

	"github.com/katalvlaran/islegrid/grid"
)

// floodFiller encapsulates the per-invocation state of one analysis:
// the grid under inspection, a flat visited slice (row-major), the frontier
// discipline, and which cell kind the fill traverses. Every exported
// function allocates its own filler, so concurrent calls never share state.
type floodFiller struct {
	g        *grid.Grid
	visited  []bool
	strategy Strategy
	land     bool // true: traverse land cells; false: traverse water cells

	// onVisit is fired per filled cell when non-nil. The border pass keeps
	// it nil; only counting passes report cells.
	onVisit func(c grid.Cell) error
}

func newFloodFiller(g *grid.Grid, land bool, strategy Strategy) *floodFiller {
	return &floodFiller{
		g:        g,
		visited:  make([]bool, g.Width*g.Height),
		strategy: strategy,
		land:     land,
	}
}

// traversable reports whether (x,y) holds the cell kind this fill follows.
func (f *floodFiller) traversable(x, y int) bool {
	if f.land {
		return f.g.IsLand(x, y)
	}

	return f.g.IsWater(x, y)
}

// seed starts a fill from (x,y) if the cell is traversable and unvisited.
// Used by border-neutralization passes, which never install hooks and so
// never fail.
func (f *floodFiller) seed(x, y int) {
	i := f.g.Index(x, y)
	if !f.traversable(x, y) || f.visited[i] {
		return
	}
	_, _ = f.fill(i)
}

// fill flood-fills from the seed index and returns the region as row-major
// cell indices. Cells are marked visited before they enter the frontier, so
// each cell is processed at most once. DepthFirst pops the frontier's tail
// (stack), BreadthFirst its head (queue).
//
// Time: O(R×d) for a region of R cells, d = 4 or 8. Memory: O(R) frontier.
func (f *floodFiller) fill(seed int) ([]int, error) {
	frontier := []int{seed}
	f.visited[seed] = true
	var region []int

	var u int
	for len(frontier) > 0 {
		if f.strategy == BreadthFirst {
			u = frontier[0]
			frontier = frontier[1:]
		} else {
			u = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
		}
		region = append(region, u)

		if f.onVisit != nil {
			c := f.g.CellAt(u)
			if err := f.onVisit(c); err != nil {
				return nil, fmt.Errorf("islands: OnVisit hook for (%d,%d): %w", c.X, c.Y, err)
			}
		}

		ux, uy := f.g.Coordinate(u)
		for _, d := range f.g.NeighborOffsets() {
			vx, vy := ux+d[0], uy+d[1]
			if !f.g.InBounds(vx, vy) || !f.traversable(vx, vy) {
				continue
			}
			vi := f.g.Index(vx, vy)
			if !f.visited[vi] {
				f.visited[vi] = true
				frontier = append(frontier, vi)
			}
		}
	}

	return region, nil
}
