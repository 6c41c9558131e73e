package islands

import (
	"fmt"

	"github.com/katalvlaran/islegrid/grid"
)

// Closed counts the closed islands of g: maximal connected land regions
// with no cell on the outer border and no path through land to the border.
// Connectivity follows the grid (Conn4 by default).
// Returns ErrNilGrid if g is nil, or any error raised by a hook.
//
// Time: O(W×H×d), Memory: O(W×H) for the per-call visited slice.
func Closed(g *grid.Grid, opts ...Option) (int, error) {
	regions, err := ClosedRegions(g, opts...)
	if err != nil {
		return 0, err
	}

	return len(regions), nil
}

// ClosedRegions returns every closed island of g as a slice of row-major
// cell indices, in row-major discovery order. Use grid.Coordinate or
// grid.CellAt to map indices back to coordinates.
//
// Behavior:
//  1. Border pass: flood-fill from every land cell on the outer border,
//     consuming all land reachable from the border. None of it can belong
//     to a closed island.
//  2. Counting pass over the strict interior: each still-unvisited land
//     cell seeds a flood fill that yields exactly one closed island (it
//     cannot reach the border — step 1 already consumed such land).
//
// The input grid is never modified; repeated calls yield identical results.
//
// Time: O(W×H×d), Memory: O(W×H).
func ClosedRegions(g *grid.Grid, opts ...Option) ([][]int, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	f := newFloodFiller(g, true, o.Strategy)

	// 3. Neutralize all border-connected land
	for y := 0; y < g.Height; y++ {
		f.seed(0, y)
		f.seed(g.Width-1, y)
	}
	for x := 0; x < g.Width; x++ {
		f.seed(x, 0)
		f.seed(x, g.Height-1)
	}

	// 4. Count: every remaining land region is closed by construction
	f.onVisit = o.OnVisit
	var regions [][]int
	var region []int
	var err error
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			if !g.IsLand(x, y) || f.visited[g.Index(x, y)] {
				continue
			}
			if region, err = f.fill(g.Index(x, y)); err != nil {
				return nil, err
			}
			if o.OnRegion != nil {
				if err = o.OnRegion(region); err != nil {
					return nil, fmt.Errorf("islands: OnRegion hook for region %d: %w", len(regions), err)
				}
			}
			regions = append(regions, region)
		}
	}

	return regions, nil
}
