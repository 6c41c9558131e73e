// Package grid defines core types and options for the grid subpackage
// of github.com/katalvlaran/islegrid.
package grid

// Cell value domain. The encoding follows the closed-island convention:
// 0 is land, 1 is water.
const (
	// Land marks a traversable land cell.
	Land = 0
	// Water marks a water cell; water is never traversed by land analyses.
	Water = 1
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity for all adjacency lookups.
	Conn Connectivity
}

// DefaultOptions returns an Options with default settings: Conn=Conn4,
// the connectivity under which closed islands are classically defined.
func DefaultOptions() Options {
	return Options{
		Conn: Conn4,
	}
}

// Grid is an immutable rectangular map of Land/Water cells.
// Width and Height define dimensions; cell values are deep-copied at
// construction and never mutated afterwards, so a single Grid may safely
// serve any number of concurrent analyses.
// neighborOffsets is precomputed for efficient adjacency traversal.
type Grid struct {
	Width, Height   int
	cells           [][]int
	conn            Connectivity
	neighborOffsets [][2]int
}
