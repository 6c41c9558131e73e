package grid

// New constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrCellValue if any cell is neither Land (0) nor Water (1).
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if v != Land && v != Water {
				return nil, ErrCellValue
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	g := &Grid{
		Width:           w,
		Height:          h,
		cells:           cells,
		conn:            opts.Conn,
		neighborOffsets: offsets,
	}

	return g, nil
}

// Conn reports the connectivity the grid was constructed with.
// Complexity: O(1).
func (g *Grid) Conn() Connectivity {
	return g.conn
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// OnBorder reports whether (x,y) lies on the grid's outer border:
// row 0, row Height-1, column 0, or column Width-1.
// Complexity: O(1).
func (g *Grid) OnBorder(x, y int) bool {
	return x == 0 || x == g.Width-1 || y == 0 || y == g.Height-1
}

// At returns the cell value at (x,y). The coordinate must be in bounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) int {
	return g.cells[y][x]
}

// IsLand reports whether the cell at (x,y) is land (value 0).
// Complexity: O(1).
func (g *Grid) IsLand(x, y int) bool {
	return g.cells[y][x] == Land
}

// IsWater reports whether the cell at (x,y) is water (value 1).
// Complexity: O(1).
func (g *Grid) IsWater(x, y int) bool {
	return g.cells[y][x] == Water
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// CellAt converts a row-major index into a Cell carrying its coordinates
// and stored value.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	x, y := g.Coordinate(idx)

	return Cell{X: x, Y: y, Value: g.cells[y][x]}
}
