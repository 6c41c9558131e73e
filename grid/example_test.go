// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/islegrid/grid"
)

// ExampleNew demonstrates constructing a validated grid and probing cells.
// The input is deep-copied: mutating values afterwards cannot affect g.
func ExampleNew() {
	values := [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	g, err := grid.New(values, grid.DefaultOptions())
	if err != nil {
		fmt.Println("invalid grid:", err)

		return
	}

	fmt.Println("size:", g.Width, "×", g.Height)
	fmt.Println("center is land:", g.IsLand(1, 1))
	fmt.Println("center on border:", g.OnBorder(1, 1))

	// Ragged input fails fast.
	_, err = grid.New([][]int{{0, 1}, {0}}, grid.DefaultOptions())
	fmt.Println("ragged:", err)

	// Output:
	// size: 3 × 3
	// center is land: true
	// center on border: false
	// ragged: grid: all rows must have the same length
}
