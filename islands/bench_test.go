package islands_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/islegrid/grid"
	"github.com/katalvlaran/islegrid/islands"
)

// randomGrid builds an n×n grid of 0/1 values from a fixed seed.
func randomGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(2)
		}
		values[y] = row
	}
	g, err := grid.New(values, grid.DefaultOptions())
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}

	return g
}

// BenchmarkClosed measures closed-island counting on a randomly generated
// 1000×1000 grid. Complexity: O(W×H×d)
func BenchmarkClosed(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := islands.Closed(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClosed_BreadthFirst measures the same analysis with a queue
// frontier, to compare frontier disciplines.
func BenchmarkClosed_BreadthFirst(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := islands.Closed(g, islands.WithStrategy(islands.BreadthFirst)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComponents measures full component discovery on the same grid.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := islands.Components(g); err != nil {
			b.Fatal(err)
		}
	}
}
