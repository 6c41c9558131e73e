// Package islands implements flood-fill analyses over a grid.Grid:
// closed-island counting, full component discovery, and lake detection.
//
// What:
//
//   - Closed / ClosedRegions: land regions sealed off from the outer border
//     (the classic closed-island count).
//   - Components: every maximal land region, border-touching or not.
//   - Lakes: water regions fully enclosed by land.
//
// Why:
//
//   - Game maps: distinguish reachable coastline from landlocked pockets.
//   - Topology analysis: count islands, lakes, and sealed chambers.
//   - Procedural generation: validate that generated terrain has (or lacks)
//     enclosed regions.
//
// How closed-island discovery works:
//
//  1. Flood-fill from every land cell on the grid's outer border, consuming
//     all land with a path to the border. That land can never be closed.
//  2. Scan the strict interior; each still-unvisited land cell seeds one
//     flood fill, and each such fill is exactly one closed island.
//
// Every analysis allocates its own visited marker, never mutates the input
// grid, and is safe to run concurrently against a shared Grid.
//
// Complexity:
//
//   - Closed / ClosedRegions: O(W×H×d), Memory: O(W×H)   (d = 4 or 8 neighbors).
//   - Components:             O(W×H×d), Memory: O(W×H).
//   - Lakes:                  O(W×H×d), Memory: O(W×H).
//
// Options (Closed / ClosedRegions only):
//
//   - WithStrategy(DepthFirst | BreadthFirst): flood-fill discipline; the
//     result is identical either way, only in-region visit order differs.
//   - WithOnVisit(fn): per-cell hook over closed-island cells; error aborts.
//   - WithOnRegion(fn): per-island hook with row-major indices; error aborts.
//
// Errors:
//
//   - ErrNilGrid: a nil *grid.Grid was supplied.
//   - any error returned by OnVisit or OnRegion, wrapped with its position.
package islands
