// Package grid defines the core rectangular binary grid used by the
// islegrid analyses: an immutable 2D map of land (0) and water (1) cells.
//
// What:
//
//   - Grid wraps a rectangular [][]int of cell values 0 (land) or 1 (water).
//   - Construction deep-copies and validates the input (fail-fast on empty,
//     ragged, or out-of-domain grids).
//   - Provides O(1) bounds checks, border checks, row-major index math, and
//     precomputed neighbor offsets for Conn4 or Conn8 adjacency.
//
// Why:
//
//   - Game maps: land/water topology with a single authoritative encoding.
//   - Region analysis: a safe, shared substrate for flood-fill algorithms.
//   - Immutability: analyses can run repeatedly and concurrently on one Grid.
//
// Complexity:
//
//   - New:               O(W×H) time and memory (validation + deep copy).
//   - All accessors:     O(1).
//
// Options:
//
//   - Options.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellValue: a cell holds a value other than 0 or 1.
package grid
