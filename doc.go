// Package islegrid is your in-memory toolkit for analyzing rectangular
// binary grids as island maps — closed islands, open components and
// enclosed lakes, all through flood-fill traversal.
//
// 🚀 What is islegrid?
//
//	A small, zero-dependency library that brings together:
//		• Core primitive: an immutable, validated binary Grid (0 = land, 1 = water)
//		• Connectivity: orthogonal (Conn4) or diagonal (Conn8) adjacency
//		• Closed islands: land regions sealed off from the outer border
//		• Components: every maximal land region, border-touching or not
//		• Lakes: water regions fully enclosed by land
//
// ✨ Why choose islegrid?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – inputs deep-copied, never mutated, fail-fast validation
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnVisit, OnRegion…) for custom logic
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/    — the fundamental Grid type: validation, bounds, adjacency offsets
//	islands/ — flood-fill analyses: Closed, ClosedRegions, Components, Lakes
//
// Quick ASCII example:
//
//	    1 1 1 1
//	    1 0 0 1
//	    1 0 0 1
//	    1 1 1 1
//
//	holds exactly one closed island: the 2×2 block of land in the middle.
//
// Dive into the package docs for complexity notes, error contracts, and
// runnable examples.
//
//	go get github.com/katalvlaran/islegrid
package islegrid
