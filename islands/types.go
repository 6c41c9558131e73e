// Package islands defines types and options for flood-fill grid analyses,
// including traversal strategy selection and per-cell / per-region hooks.
package islands

import (
	"github.com/katalvlaran/islegrid/grid"
)

// Strategy selects the flood-fill discipline. Both strategies visit the
// same cells and produce the same regions; only the in-region visit order
// differs, and no caller may rely on that order.
type Strategy int

const (
	// DepthFirst floods with an explicit stack (LIFO frontier).
	DepthFirst Strategy = iota
	// BreadthFirst floods with a queue (FIFO frontier).
	BreadthFirst
)

// Option configures optional behavior of closed-island discovery.
// Use with Closed(g, opts...) or ClosedRegions(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for closed-island discovery.
// It controls the flood-fill strategy and observation hooks.
// Complexity remains O(W×H) when hooks are O(1).
type Options struct {
	// Strategy chooses the flood-fill frontier discipline.
	// Default is DepthFirst.
	Strategy Strategy

	// OnVisit, if non-nil, is invoked for every cell of every closed island,
	// in flood order. Cells consumed by the border pass are internal and are
	// never reported. Returning an error aborts discovery with that error.
	OnVisit func(c grid.Cell) error

	// OnRegion, if non-nil, is invoked once per completed closed island with
	// the region's row-major cell indices. Returning an error aborts
	// discovery with that error.
	OnRegion func(cells []int) error
}

// DefaultOptions returns an Options struct with:
//   - DepthFirst flood fill
//   - no hooks
func DefaultOptions() Options {
	return Options{
		Strategy: DepthFirst,
		OnVisit:  nil,
		OnRegion: nil,
	}
}

// WithStrategy returns an Option that selects the flood-fill discipline.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnVisit returns an Option that installs fn as a per-cell hook.
// The hook fires when a closed-island cell is visited.
func WithOnVisit(fn func(c grid.Cell) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnRegion returns an Option that installs fn as a per-region hook.
// The hook fires after a closed island has been fully collected.
func WithOnRegion(fn func(cells []int) error) Option {
	return func(o *Options) {
		o.OnRegion = fn
	}
}
