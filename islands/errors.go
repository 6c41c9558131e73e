package islands

import "errors"

var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to any analysis.
	ErrNilGrid = errors.New("islands: grid is nil")
)
