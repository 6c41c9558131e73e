package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCellValue indicates a cell value outside the {Land, Water} domain.
	ErrCellValue = errors.New("grid: cell values must be exactly 0 (land) or 1 (water)")
)
