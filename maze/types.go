// Package maze defines core types and sentinel errors for the maze grid
// model consumed by the dfs, bfs and astar packages.
package maze

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownLabel indicates a cell value outside the label alphabet.
	ErrUnknownLabel = errors.New("maze: unknown cell label")
)

// Cell is a grid coordinate. Cells compare by value and carry no state,
// so they are safe to use as map keys and frontier entries.
type Cell struct {
	Row, Col int
}

// Label is the semantic content of a single grid cell. The underlying
// byte values double as the raw text encoding, so parsing and raw
// rendering are identity maps.
type Label byte

const (
	// Wall is an impassable cell.
	Wall Label = 'w'
	// Open is a traversable cell with unit entry cost.
	Open Label = ' '
	// Corridor is a traversable marker cell; corridor cells in the first
	// and last rows are the start and goal candidates.
	Corridor Label = 'c'

	// Cost1 through Cost4 are traversable cells whose entry cost equals
	// their digit value.
	Cost1 Label = '1'
	Cost2 Label = '2'
	Cost3 Label = '3'
	Cost4 Label = '4'

	// PathMark is written by Overlay to draw a path; it never appears in
	// a freshly generated grid.
	PathMark Label = '*'
)

// Traversable reports whether a search may enter a cell with this label.
func (l Label) Traversable() bool {
	return l != Wall
}

// valid reports whether l belongs to the label alphabet.
func (l Label) valid() bool {
	switch l {
	case Wall, Open, Corridor, Cost1, Cost2, Cost3, Cost4, PathMark:
		return true
	}

	return false
}
