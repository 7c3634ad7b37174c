package maze

import (
	"fmt"
	"strings"
)

// Grid is a rectangular table of labeled cells. It is immutable once
// built: constructors deep-copy their input and no method mutates the
// receiver, so one Grid may safely back any number of concurrent reads.
type Grid struct {
	rows, cols int
	cells      [][]Label
}

// New constructs a Grid from a non-empty, rectangular 2D slice of labels.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrUnknownLabel if a value lies outside the label alphabet.
// Complexity: O(W×H) time and memory.
func New(cells [][]Label) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	copied := make([][]Label, rows)
	for r := 0; r < rows; r++ {
		if len(cells[r]) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(cells[r]), cols)
		}
		copied[r] = make([]Label, cols)
		for c, l := range cells[r] {
			if !l.valid() {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownLabel, byte(l), r, c)
			}
			copied[r][c] = l
		}
	}

	return &Grid{rows: rows, cols: cols, cells: copied}, nil
}

// Parse builds a Grid from its raw text encoding: one line per row, one
// label byte per cell. Leading/trailing newlines are ignored. Handy for
// tests and fixtures.
func Parse(s string) (*Grid, error) {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	cells := make([][]Label, len(lines))
	for r, line := range lines {
		cells[r] = make([]Label, len(line))
		for c := 0; c < len(line); c++ {
			cells[r][c] = Label(line[c])
		}
	}

	return New(cells)
}

// Dimensions returns the grid's row and column counts.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Must be checked before Label is called on a derived coordinate.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Label returns the label at c. The caller must ensure InBounds(c);
// out-of-range access is a programmer error and panics.
// Complexity: O(1).
func (g *Grid) Label(c Cell) Label {
	return g.cells[c.Row][c.Col]
}

// Clone returns a deep, independent copy of the grid.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([][]Label, g.rows)
	for r := 0; r < g.rows; r++ {
		cells[r] = make([]Label, g.cols)
		copy(cells[r], g.cells[r])
	}

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Overlay returns a new Grid with PathMark written at every cell of path.
// The receiver is never aliased or mutated; out-of-bounds path cells are
// ignored. Complexity: O(W×H + len(path)).
func (g *Grid) Overlay(path []Cell) *Grid {
	out := g.Clone()
	for _, c := range path {
		if out.InBounds(c) {
			out.cells[c.Row][c.Col] = PathMark
		}
	}

	return out
}

// String returns the raw text encoding of the grid, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteByte(byte(g.cells[r][c]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
