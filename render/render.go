package render

import (
	"io"
	"strings"

	"github.com/mazelab/mazelab/maze"
)

// wallGlyph is the block character used for wall cells in the glyph view.
const wallGlyph = "▇"

// Fprint writes the glyph view of g to w, one line per row.
func Fprint(w io.Writer, g *maze.Grid) error {
	var b strings.Builder
	rows, cols := g.Dimensions()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.WriteString(glyph(g.Label(maze.Cell{Row: r, Col: c})))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// FprintRaw writes the raw label encoding of g to w — the same text
// maze.Parse accepts.
func FprintRaw(w io.Writer, g *maze.Grid) error {
	_, err := io.WriteString(w, g.String())

	return err
}

// FprintWithPath draws path over an independent copy of g and writes the
// glyph view. The grid passed in is never mutated.
func FprintWithPath(w io.Writer, g *maze.Grid, path []maze.Cell) error {
	return Fprint(w, g.Overlay(path))
}

// glyph maps a label to its display form.
func glyph(l maze.Label) string {
	switch l {
	case maze.Wall:
		return wallGlyph
	case maze.Open, maze.Corridor:
		return " "
	default:
		// Numbered-cost digits and the path mark render as themselves.
		return string(byte(l))
	}
}
