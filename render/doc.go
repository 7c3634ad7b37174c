// Package render prints maze grids and search paths to an io.Writer.
//
// What:
//
//   - Fprint writes the glyph view: walls as full-height blocks, open and
//     corridor cells as spaces, numbered-cost terrain as its digit, path
//     overlay as '*'.
//   - FprintRaw writes the raw label bytes, one line per row — the exact
//     Parse encoding, handy for fixtures and bug reports.
//   - FprintWithPath overlays a path and prints the glyph view. The
//     overlay is drawn on an independent copy; the canonical grid handed
//     in is never mutated and stays safe for further searches.
//
// Why:
//
//   - Presentation is the only mutation-shaped operation in the system,
//     so it is quarantined here and forced through maze.Grid.Overlay's
//     copy semantics.
package render
