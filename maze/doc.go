// Package maze models a rectangular maze as an immutable grid of labeled
// cells and provides the neighbor/cost/heuristic oracle shared by every
// search strategy.
//
// What:
//
//   - Grid wraps a rectangular [][]Label table, deep-copied on construction.
//   - Cell is a (Row, Col) coordinate with value identity.
//   - Neighbors, MoveCost and Heuristic form the oracle consumed by the
//     dfs, bfs and astar packages.
//   - LocateStart / LocateGoal derive the search endpoints from corridor
//     markers in the first and last rows.
//   - Overlay produces an independent copy of a grid with a path drawn on
//     it; the canonical grid is never mutated.
//
// Why:
//
//   - One read-only grid can safely back any number of search runs.
//   - A fixed, documented neighbor order (up, down, left, right) makes
//     every traversal reproducible.
//
// Labels:
//
//   - Wall ('w'): impassable.
//   - Open (' '): traversable, unit cost.
//   - Corridor ('c'): traversable marker cell; start and goal candidates.
//   - Cost1..Cost4 ('1'..'4'): traversable with entry cost 1..4.
//   - PathMark ('*'): overlay-only, written by Overlay.
//
// Complexity:
//
//   - New/Parse/Clone/Overlay: O(W×H) time and memory.
//   - Label, InBounds, MoveCost, Heuristic: O(1).
//   - Neighbors: O(1) (at most four candidates).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownLabel: a cell holds a byte outside the label alphabet.
package maze
