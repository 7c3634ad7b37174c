// Package dfs provides a stack-order (last-in-first-out) traversal of a
// maze grid from a start cell to a goal cell.
//
// What
//
//   - Search explores cells in discovery order: the most recently pushed
//     neighbor is expanded first.
//   - Frontier entries carry their full path from the start, so the first
//     entry to reach the goal yields the returned path directly.
//   - Neighbors are pushed unfiltered; a cell may sit on the stack several
//     times. The visited check happens at pop time, which is what prevents
//     infinite loops.
//   - The reported Cost is the path length in cells, not summed edge cost.
//     This deliberately differs from astar's accumulated-cost convention;
//     see Result.
//
// Why
//
//   - Demonstrates uninformed depth-first exploration: quick to find *a*
//     path, with no shortness or cost guarantee.
//
// Determinism
//
//	maze.Neighbors returns up, down, left, right in a fixed order, and the
//	stack expands the last-pushed neighbor first, so runs over the same
//	grid are fully reproducible.
//
// Complexity (V = cells, E = adjacencies)
//
//   - Time:   O(V + E) pops in the worst case; each push copies the path,
//     so the pathological bound is O(V·E).
//   - Memory: O(V) visited set plus frontier path storage.
//
// Errors
//
//   - ErrGridNil       if the grid pointer is nil.
//   - ErrInvalidStart  if start is out of bounds or a wall.
//   - ErrInvalidGoal   if goal is out of bounds or a wall.
//   - ErrOptionViolation for invalid options (e.g. negative MaxSteps).
//   - ErrStepLimit     if WithMaxSteps exhausts before an outcome.
//   - context.Canceled / DeadlineExceeded via WithContext.
//
// An unreachable goal is NOT an error: Search returns a Result with a nil
// Path and zero Cost.
package dfs
