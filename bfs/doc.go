// Package bfs provides a queue-order (first-in-first-out) traversal of a
// maze grid from a start cell to a goal cell.
//
// What
//
//   - Search explores cells in non-decreasing distance (edge count) from
//     the start, so the first path to reach the goal is a shortest path
//     by edge count over the unweighted adjacency.
//   - Frontier entries carry their full path from the start.
//   - Neighbors are enqueued unfiltered; a cell may sit in the queue
//     several times. The visited check happens at dequeue time, matching
//     the dfs policy.
//   - The reported Cost is the path length in cells, the same convention
//     as dfs and intentionally different from astar's accumulated cost.
//
// Why
//
//   - Demonstrates uninformed breadth-first exploration: guaranteed
//     fewest-edges path, blind to per-cell traversal costs.
//
// Complexity (V = cells, E = adjacencies)
//
//   - Time:   O(V + E) dequeues; each enqueue copies the path, so the
//     pathological bound is O(V·E).
//   - Memory: O(V) visited set plus frontier path storage.
//
// Errors
//
//   - ErrGridNil, ErrInvalidStart, ErrInvalidGoal for invalid input.
//   - ErrOptionViolation for invalid options.
//   - ErrStepLimit when WithMaxSteps exhausts.
//   - context errors via WithContext.
//
// An unreachable goal is NOT an error: Search returns a Result with a nil
// Path and zero Cost.
package bfs
