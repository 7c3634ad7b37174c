// Package astar provides a cost+heuristic best-first traversal of a maze
// grid from a start cell to a goal cell.
//
// What
//
//   - Search expands frontier entries in ascending order of
//     priority = cost-so-far + Manhattan heuristic to the goal.
//   - A monotone cost-so-far map records the best known cumulative cost
//     per cell; a neighbor is (re)queued only when a strictly cheaper
//     path to it is found.
//   - There is NO separate closed set: a cell popped a second time is not
//     rejected outright, it is only implicitly guarded by the push-time
//     cost check. Since the heuristic is admissible and consistent the
//     search still terminates with an optimal cost, at the price of some
//     redundant work. This is a deliberate, preserved variant; do not
//     "optimize" it into textbook A* without re-pinning the tie-break
//     dependent tests.
//   - The reported Cost is the TRUE accumulated edge cost, unlike dfs and
//     bfs which report path length in cells.
//
// Determinism
//
//	Equal-priority entries are ordered by cell row, then cell column,
//	then lexicographic path comparison — a total order, so runs over the
//	same grid are fully reproducible.
//
// Complexity (V = cells, E = adjacencies)
//
//   - Time:   O((V + E) log V) heap operations in the usual case; path
//     copies add up to O(V) per push.
//   - Memory: O(V + E) for the cost map and lazily grown heap.
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
package astar
