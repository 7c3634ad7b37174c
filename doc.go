// Package mazelab is a small playground for generating rectangular grid
// mazes and solving them with three classic graph-search strategies.
//
// 🚀 What is mazelab?
//
//	A pedagogical, single-process toolkit that brings together:
//		• maze/    — immutable label grid, neighbor/cost oracle, start/goal locator
//		• dfs/     — stack-order (last-in-first-out) traversal
//		• bfs/     — queue-order (first-in-first-out) traversal
//		• astar/   — cost+heuristic best-first traversal
//		• mazegen/ — randomized wall-carving maze generator
//		• render/  — glyph rendering with non-destructive path overlay
//
// ✨ Why mazelab?
//
//   - Side-by-side comparison — the same grid, the same start/goal, three
//     frontiers with different orderings and cost reports
//   - Deterministic — fixed neighbor order, seeded generation, total
//     tie-breaks in the priority search
//   - Honest about its quirks — dfs/bfs report path length as "cost" while
//     astar reports true accumulated edge cost; documented and tested
//     rather than papered over
//
// Quick ASCII view of a generated maze with an overlaid path:
//
//	▇▇▇ ▇▇▇▇▇▇
//	▇**3    2▇
//	▇▇*▇▇▇1 ▇▇
//	▇ **▇   4▇
//	▇▇▇*▇▇▇▇ ▇
//	▇  ****▇ ▇
//	▇▇▇▇▇▇*▇▇▇
//	▇ 1  2*4 ▇
//	▇ ▇▇▇▇*▇▇▇
//	▇▇▇▇▇▇ ▇▇▇
//
// Start with mazegen.Generate, then hand the grid to dfs.Search,
// bfs.Search, or astar.Search. See cmd/mazelab for the interactive driver.
package mazelab
