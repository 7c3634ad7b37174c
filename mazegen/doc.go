// Package mazegen produces populated maze grids by randomized wall
// carving.
//
// What:
//
//   - Generate builds a maze.Grid from an explicit Config: width, height,
//     wall density (Difficulty) and an EnsureSolvable switch.
//   - The output contract, which the search packages assume: a full wall
//     border with exactly one corridor opening in the top row (the start)
//     and one in the bottom row (the goal); interior cells are walls with
//     probability Difficulty, otherwise open; a fraction of open interior
//     cells carry Cost1..Cost4 terrain.
//   - When EnsureSolvable is set, a randomized monotone corridor is carved
//     between the two openings, so a queue-order search always succeeds.
//
// Determinism:
//
//	Seeding is explicit via WithSeed or WithRand; no hidden globals.
//	The same Config and seed always reproduce the same grid.
//
// Options:
//
//   - WithSeed(seed):      deterministic RNG from a seed.
//   - WithRand(r):         caller-supplied RNG (panics on nil).
//   - WithCostDensity(f):  fraction of open interior cells that become
//     numbered-cost terrain (panics outside [0,1]).
//
// Errors:
//
//   - ErrBadDimensions: width or height below 3 (no interior to carve).
//   - ErrBadDifficulty: difficulty outside [0,1].
//
// Complexity: O(W×H) time and memory.
package mazegen
