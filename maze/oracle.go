package maze

// neighborOffsets lists the four orthogonal moves in the fixed traversal
// order: up, down, left, right. Search reproducibility depends on this
// order, so it must not be reshuffled.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the orthogonally adjacent cells of c that are in
// bounds and not walls, always in the order up, down, left, right.
// Calling it twice on the same (grid, cell) yields identical sequences.
// Complexity: O(1) — at most four candidates.
func Neighbors(g *Grid, c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) && g.Label(n).Traversable() {
			out = append(out, n)
		}
	}

	return out
}

// MoveCost returns the cost of moving from one cell into to. The base
// cost is the digit value for Cost1..Cost4 and 1 for any other non-wall
// label. A move differing in both coordinates carries a +0.5 surcharge;
// Neighbors never produces such a pair under orthogonal connectivity,
// but the surcharge keeps MoveCost correct for diagonal callers.
// Complexity: O(1).
func MoveCost(g *Grid, from, to Cell) float64 {
	base := 1.0
	switch l := g.Label(to); l {
	case Cost1, Cost2, Cost3, Cost4:
		base = float64(l - '0')
	}
	if from.Row != to.Row && from.Col != to.Col {
		base += 0.5
	}

	return base
}

// Heuristic returns the Manhattan distance from c to goal. It never
// overestimates the true remaining cost over a grid whose orthogonal
// steps cost at least 1, so the priority search stays optimal.
// Complexity: O(1).
func Heuristic(goal, c Cell) float64 {
	return float64(abs(goal.Row-c.Row) + abs(goal.Col-c.Col))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
