package maze

// LocateStart returns the first corridor cell in the top row. The second
// return value is false when the row carries no corridor marker; callers
// must not run a search with the zero Cell in that case.
// Complexity: O(W).
func LocateStart(g *Grid) (Cell, bool) {
	for col := 0; col < g.cols; col++ {
		if g.cells[0][col] == Corridor {
			return Cell{Row: 0, Col: col}, true
		}
	}

	return Cell{}, false
}

// LocateGoal returns the last corridor cell in the bottom row, scanning
// right to left. The second return value is false when absent.
// Complexity: O(W).
func LocateGoal(g *Grid) (Cell, bool) {
	last := g.rows - 1
	for col := g.cols - 1; col >= 0; col-- {
		if g.cells[last][col] == Corridor {
			return Cell{Row: last, Col: col}, true
		}
	}

	return Cell{}, false
}
