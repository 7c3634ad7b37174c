package mazegen

import (
	"fmt"
	"math/rand"

	"github.com/mazelab/mazelab/maze"
)

// Generate builds a maze grid from cfg, applying any number of functional
// Options. The result satisfies the contract the search packages assume:
// walled border, one corridor opening in the top row and one in the
// bottom row, and — when cfg.EnsureSolvable — a carved corridor joining
// the two.
//
// Returns ErrBadDimensions or ErrBadDifficulty for invalid parameters.
// Complexity: O(W×H).
func Generate(cfg Config, opts ...Option) (*maze.Grid, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, cfg.Width, cfg.Height)
	}
	if cfg.Difficulty < 0 || cfg.Difficulty > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadDifficulty, cfg.Difficulty)
	}
	gc := newGenConfig()
	for _, opt := range opts {
		opt(&gc)
	}

	rows, cols := cfg.Height, cfg.Width
	cells := make([][]maze.Label, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]maze.Label, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = maze.Wall
		}
	}

	// Interior: wall with probability Difficulty, otherwise open terrain
	// that may carry a numbered cost.
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			if gc.rng.Float64() < cfg.Difficulty {
				continue // stays a wall
			}
			cells[r][c] = rollTerrain(gc.rng, gc.costDensity)
		}
	}

	// One opening per border row: start on top, goal on bottom.
	startCol := 1 + gc.rng.Intn(cols-2)
	goalCol := 1 + gc.rng.Intn(cols-2)
	cells[0][startCol] = maze.Corridor
	cells[rows-1][goalCol] = maze.Corridor

	if cfg.EnsureSolvable {
		carve(cells, gc.rng, startCol, goalCol)
	}

	return maze.New(cells)
}

// rollTerrain returns the label for a non-wall interior cell: mostly
// Open, occasionally a Cost1..Cost4 digit.
func rollTerrain(rng *rand.Rand, costDensity float64) maze.Label {
	if rng.Float64() < costDensity {
		return maze.Cost1 + maze.Label(rng.Intn(4))
	}

	return maze.Open
}

// carve opens a randomized monotone corridor from the cell below the
// start opening to the cell above the goal opening. Rows only ever
// advance and columns only ever step toward the goal column, so the walk
// always terminates. Cells already holding traversable terrain are left
// as they are.
func carve(cells [][]maze.Label, rng *rand.Rand, startCol, goalCol int) {
	rows := len(cells)
	cur := maze.Cell{Row: 1, Col: startCol}
	target := maze.Cell{Row: rows - 2, Col: goalCol}

	open(cells, cur)
	for cur != target {
		switch {
		case cur.Col == target.Col:
			cur.Row++
		case cur.Row == target.Row:
			cur.Col += sign(target.Col - cur.Col)
		case rng.Intn(2) == 0:
			cur.Row++
		default:
			cur.Col += sign(target.Col - cur.Col)
		}
		open(cells, cur)
	}
}

// open clears a wall; numbered-cost and corridor cells stay untouched.
func open(cells [][]maze.Label, c maze.Cell) {
	if cells[c.Row][c.Col] == maze.Wall {
		cells[c.Row][c.Col] = maze.Open
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}

	return 1
}
