package astar_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazelab/mazelab/astar"
	"github.com/mazelab/mazelab/bfs"
	"github.com/mazelab/mazelab/dfs"
	"github.com/mazelab/mazelab/maze"
)

// mustParse builds a grid from its text encoding or fails the test.
func mustParse(t *testing.T, s string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(s)
	require.NoError(t, err)

	return g
}

// pathCost sums the oracle cost along consecutive path pairs.
func pathCost(g *maze.Grid, path []maze.Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += maze.MoveCost(g, path[i-1], path[i])
	}

	return total
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestSearch_NilGrid(t *testing.T) {
	_, err := astar.Search(nil, maze.Cell{}, maze.Cell{})
	assert.ErrorIs(t, err, astar.ErrGridNil)
}

func TestSearch_InvalidEndpoints(t *testing.T) {
	g := mustParse(t, "cw\nwc\n")

	_, err := astar.Search(g, maze.Cell{Row: 0, Col: 1}, maze.Cell{Row: 1, Col: 1})
	assert.ErrorIs(t, err, astar.ErrInvalidStart)

	_, err = astar.Search(g, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 1, Col: 0})
	assert.ErrorIs(t, err, astar.ErrInvalidGoal)
}

func TestSearch_NegativeMaxSteps(t *testing.T) {
	g := mustParse(t, "c\nc\n")
	_, err := astar.Search(g, maze.Cell{}, maze.Cell{Row: 1}, astar.WithMaxSteps(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

//----------------------------------------------------------------------------//
// Traversal semantics
//----------------------------------------------------------------------------//

// TestSearch_ReferenceGrid pins the canonical 3×3 grid: four unit steps,
// cost 4 — the TRUE accumulated edge cost, not the path length 5 that dfs
// and bfs report on the same grid.
func TestSearch_ReferenceGrid(t *testing.T) {
	g := mustParse(t, "c w\n   \nw c\n")
	start, goal := maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 2, Col: 2}

	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 4.0, res.Cost)
	assert.Len(t, res.Path, 5)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, goal, res.Path[4])

	// Deterministic tie-break: the row-0 route wins among equal priorities.
	want := []maze.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}
	assert.Equal(t, want, res.Path)
}

// TestSearch_AvoidsExpensiveTerrain: a Cost4 cell in the center must be
// routed around when the rim is all unit cost.
func TestSearch_AvoidsExpensiveTerrain(t *testing.T) {
	g := mustParse(t, "c  \n 4 \n  c\n")
	start, goal := maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 2, Col: 2}

	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 4.0, res.Cost, "rim route: four unit steps")
	assert.NotContains(t, res.Path, maze.Cell{Row: 1, Col: 1}, "must detour around the Cost4 cell")
	assert.Equal(t, res.Cost, pathCost(g, res.Path), "reported cost must match the summed path cost")
}

// TestSearch_OptimalAgainstUninformed: astar's reported cost never
// exceeds the summed edge cost of whatever dfs and bfs find.
func TestSearch_OptimalAgainstUninformed(t *testing.T) {
	g := mustParse(t, ""+
		"cw   \n"+
		" 2 w \n"+
		" w31 \n"+
		"   w \n"+
		" w  c\n")
	start, _ := maze.LocateStart(g)
	goal, _ := maze.LocateGoal(g)

	ares, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, ares.Found())

	dres, err := dfs.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, dres.Found())

	bres, err := bfs.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, bres.Found())

	assert.LessOrEqual(t, ares.Cost, pathCost(g, dres.Path))
	assert.LessOrEqual(t, ares.Cost, pathCost(g, bres.Path))
	assert.Equal(t, ares.Cost, pathCost(g, ares.Path))
}

func TestSearch_UnreachableGoal(t *testing.T) {
	g := mustParse(t, "c  \nwww\nwwc\n")
	res, err := astar.Search(g, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 2, Col: 2})
	require.NoError(t, err, "unreachable goal is a normal outcome")
	assert.Nil(t, res.Path)
	assert.Zero(t, res.Cost)
}

// TestSearch_StartEqualsGoal pins the degenerate one-cell path: cost 0
// here (cost_so_far[start] = 0) where dfs/bfs report 1. Both conventions
// are by design.
func TestSearch_StartEqualsGoal(t *testing.T) {
	g := mustParse(t, "c\nc\n")
	c := maze.Cell{Row: 0, Col: 0}
	res, err := astar.Search(g, c, c)
	require.NoError(t, err)
	assert.Equal(t, []maze.Cell{c}, res.Path)
	assert.Zero(t, res.Cost)
}

// TestSearch_Deterministic runs the same search twice and requires
// byte-identical outcomes; the tie-break is total, so this must hold.
func TestSearch_Deterministic(t *testing.T) {
	g := mustParse(t, "c  1\n2 w \n 3 c\n")
	start, _ := maze.LocateStart(g)
	goal, _ := maze.LocateGoal(g)

	first, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	second, err := astar.Search(g, start, goal)
	require.NoError(t, err)

	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Expanded, second.Expanded)
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

func TestSearch_StepLimit(t *testing.T) {
	g := mustParse(t, "c    \n     \n    c\n")
	_, err := astar.Search(g, maze.Cell{}, maze.Cell{Row: 2, Col: 4}, astar.WithMaxSteps(1))
	assert.ErrorIs(t, err, astar.ErrStepLimit)
}

func TestSearch_ContextCancelled(t *testing.T) {
	g := mustParse(t, "c \n c\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.Search(g, maze.Cell{}, maze.Cell{Row: 1, Col: 1}, astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_OnVisitAbort(t *testing.T) {
	g := mustParse(t, "c \n c\n")
	boom := errors.New("boom")
	_, err := astar.Search(g, maze.Cell{}, maze.Cell{Row: 1, Col: 1},
		astar.WithOnVisit(func(maze.Cell) error { return boom }))
	assert.ErrorIs(t, err, boom)
}
