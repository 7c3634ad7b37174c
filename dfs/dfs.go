package dfs

import (
	"fmt"

	"github.com/mazelab/mazelab/maze"
)

// frame pairs a frontier cell with the full path that discovered it.
type frame struct {
	cell maze.Cell
	path []maze.Cell
}

// walker encapsulates mutable traversal state.
type walker struct {
	grid    *maze.Grid
	opts    Options
	goal    maze.Cell
	stack   []frame
	visited map[maze.Cell]struct{}
	res     *Result
}

// Search runs a stack-order traversal on g from start to goal, applying
// any number of functional Options.
//
// Returns ErrGridNil, ErrInvalidStart or ErrInvalidGoal for invalid
// input, ErrOptionViolation for bad options, ErrStepLimit when the step
// budget runs out, a context error on cancellation, or any user-supplied
// hook error. An unreachable goal is a normal outcome: Result.Path is nil
// and Result.Cost is 0.
func Search(g *maze.Grid, start, goal maze.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) || !g.Label(start).Traversable() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidStart, start)
	}
	if !g.InBounds(goal) || !g.Label(goal).Traversable() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidGoal, goal)
	}

	w := &walker{
		grid:    g,
		opts:    o,
		goal:    goal,
		stack:   []frame{{cell: start, path: []maze.Cell{start}}},
		visited: make(map[maze.Cell]struct{}),
		res:     &Result{},
	}

	return w.loop()
}

// loop pops frames until the goal is found or the stack empties.
func (w *walker) loop() (*Result, error) {
	for len(w.stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// LIFO: take the most recently pushed frame.
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// Stale frames are discarded without re-checking the goal; the
		// goal test belongs to a cell's first (and only) expansion.
		if _, seen := w.visited[top.cell]; seen {
			continue
		}

		if top.cell == w.goal {
			w.res.Path = top.path
			w.res.Cost = float64(len(top.path))

			return w.res, nil
		}

		w.visited[top.cell] = struct{}{}
		w.res.Expanded++
		if w.opts.MaxSteps > 0 && w.res.Expanded > w.opts.MaxSteps {
			return nil, ErrStepLimit
		}
		if err := w.opts.OnVisit(top.cell); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit error at %+v: %w", top.cell, err)
		}

		// Push every neighbor, unfiltered by visited status; duplicates
		// are resolved at pop time.
		for _, nbr := range maze.Neighbors(w.grid, top.cell) {
			w.stack = append(w.stack, frame{cell: nbr, path: extend(top.path, nbr)})
		}
	}

	// Frontier exhausted: the goal is unreachable.
	return w.res, nil
}

// extend returns a fresh path slice ending in next; frontier frames must
// never share backing arrays.
func extend(path []maze.Cell, next maze.Cell) []maze.Cell {
	out := make([]maze.Cell, len(path)+1)
	copy(out, path)
	out[len(path)] = next

	return out
}
