package bfs

import (
	"fmt"

	"github.com/mazelab/mazelab/maze"
)

// queueItem pairs a frontier cell with the full path that discovered it.
type queueItem struct {
	cell maze.Cell
	path []maze.Cell
}

// walker encapsulates mutable traversal state.
type walker struct {
	grid    *maze.Grid
	opts    Options
	goal    maze.Cell
	queue   []queueItem
	visited map[maze.Cell]struct{}
	res     *Result
}

// Search runs a queue-order traversal on g from start to goal, applying
// any number of functional Options. When the goal is reachable, the
// returned path has the fewest edges of any start→goal path.
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
		queue:   []queueItem{{cell: start, path: []maze.Cell{start}}},
		visited: make(map[maze.Cell]struct{}),
		res:     &Result{},
	}

	return w.loop()
}

// loop dequeues items until the goal is found or the queue empties.
func (w *walker) loop() (*Result, error) {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// FIFO: take the oldest item.
		item := w.queue[0]
		w.queue = w.queue[1:]

		// Stale items are discarded without re-checking the goal; the
		// goal test belongs to a cell's first (and only) expansion.
		if _, seen := w.visited[item.cell]; seen {
			continue
		}

		if item.cell == w.goal {
			w.res.Path = item.path
			w.res.Cost = float64(len(item.path))

			return w.res, nil
		}

		w.visited[item.cell] = struct{}{}
		w.res.Expanded++
		if w.opts.MaxSteps > 0 && w.res.Expanded > w.opts.MaxSteps {
			return nil, ErrStepLimit
		}
		if err := w.opts.OnVisit(item.cell); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %+v: %w", item.cell, err)
		}

		// Enqueue every neighbor, unfiltered by visited status;
		// duplicates are resolved at dequeue time.
		for _, nbr := range maze.Neighbors(w.grid, item.cell) {
			w.queue = append(w.queue, queueItem{cell: nbr, path: extend(item.path, nbr)})
		}
	}

	// Frontier exhausted: the goal is unreachable.
	return w.res, nil
}

// extend returns a fresh path slice ending in next; frontier items must
// never share backing arrays.
func extend(path []maze.Cell, next maze.Cell) []maze.Cell {
	out := make([]maze.Cell, len(path)+1)
	copy(out, path)
	out[len(path)] = next

	return out
}
