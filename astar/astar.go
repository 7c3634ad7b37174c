package astar

import (
	"container/heap"
	"fmt"

	"github.com/mazelab/mazelab/maze"
)

// Search runs a cost+heuristic best-first traversal on g from start to
// goal, applying any number of functional Options. When the goal is
// reachable, Result.Cost is the minimum accumulated edge cost over all
// start→goal paths (the Manhattan heuristic is admissible and the
// per-cell costs are ≥ 1).
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

	r := &runner{
		grid:      g,
		opts:      o,
		goal:      goal,
		costSoFar: map[maze.Cell]float64{start: 0},
		res:       &Result{},
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{priority: 0, cell: start, path: []maze.Cell{start}})

	return r.process()
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	grid      *maze.Grid
	opts      Options
	goal      maze.Cell
	costSoFar map[maze.Cell]float64 // best known cumulative cost per cell; only ever decreases
	pq        entryPQ
	res       *Result
}

// process extracts minimum-priority entries until the goal is reached or
// the frontier empties.
//
// Note there is no closed set: a cell may be extracted more than once.
// Stale extractions are harmless — every push passed the strict
// cost-improvement check, and the admissible, consistent heuristic
// guarantees the first goal extraction carries the optimal cost.
func (r *runner) process() (*Result, error) {
	for r.pq.Len() > 0 {
		// cancellation check (once per extraction)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		e := heap.Pop(&r.pq).(*entry)
		r.res.Expanded++
		if r.opts.MaxSteps > 0 && r.res.Expanded > r.opts.MaxSteps {
			return nil, ErrStepLimit
		}
		if err := r.opts.OnVisit(e.cell); err != nil {
			return nil, fmt.Errorf("astar: OnVisit error at %+v: %w", e.cell, err)
		}

		if e.cell == r.goal {
			r.res.Path = e.path
			r.res.Cost = r.costSoFar[e.cell]

			return r.res, nil
		}

		r.relax(e)
	}

	// Frontier exhausted: the goal is unreachable.
	return r.res, nil
}

// relax prices each neighbor of e.cell and queues the ones reached
// strictly cheaper than any earlier path to them.
func (r *runner) relax(e *entry) {
	for _, nbr := range maze.Neighbors(r.grid, e.cell) {
		candidate := r.costSoFar[e.cell] + maze.MoveCost(r.grid, e.cell, nbr)
		if best, seen := r.costSoFar[nbr]; seen && candidate >= best {
			continue
		}
		r.costSoFar[nbr] = candidate
		heap.Push(&r.pq, &entry{
			priority: candidate + maze.Heuristic(r.goal, nbr),
			cell:     nbr,
			path:     extend(e.path, nbr),
		})
	}
}

// extend returns a fresh path slice ending in next; frontier entries must
// never share backing arrays.
func extend(path []maze.Cell, next maze.Cell) []maze.Cell {
	out := make([]maze.Cell, len(path)+1)
	copy(out, path)
	out[len(path)] = next

	return out
}

// entry is a frontier candidate ordered by priority, with a total
// deterministic tie-break.
type entry struct {
	priority float64
	cell     maze.Cell
	path     []maze.Cell
}

// entryPQ is a min-heap of *entry using the lazy-requeue pattern: cheaper
// rediscoveries push new entries instead of decreasing keys in place.
type entryPQ []*entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by ascending priority; ties fall back to cell row, cell
// column, then lexicographic path order, so the ordering is total and
// equal-priority extraction is deterministic.
func (pq entryPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.cell.Row != b.cell.Row {
		return a.cell.Row < b.cell.Row
	}
	if a.cell.Col != b.cell.Col {
		return a.cell.Col < b.cell.Col
	}

	return comparePaths(a.path, b.path) < 0
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(*entry)) }

// Pop removes and returns the last element; heap.Pop surfaces the minimum.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// comparePaths orders paths lexicographically by (Row, Col) elements,
// with a shorter strict prefix ordered first.
func comparePaths(a, b []maze.Cell) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Row != b[i].Row {
			if a[i].Row < b[i].Row {
				return -1
			}

			return 1
		}
		if a[i].Col != b[i].Col {
			if a[i].Col < b[i].Col {
				return -1
			}

			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}
