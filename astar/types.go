// Package astar defines options, result types, and sentinel errors for
// the cost+heuristic best-first maze traversal.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/mazelab/mazelab/maze"
)

// Sentinel errors for Search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrInvalidStart is returned when the start cell is out of bounds or a wall.
	ErrInvalidStart = errors.New("astar: start cell out of bounds or not traversable")

	// ErrInvalidGoal is returned when the goal cell is out of bounds or a wall.
	ErrInvalidGoal = errors.New("astar: goal cell out of bounds or not traversable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrStepLimit is returned when WithMaxSteps is exhausted before the
	// search reaches the goal or empties its frontier.
	ErrStepLimit = errors.New("astar: step budget exhausted")
)

// Option configures Search behavior via functional arguments. Invalid
// options are recorded internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per extraction.
	Ctx context.Context

	// OnVisit is called when an entry is extracted from the frontier.
	// Returning an error aborts the search and propagates it.
	OnVisit func(c maze.Cell) error

	// MaxSteps, if > 0, bounds the number of extractions before Search
	// gives up with ErrStepLimit. A value of 0 disables the limit.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no-op OnVisit, no step limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(maze.Cell) error { return nil },
		MaxSteps: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on each extraction; returning an
// error from the callback stops the search.
func WithOnVisit(fn func(c maze.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSteps bounds the number of extractions.
//
//	n > 0:  stop with ErrStepLimit after n extractions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result holds the outcome of a traversal.
//
// Cost is the TRUE ACCUMULATED EDGE COST of Path — contrast with dfs and
// bfs, which report path length in cells. In particular, when start
// equals goal astar reports cost 0 where dfs/bfs report 1.
type Result struct {
	// Path runs from start to goal inclusive; nil when the goal is
	// unreachable (a normal outcome, not an error).
	Path []maze.Cell

	// Cost is the summed oracle cost along Path, or 0 when Path is nil.
	Cost float64

	// Expanded counts frontier extractions, stale re-pops included.
	Expanded int
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool {
	return r.Path != nil
}
