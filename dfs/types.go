// Package dfs defines options, result types, and sentinel errors for the
// stack-order maze traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/mazelab/mazelab/maze"
)

// Sentinel errors for Search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrInvalidStart is returned when the start cell is out of bounds or a wall.
	ErrInvalidStart = errors.New("dfs: start cell out of bounds or not traversable")

	// ErrInvalidGoal is returned when the goal cell is out of bounds or a wall.
	ErrInvalidGoal = errors.New("dfs: goal cell out of bounds or not traversable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStepLimit is returned when WithMaxSteps is exhausted before the
	// search reaches the goal or empties its frontier.
	ErrStepLimit = errors.New("dfs: step budget exhausted")
)

// Option configures Search behavior via functional arguments. Invalid
// options are recorded internally and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize Search execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per pop.
	Ctx context.Context

	// OnVisit is called when a cell is expanded (popped unvisited).
	// Returning an error aborts the search and propagates it.
	OnVisit func(c maze.Cell) error

	// MaxSteps, if > 0, bounds the number of expansions before Search
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

// WithOnVisit registers a callback run on each expansion; returning an
// error from the callback stops the search.
func WithOnVisit(fn func(c maze.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSteps bounds the number of expansions.
//
//	n > 0:  stop with ErrStepLimit after n expansions
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
// Cost is the PATH LENGTH IN CELLS (len(Path)), not the summed edge cost.
// The convention is shared with bfs and intentionally differs from astar,
// which reports true accumulated cost.
type Result struct {
	// Path runs from start to goal inclusive; nil when the goal is
	// unreachable (a normal outcome, not an error).
	Path []maze.Cell

	// Cost is len(Path) as a float64, or 0 when Path is nil.
	Cost float64

	// Expanded counts cells actually expanded (popped unvisited);
	// a diagnostic for comparing strategies.
	Expanded int
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool {
	return r.Path != nil
}
