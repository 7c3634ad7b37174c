// Package mazegen defines the generator configuration and sentinel
// errors.
package mazegen

import (
	"errors"
)

// Sentinel errors for Generate.
var (
	// ErrBadDimensions indicates a width or height too small to hold a
	// bordered interior.
	ErrBadDimensions = errors.New("mazegen: width and height must be at least 3")

	// ErrBadDifficulty indicates a difficulty outside [0,1].
	ErrBadDifficulty = errors.New("mazegen: difficulty must lie in [0,1]")
)

// Config holds the generation parameters. All fields are explicit; there
// is no ambient default state.
type Config struct {
	// Width and Height are the full grid dimensions, border included.
	Width, Height int

	// EnsureSolvable carves a guaranteed corridor between the start and
	// goal openings.
	EnsureSolvable bool

	// Difficulty is the interior wall probability, in [0,1]. 0 yields an
	// open field, 1 a solid block (plus the carved corridor when
	// EnsureSolvable is set).
	Difficulty float64
}

// DefaultConfig returns the documented defaults: a 10×10 grid, solvable,
// difficulty 0.5.
func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         10,
		EnsureSolvable: true,
		Difficulty:     0.5,
	}
}
