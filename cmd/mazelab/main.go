// Command mazelab generates a random maze and solves it three ways:
// stack-order (dfs), queue-order (bfs) and cost-informed best-first
// (astar), reporting path length, cost and elapsed time for each.
//
// Width, height and difficulty are read interactively with defaults
// applied on blank input; -seed pins the generator for reproducible runs.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mazelab/mazelab/astar"
	"github.com/mazelab/mazelab/bfs"
	"github.com/mazelab/mazelab/dfs"
	"github.com/mazelab/mazelab/maze"
	"github.com/mazelab/mazelab/mazegen"
	"github.com/mazelab/mazelab/render"
)

var log = logrus.New()

// errInvalidInput marks user input that failed numeric parsing; it is
// reported and the process exits cleanly rather than crashing.
var errInvalidInput = errors.New("invalid input")

func main() {
	// Outermost boundary: unexpected internal failures surface as a
	// generic diagnostic; no partial results are trusted after one.
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("an unexpected error occurred: %v", r)
			os.Exit(1)
		}
	}()

	seed := flag.Int64("seed", 0, "generator seed; 0 picks a random one")
	flag.Parse()

	if err := run(*seed); err != nil {
		if errors.Is(err, errInvalidInput) {
			fmt.Println("Invalid input. Please enter a valid number.")
			return
		}
		log.Errorf("mazelab: %v", err)
		os.Exit(1)
	}
}

func run(seed int64) error {
	cfg := mazegen.DefaultConfig()
	in := bufio.NewReader(os.Stdin)

	width, err := promptInt(in, "Enter the width of the maze", cfg.Width)
	if err != nil {
		return err
	}
	height, err := promptInt(in, "Enter the height of the maze", cfg.Height)
	if err != nil {
		return err
	}
	difficulty, err := promptFloat(in, "Enter the difficulty of the maze (0.0 - 1.0)", cfg.Difficulty)
	if err != nil {
		return err
	}
	cfg.Width, cfg.Height, cfg.Difficulty = width, height, difficulty

	var opts []mazegen.Option
	if seed != 0 {
		opts = append(opts, mazegen.WithSeed(seed))
	}
	grid, err := mazegen.Generate(cfg, opts...)
	if err != nil {
		return err
	}

	fmt.Println("Maze:")
	if err = render.Fprint(os.Stdout, grid); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Raw Maze:")
	if err = render.FprintRaw(os.Stdout, grid); err != nil {
		return err
	}

	start, ok := maze.LocateStart(grid)
	if !ok {
		return errors.New("malformed grid: no start marker in the top row")
	}
	goal, ok := maze.LocateGoal(grid)
	if !ok {
		return errors.New("malformed grid: no goal marker in the bottom row")
	}
	fmt.Printf("Start State: (%d, %d)\n", start.Row, start.Col)
	fmt.Printf("Goal State: (%d, %d)\n\n", goal.Row, goal.Col)

	searches := []struct {
		name string
		run  func() ([]maze.Cell, float64, error)
	}{
		{"DFS", func() ([]maze.Cell, float64, error) {
			res, serr := dfs.Search(grid, start, goal)
			if serr != nil {
				return nil, 0, serr
			}
			return res.Path, res.Cost, nil
		}},
		{"BFS", func() ([]maze.Cell, float64, error) {
			res, serr := bfs.Search(grid, start, goal)
			if serr != nil {
				return nil, 0, serr
			}
			return res.Path, res.Cost, nil
		}},
		{"A*", func() ([]maze.Cell, float64, error) {
			res, serr := astar.Search(grid, start, goal)
			if serr != nil {
				return nil, 0, serr
			}
			return res.Path, res.Cost, nil
		}},
	}

	for _, s := range searches {
		began := time.Now()
		path, cost, serr := s.run()
		elapsed := time.Since(began)
		if serr != nil {
			return fmt.Errorf("%s failed: %w", s.name, serr)
		}
		if path == nil {
			// Normal terminal outcome, not an error.
			fmt.Printf("%s: goal not reachable (%v)\n\n", s.name, elapsed)
			continue
		}
		fmt.Printf("%s path length: %d\n", s.name, len(path))
		fmt.Printf("%s cost: %v\n", s.name, cost)
		fmt.Printf("%s time: %v\n", s.name, elapsed)
		if err = render.FprintWithPath(os.Stdout, grid, path); err != nil {
			return err
		}
		fmt.Println()
	}

	return nil
}

// promptInt reads an integer with a default applied on blank input.
func promptInt(in *bufio.Reader, label string, def int) (int, error) {
	raw, err := prompt(in, label, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidInput, raw)
	}

	return v, nil
}

// promptFloat reads a float with a default applied on blank input.
func promptFloat(in *bufio.Reader, label string, def float64) (float64, error) {
	raw, err := prompt(in, label, strconv.FormatFloat(def, 'g', -1, 64))
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidInput, raw)
	}

	return v, nil
}

// prompt prints the label and reads one trimmed line; EOF counts as
// blank so piped input with missing answers falls back to defaults.
func prompt(in *bufio.Reader, label, def string) (string, error) {
	fmt.Printf("%s (default is %s): ", label, def)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", nil
	}

	return strings.TrimSpace(line), nil
}
