package astar_test

import (
	"testing"

	"github.com/mazelab/mazelab/astar"
	"github.com/mazelab/mazelab/maze"
	"github.com/mazelab/mazelab/mazegen"
)

// BenchmarkSearch_Generated measures astar over a seeded 60×40 maze with
// the default share of numbered-cost terrain.
func BenchmarkSearch_Generated(b *testing.B) {
	cfg := mazegen.Config{Width: 60, Height: 40, EnsureSolvable: true, Difficulty: 0.35}
	g, err := mazegen.Generate(cfg, mazegen.WithSeed(42))
	if err != nil {
		b.Fatalf("Generate error: %v", err)
	}
	start, _ := maze.LocateStart(g)
	goal, _ := maze.LocateGoal(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal)
	}
}

// BenchmarkSearch_CostHeavy raises the cost density so the frontier does
// more re-pricing work (no closed set, lazy requeueing).
func BenchmarkSearch_CostHeavy(b *testing.B) {
	cfg := mazegen.Config{Width: 40, Height: 40, EnsureSolvable: true, Difficulty: 0.25}
	g, err := mazegen.Generate(cfg, mazegen.WithSeed(11), mazegen.WithCostDensity(0.6))
	if err != nil {
		b.Fatalf("Generate error: %v", err)
	}
	start, _ := maze.LocateStart(g)
	goal, _ := maze.LocateGoal(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal)
	}
}
