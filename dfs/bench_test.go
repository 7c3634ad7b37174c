package dfs_test

import (
	"testing"

	"github.com/mazelab/mazelab/dfs"
	"github.com/mazelab/mazelab/maze"
	"github.com/mazelab/mazelab/mazegen"
)

// BenchmarkSearch_Generated measures dfs over a seeded 60×40 maze.
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
		_, _ = dfs.Search(g, start, goal)
	}
}

// BenchmarkSearch_OpenField measures dfs on a wall-free interior, the
// worst case for undirected wandering.
func BenchmarkSearch_OpenField(b *testing.B) {
	cfg := mazegen.Config{Width: 50, Height: 50, EnsureSolvable: true, Difficulty: 0}
	g, err := mazegen.Generate(cfg, mazegen.WithSeed(7))
	if err != nil {
		b.Fatalf("Generate error: %v", err)
	}
	start, _ := maze.LocateStart(g)
	goal, _ := maze.LocateGoal(g)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Search(g, start, goal)
	}
}
