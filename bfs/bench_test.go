package bfs_test

import (
	"testing"

	"github.com/mazelab/mazelab/bfs"
	"github.com/mazelab/mazelab/maze"
	"github.com/mazelab/mazelab/mazegen"
)

// BenchmarkSearch_Generated measures bfs over a seeded 60×40 maze.
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
		_, _ = bfs.Search(g, start, goal)
	}
}
