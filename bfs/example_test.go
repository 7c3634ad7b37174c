package bfs_test

import (
	"fmt"

	"github.com/mazelab/mazelab/bfs"
	"github.com/mazelab/mazelab/maze"
)

// ExampleSearch solves the canonical 3×3 grid. FIFO order reaches the
// goal through the lower route; the cost is the path length in cells.
func ExampleSearch() {
	g, _ := maze.Parse("c w\n   \nw c")

	res, _ := bfs.Search(g, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 2, Col: 2})
	fmt.Println(res.Path)
	fmt.Println(res.Cost)

	// Output:
	// [{0 0} {1 0} {1 1} {2 1} {2 2}]
	// 5
}
