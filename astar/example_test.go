package astar_test

import (
	"fmt"

	"github.com/mazelab/mazelab/astar"
	"github.com/mazelab/mazelab/maze"
)

// ExampleSearch routes around a Cost4 cell: the rim costs four unit
// steps, going through the center would cost seven. Note the reported
// cost is the accumulated edge cost, not the five-cell path length.
func ExampleSearch() {
	g, _ := maze.Parse("c  \n 4 \n  c")

	res, _ := astar.Search(g, maze.Cell{Row: 0, Col: 0}, maze.Cell{Row: 2, Col: 2})
	fmt.Println(res.Cost)
	fmt.Println(len(res.Path))

	// Output:
	// 4
	// 5
}
