package maze_test

import (
	"fmt"

	"github.com/mazelab/mazelab/maze"
)

// ExampleParse builds a grid from its text encoding, derives the search
// endpoints, and queries the oracle for the center cell's neighbors in
// the fixed up/down/left/right order.
func ExampleParse() {
	g, _ := maze.Parse("c w\n   \nw c")

	start, _ := maze.LocateStart(g)
	goal, _ := maze.LocateGoal(g)
	fmt.Println(start, goal)
	fmt.Println(maze.Neighbors(g, maze.Cell{Row: 1, Col: 1}))
	fmt.Println(maze.Heuristic(goal, start))

	// Output:
	// {0 0} {2 2}
	// [{0 1} {2 1} {1 0} {1 2}]
	// 4
}
