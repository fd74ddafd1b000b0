package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/search"
)

// ExampleUCS contrasts the fewest-action path with the cheapest one.
func ExampleUCS() {
	bfs, _ := search.BFS[string](diamond())
	ucs, _ := search.UCS[string](diamond())
	fmt.Println("bfs:", bfs.Actions, bfs.Cost)
	fmt.Println("ucs:", ucs.Actions, ucs.Cost)
	// Output:
	// bfs: [a g3] 6
	// ucs: [a c d g2] 4
}

// ExampleAStar shows a consistent heuristic cutting expansions while
// keeping the optimal cost.
func ExampleAStar() {
	ucs, _ := search.UCS[string](diamond())
	astar, _ := search.AStar[string](diamond(), diamondH)
	fmt.Println(astar.Actions, astar.Cost == ucs.Cost, astar.Expanded <= ucs.Expanded)
	// Output:
	// [a c d g2] true true
}
