// Package lvsearch is a small state-space search toolkit: one frontier loop
// that runs depth-first, breadth-first, uniform-cost and A* search over any
// problem with comparable states, plus a set of grid-maze problems and
// heuristics to drive it.
//
// What is inside?
//
//	frontier/ - Stack, Queue and a FIFO-stable PriorityQueue (generic)
//	search/   - Problem contract, DFS/BFS/UCS/A*, Result, options
//	grid/     - Cell, Direction, immutable bit Grid, text Layout parser
//	maze/     - position, corners, food and any-food problems; Manhattan,
//	            Euclidean, greedy-corners, farthest-pair and MST heuristics;
//	            MazeDistance and the ClosestDots planner
//	registry/ - closed algorithm/heuristic/problem names, YAML Config and a
//	            Planner with logging and OpenTelemetry metrics
//	logging/  - bolt-backed structured logger and field helpers
//
// Graph-search semantics shared by every strategy:
//
//   - a state is expanded at most once per call; duplicates are skipped
//     when popped, not when pushed;
//   - the goal test runs when a node is popped, so UCS and A* return a
//     cheapest path (A* under a consistent heuristic);
//   - equal priorities pop in insertion order;
//   - failure is search.ErrNoPath, never a panic.
//
// Quick example:
//
//	l, _ := grid.ParseLayout(text)
//	p := maze.NewPositionProblem(l, maze.WithGoal(grid.Cell{X: 1, Y: 1}))
//	res, err := search.AStar[grid.Cell](p, maze.ManhattanHeuristic)
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
