// Package registry binds a named search algorithm, heuristic and problem
// kind into a Planner that runs one search per planning episode.
//
// Names resolve to closed enumerations when a Config is loaded, so a typo
// or a heuristic that cannot serve the chosen problem fails at startup
// rather than mid-episode:
//
//	cfg, err := registry.LoadConfig(strings.NewReader(`
//	algorithm: astar
//	heuristic: manhattan
//	problem: position
//	`))
//	planner, err := registry.NewPlanner(cfg)
//	plan, err := planner.Plan(ctx, layout)
//
// Algorithms: dfs, bfs, ucs, astar.
// Heuristics: null, manhattan, euclidean, corners, food, food-manhattan,
// food-mst, nearest-food.
// Problems: position, corners, food, anyfood.
//
// A Planner counts searches and expanded nodes and records path costs
// through an OpenTelemetry meter, and logs one event per episode.
package registry
