// Package maze defines search problems over grid mazes and the heuristics
// that guide A* through them.
//
// Problems (all implement search.Problem):
//
//   - PositionProblem: reach one target cell. Step cost is pluggable per
//     destination cell (UnitCost, StayEastCost, StayWestCost).
//   - CornersProblem: visit the four inner corners of the maze. State is
//     the current cell plus a bitmask of corners already visited.
//   - FoodProblem: eat every food cell. State is the current cell plus the
//     remaining food grid.
//   - AnyFoodProblem: reach a food cell. By default the goal is the single
//     food cell nearest the start by Manhattan distance, fixed when the
//     problem is built; WithAnyFoodGoal makes every food cell a goal.
//
// Heuristics (search.Heuristic values):
//
//   - ManhattanHeuristic, EuclideanHeuristic for PositionProblem.
//   - CornersHeuristic: greedy nearest-corner chain.
//   - FoodHeuristic: farthest remaining food pair plus the distance to its
//     nearer end, answered from a PairCache.
//   - FoodMSTHeuristic: minimum spanning tree over the position and the
//     remaining food.
//   - NearestFoodHeuristic for AnyFoodProblem.
//
// Every CostOfActions re-simulates the actions against the walls and
// returns search.InfeasibleCost on the first illegal move.
//
// Problems are single-owner: FoodProblem's PairCache is mutated during
// heuristic queries and must not be shared between concurrent searches.
package maze
