package maze

import (
	"math"

	"github.com/katalvlaran/lvsearch/grid"
)

// ManhattanHeuristic is |dx|+|dy| to the problem's goal.
func ManhattanHeuristic(state grid.Cell, p *PositionProblem) float64 {
	return float64(state.Manhattan(p.goal))
}

// EuclideanHeuristic is the straight-line distance to the problem's goal.
func EuclideanHeuristic(state grid.Cell, p *PositionProblem) float64 {
	return euclidean(state, p.goal)
}

// CornersHeuristic sums a greedy chain: from the current cell, walk to the
// Manhattan-nearest unvisited corner, then the nearest one from there, until
// none remain. Ties go to the corner listed first by Corners.
func CornersHeuristic(state CornersState, p *CornersProblem) float64 {
	ref, total := state.Pos, 0
	left := ^state.Visited & allCorners
	for left != 0 {
		best, bestD := -1, 0
		for i, c := range p.corners {
			if left&(1<<i) == 0 {
				continue
			}
			if d := ref.Manhattan(c); best < 0 || d < bestD {
				best, bestD = i, d
			}
		}
		total += bestD
		ref = p.corners[best]
		left &^= 1 << best
	}
	return float64(total)
}

// FoodHeuristic estimates the remaining work as the Manhattan distance
// between the two farthest-apart remaining food cells plus the straight-line
// distance from the current cell to the nearer of them.
//
// With one food cell left it is the Manhattan distance to that cell; with
// none it is 0.
func FoodHeuristic(state FoodState, p *FoodProblem) float64 {
	return farthestPair(state, p, euclidean)
}

// FoodManhattanHeuristic is FoodHeuristic with the nearer end measured by
// Manhattan distance. Its value is never below FoodHeuristic's.
func FoodManhattanHeuristic(state FoodState, p *FoodProblem) float64 {
	return farthestPair(state, p, manhattan)
}

func euclidean(a, b grid.Cell) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func manhattan(a, b grid.Cell) float64 { return float64(a.Manhattan(b)) }

// farthestPair is the shared body of the farthest-pair food heuristics;
// toEnd measures the current cell to an end of the pair.
func farthestPair(state FoodState, p *FoodProblem, toEnd func(a, b grid.Cell) float64) float64 {
	food := state.Food.List()
	switch len(food) {
	case 0:
		return 0
	case 1:
		return manhattan(state.Pos, food[0])
	}

	pair, d, ok := p.PairCache().Farthest(state.Food)
	if !ok {
		return manhattan(state.Pos, food[0])
	}
	return float64(d) + min(toEnd(state.Pos, pair.A), toEnd(state.Pos, pair.B))
}

// FoodMSTHeuristic is the weight of a Manhattan minimum spanning tree over
// the current cell and the remaining food.
func FoodMSTHeuristic(state FoodState, _ *FoodProblem) float64 {
	pts := append([]grid.Cell{state.Pos}, state.Food.List()...)
	return float64(mstWeight(pts))
}

// mstWeight runs dense Prim from pts[0].
func mstWeight(pts []grid.Cell) int {
	n := len(pts)
	if n < 2 {
		return 0
	}
	inTree := make([]bool, n)
	best := make([]int, n)
	for i := range best {
		best[i] = math.MaxInt
	}
	best[0] = 0

	total := 0
	for range n {
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		total += best[u]
		for v := 0; v < n; v++ {
			if d := pts[u].Manhattan(pts[v]); !inTree[v] && d < best[v] {
				best[v] = d
			}
		}
	}
	return total
}

// NearestFoodHeuristic is the Manhattan distance to the pinned goal, or to
// the nearest food cell when every food cell is a goal.
func NearestFoodHeuristic(state grid.Cell, p *AnyFoodProblem) float64 {
	if !p.anyFood {
		return float64(state.Manhattan(p.goal))
	}
	cells := p.food.List()
	return float64(state.Manhattan(nearest(state, cells)))
}
