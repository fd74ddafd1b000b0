package maze

import (
	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/search"
)

// foodOrder is the successor enumeration order of FoodProblem.
var foodOrder = []grid.Direction{grid.North, grid.South, grid.East, grid.West}

// FoodState is a position plus the food still left to eat.
type FoodState struct {
	Pos  grid.Cell
	Food grid.Grid
}

// FoodProblem searches for a path that eats every food cell.
type FoodProblem struct {
	walls grid.Grid
	start FoodState
	pairs *PairCache
}

// NewFoodProblem builds a FoodProblem from env. Steps cost 1.
//
// Reads WithStart only; every other Option has no effect here.
func NewFoodProblem(env Environment, opts ...Option) *FoodProblem {
	cfg := applyOptions(opts)
	p := &FoodProblem{
		walls: env.Walls(),
		start: FoodState{Pos: env.Start(), Food: env.Food()},
	}
	if cfg.start != nil {
		p.start.Pos = *cfg.start
	}
	return p
}

// Walls returns the obstacle map.
func (p *FoodProblem) Walls() grid.Grid { return p.walls }

// PairCache returns the pairwise food-distance cache, building it from the
// initial food on first use.
func (p *FoodProblem) PairCache() *PairCache {
	if p.pairs == nil {
		p.pairs = NewPairCache(p.start.Food.List())
	}
	return p.pairs
}

// StartState returns the start position with all initial food.
func (p *FoodProblem) StartState() FoodState { return p.start }

// IsGoal reports whether no food remains.
func (p *FoodProblem) IsGoal(state FoodState) bool { return state.Food.Count() == 0 }

// Successors returns the open neighbours North, South, East, West at cost 1.
// Entering a food cell removes it from the remaining food.
func (p *FoodProblem) Successors(state FoodState) []search.Successor[FoodState] {
	cells, dirs := neighbors(p.walls, state.Pos, foodOrder)
	out := make([]search.Successor[FoodState], len(cells))
	for i, c := range cells {
		out[i] = search.Successor[FoodState]{
			State:  FoodState{Pos: c, Food: state.Food.Without(c)},
			Action: search.Action(dirs[i]),
			Cost:   1,
		}
	}
	return out
}

// CostOfActions returns len(actions) for a legal sequence, or
// search.InfeasibleCost if any move is illegal.
func (p *FoodProblem) CostOfActions(actions []search.Action) float64 {
	return replay(p.walls, p.start.Pos, actions, UnitCost)
}
