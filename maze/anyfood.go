package maze

import (
	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/search"
)

// AnyFoodProblem searches for a path to food. States are cells.
//
// By default the goal is pinned at construction to the food cell nearest
// the start by Manhattan distance (ties: smaller X, then smaller Y). That
// cell need not be the nearest by maze distance. WithAnyFoodGoal turns
// every food cell present at construction into a goal, which is what a
// "closest dot" planner wants.
type AnyFoodProblem struct {
	walls   grid.Grid
	food    grid.Grid
	start   grid.Cell
	goal    grid.Cell
	anyFood bool
}

// NewAnyFoodProblem builds an AnyFoodProblem from env.
// Returns ErrNoFood if env has no food.
//
// Reads WithStart and WithAnyFoodGoal; WithGoal, WithCostFn, WithoutWarnings
// and WithLogger have no effect here.
func NewAnyFoodProblem(env Environment, opts ...Option) (*AnyFoodProblem, error) {
	cfg := applyOptions(opts)
	p := &AnyFoodProblem{
		walls:   env.Walls(),
		food:    env.Food(),
		start:   env.Start(),
		anyFood: cfg.anyFood,
	}
	if cfg.start != nil {
		p.start = *cfg.start
	}

	cells := p.food.List()
	if len(cells) == 0 {
		return nil, ErrNoFood
	}
	p.goal = nearest(p.start, cells)

	return p, nil
}

// nearest returns the first cell of cells at minimum Manhattan distance from c.
func nearest(c grid.Cell, cells []grid.Cell) grid.Cell {
	best, bestD := cells[0], c.Manhattan(cells[0])
	for _, f := range cells[1:] {
		if d := c.Manhattan(f); d < bestD {
			best, bestD = f, d
		}
	}
	return best
}

// Goal returns the pinned goal cell. With WithAnyFoodGoal it is only the
// Manhattan-nearest food, not the only goal.
func (p *AnyFoodProblem) Goal() grid.Cell { return p.goal }

// Food returns the food grid the problem was built with.
func (p *AnyFoodProblem) Food() grid.Grid { return p.food }

// AnyFood reports whether every food cell is a goal.
func (p *AnyFoodProblem) AnyFood() bool { return p.anyFood }

// StartState returns the start cell.
func (p *AnyFoodProblem) StartState() grid.Cell { return p.start }

// IsGoal reports whether state is the pinned goal, or any food cell under
// WithAnyFoodGoal.
func (p *AnyFoodProblem) IsGoal(state grid.Cell) bool {
	if p.anyFood {
		return p.food.Get(state)
	}
	return state == p.goal
}

// Successors returns the open neighbours North, South, East, West at cost 1.
func (p *AnyFoodProblem) Successors(state grid.Cell) []search.Successor[grid.Cell] {
	cells, dirs := neighbors(p.walls, state, positionOrder)
	out := make([]search.Successor[grid.Cell], len(cells))
	for i, c := range cells {
		out[i] = search.Successor[grid.Cell]{State: c, Action: search.Action(dirs[i]), Cost: 1}
	}
	return out
}

// CostOfActions returns len(actions) for a legal sequence, or
// search.InfeasibleCost if any move is illegal.
func (p *AnyFoodProblem) CostOfActions(actions []search.Action) float64 {
	return replay(p.walls, p.start, actions, UnitCost)
}
