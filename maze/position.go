package maze

import (
	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/search"
)

// positionOrder is the successor enumeration order of PositionProblem.
var positionOrder = []grid.Direction{grid.North, grid.South, grid.East, grid.West}

// PositionProblem searches for a path from the start cell to one goal cell.
// States are cells.
type PositionProblem struct {
	walls grid.Grid
	start grid.Cell
	goal  grid.Cell
	cost  CostFn
}

// NewPositionProblem builds a PositionProblem from env. The goal defaults
// to (1,1) and the step cost to UnitCost.
//
// Unless WithoutWarnings is given, a warning is logged when the goal is not
// the environment's only food cell, which is how position mazes are drawn.
//
// Reads WithGoal, WithStart, WithCostFn, WithoutWarnings and WithLogger;
// WithAnyFoodGoal has no effect here.
func NewPositionProblem(env Environment, opts ...Option) *PositionProblem {
	cfg := applyOptions(opts)
	p := &PositionProblem{
		walls: env.Walls(),
		start: env.Start(),
		goal:  grid.Cell{X: 1, Y: 1},
		cost:  cfg.cost,
	}
	if cfg.start != nil {
		p.start = *cfg.start
	}
	if cfg.goal != nil {
		p.goal = *cfg.goal
	}

	if food := env.Food(); cfg.warn && (food.Count() != 1 || !food.Get(p.goal)) {
		logging.NewEvent(logging.Or(cfg.logger).Warn()).
			Add(logging.Component("maze")).
			Add(logging.Cell("goal", p.goal.X, p.goal.Y)).
			Msg("this does not look like a regular search maze")
	}

	return p
}

// Goal returns the target cell.
func (p *PositionProblem) Goal() grid.Cell { return p.goal }

// Walls returns the obstacle map.
func (p *PositionProblem) Walls() grid.Grid { return p.walls }

// StartState returns the start cell.
func (p *PositionProblem) StartState() grid.Cell { return p.start }

// IsGoal reports whether state is the target cell.
func (p *PositionProblem) IsGoal(state grid.Cell) bool { return state == p.goal }

// Successors returns the open neighbours of state, North, South, East, West,
// each costing cost(neighbour).
func (p *PositionProblem) Successors(state grid.Cell) []search.Successor[grid.Cell] {
	cells, dirs := neighbors(p.walls, state, positionOrder)
	out := make([]search.Successor[grid.Cell], len(cells))
	for i, c := range cells {
		out[i] = search.Successor[grid.Cell]{State: c, Action: search.Action(dirs[i]), Cost: p.cost(c)}
	}
	return out
}

// CostOfActions returns the summed step cost of actions from the start
// cell, or search.InfeasibleCost if any move is illegal.
func (p *PositionProblem) CostOfActions(actions []search.Action) float64 {
	return replay(p.walls, p.start, actions, p.cost)
}
