package maze

import (
	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/search"
)

// snapshot is an Environment the planner advances as food is eaten.
type snapshot struct {
	walls grid.Grid
	food  grid.Grid
	start grid.Cell
}

func (s snapshot) Walls() grid.Grid { return s.walls }
func (s snapshot) Food() grid.Grid  { return s.food }
func (s snapshot) Start() grid.Cell { return s.start }

// ClosestDots plans a tour that eats all food by repeatedly walking to the
// nearest remaining food cell, each leg found by breadth-first search over
// an AnyFoodProblem.
//
// The tour is not optimal. If some food cannot be reached the legs planned
// so far are returned with search.ErrNoPath.
func ClosestDots(env Environment, opts ...search.Option) ([]search.Action, error) {
	snap := snapshot{walls: env.Walls(), food: env.Food(), start: env.Start()}
	plan := make([]search.Action, 0)

	for snap.food.Count() > 0 {
		p, err := NewAnyFoodProblem(snap, WithAnyFoodGoal())
		if err != nil {
			return plan, err
		}
		res, err := search.BFS[grid.Cell](p, opts...)
		if err != nil {
			return plan, err
		}
		plan = append(plan, res.Actions...)
		snap.food = snap.food.Without(res.Goal)
		snap.start = res.Goal
	}

	return plan, nil
}
