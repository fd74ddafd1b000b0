package maze_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

func TestFoodProblem_EatsFood(t *testing.T) {
	p := maze.NewFoodProblem(layout(t, row))
	s := p.StartState()
	require.Equal(t, 2, s.Food.Count())

	s = step[maze.FoodState](t, p, s, grid.East)
	s = step[maze.FoodState](t, p, s, grid.East)
	assert.Equal(t, []grid.Cell{{X: 5, Y: 1}}, s.Food.List())
	assert.False(t, p.IsGoal(s))

	s = step[maze.FoodState](t, p, s, grid.East)
	s = step[maze.FoodState](t, p, s, grid.East)
	assert.True(t, p.IsGoal(s))
}

func TestFoodHeuristic_TwoOnARow(t *testing.T) {
	p := maze.NewFoodProblem(layout(t, row))
	start := p.StartState()

	// pair (3,1)-(5,1) is 2 apart; nearer end (3,1) is 2 away
	assert.Equal(t, 4.0, maze.FoodHeuristic(start, p))

	eaten := maze.FoodState{Pos: grid.Cell{X: 3, Y: 1}, Food: start.Food.Without(grid.Cell{X: 3, Y: 1})}
	assert.Equal(t, 2.0, maze.FoodHeuristic(eaten, p))

	eaten.Pos = grid.Cell{X: 4, Y: 1}
	assert.Equal(t, 1.0, maze.FoodHeuristic(eaten, p))

	done := maze.FoodState{Pos: grid.Cell{X: 5, Y: 1}, Food: eaten.Food.Without(grid.Cell{X: 5, Y: 1})}
	assert.Equal(t, 0.0, maze.FoodHeuristic(done, p))
}

// spread has three food cells on a corridor; eating either end leaves the
// farthest cached pair stale.
const spread = `%%%%%%%%%
%. P . .%
%%%%%%%%%
`

func TestFoodHeuristic_CacheUntouched(t *testing.T) {
	p := maze.NewFoodProblem(layout(t, spread))
	cache := p.PairCache()
	before := cache.Snapshot()
	require.Len(t, before, 3)

	west, east := grid.Cell{X: 1, Y: 1}, grid.Cell{X: 7, Y: 1}
	stale := 0
	h := func(s maze.FoodState, fp *maze.FoodProblem) float64 {
		if s.Food.Count() >= 2 && !(s.Food.Get(west) && s.Food.Get(east)) {
			stale++
		}
		v := maze.FoodHeuristic(s, fp)
		assert.Equal(t, before, cache.Snapshot(), "after scoring %v", s.Pos)
		return v
	}

	res, err := search.AStar[maze.FoodState](p, h, search.WithOnExpand(func(any, int) error {
		assert.Equal(t, before, cache.Snapshot())
		return nil
	}))
	require.NoError(t, err)
	assert.Positive(t, stale, "some queries must skip a pair with an eaten end")
	assert.Equal(t, before, cache.Snapshot())
	assert.Same(t, cache, p.PairCache())
	assert.Equal(t, 8.0, res.Cost, "west end first, then east")
}

func TestFoodHeuristic_OffAxis(t *testing.T) {
	l := layout(t, `%%%%%%%%
%.     %
%      %
%     .%
%  P   %
%%%%%%%%
`)
	p := maze.NewFoodProblem(l)
	start := p.StartState()
	require.Equal(t, grid.Cell{X: 3, Y: 1}, start.Pos)
	require.Equal(t, []grid.Cell{{X: 1, Y: 4}, {X: 6, Y: 2}}, start.Food.List())

	// pair (1,4)-(6,2) is 7 apart; (6,2) is sqrt(10) away in a straight line
	assert.InDelta(t, 7+math.Sqrt(10), maze.FoodHeuristic(start, p), 1e-9)
	// by Manhattan (6,2) is 4 away and (1,4) is 5
	assert.Equal(t, 11.0, maze.FoodManhattanHeuristic(start, p))
	assert.LessOrEqual(t, maze.FoodHeuristic(start, p), maze.FoodManhattanHeuristic(start, p))

	for name, h := range map[string]search.Heuristic[maze.FoodState, *maze.FoodProblem]{
		"euclidean": maze.FoodHeuristic,
		"manhattan": maze.FoodManhattanHeuristic,
	} {
		t.Run(name, func(t *testing.T) {
			ucs, err := search.UCS[maze.FoodState](p)
			require.NoError(t, err)
			res, err := search.AStar[maze.FoodState](p, h)
			require.NoError(t, err)
			assert.Equal(t, ucs.Cost, res.Cost)
		})
	}
}

func TestFoodProblem_Search(t *testing.T) {
	p := maze.NewFoodProblem(layout(t, tiny))

	ucs, err := search.UCS[maze.FoodState](p)
	require.NoError(t, err)
	assert.Equal(t, 5.0, ucs.Cost)
	assert.Equal(t, actions(grid.West, grid.West, grid.West, grid.South, grid.South), ucs.Actions)

	for name, h := range map[string]search.Heuristic[maze.FoodState, *maze.FoodProblem]{
		"farthest-pair": maze.FoodHeuristic,
		"mst":           maze.FoodMSTHeuristic,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := search.AStar[maze.FoodState](p, h)
			require.NoError(t, err)
			assert.Equal(t, ucs.Cost, res.Cost)
			assert.Equal(t, res.Cost, p.CostOfActions(res.Actions))
		})
	}
}

func TestFoodMSTHeuristic(t *testing.T) {
	p := maze.NewFoodProblem(layout(t, tiny))
	// (4,3)-(1,3) is 3, (1,3)-(1,1) is 2
	assert.Equal(t, 5.0, maze.FoodMSTHeuristic(p.StartState(), p))

	empty, err := grid.NewGrid(6, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, maze.FoodMSTHeuristic(maze.FoodState{Pos: grid.Cell{X: 1, Y: 1}, Food: empty}, p))
}
