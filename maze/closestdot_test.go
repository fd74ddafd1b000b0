package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

func TestClosestDots(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []search.Action
	}{
		{"detour", detour, actions(
			grid.East, grid.East,
			grid.South, grid.South, grid.West, grid.West, grid.West, grid.West, grid.North, grid.North,
		)},
		{"tiny", tiny, actions(grid.West, grid.West, grid.West, grid.South, grid.South)},
		{"no food", room, []search.Action{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layout(t, tt.text)
			plan, err := maze.ClosestDots(l)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan)

			food := maze.NewFoodProblem(l)
			assert.Equal(t, float64(len(plan)), food.CostOfActions(plan))
		})
	}
}

func TestClosestDots_Unreachable(t *testing.T) {
	plan, err := maze.ClosestDots(layout(t, sealed))
	assert.ErrorIs(t, err, search.ErrNoPath)
	assert.Empty(t, plan)
}

func TestMazeDistance(t *testing.T) {
	l := layout(t, detour)

	d, err := maze.MazeDistance(grid.Cell{X: 3, Y: 3}, grid.Cell{X: 1, Y: 3}, l)
	require.NoError(t, err)
	assert.Equal(t, 10, d)

	d, err = maze.MazeDistance(grid.Cell{X: 3, Y: 3}, grid.Cell{X: 3, Y: 3}, l)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	_, err = maze.MazeDistance(grid.Cell{X: 3, Y: 3}, grid.Cell{X: 2, Y: 3}, l)
	assert.ErrorIs(t, err, maze.ErrWallCell)

	_, err = maze.MazeDistance(grid.Cell{X: -1, Y: 3}, grid.Cell{X: 1, Y: 3}, l)
	assert.ErrorIs(t, err, maze.ErrWallCell)

	_, err = maze.MazeDistance(grid.Cell{X: 1, Y: 1}, grid.Cell{X: 4, Y: 1}, layout(t, sealed))
	assert.ErrorIs(t, err, search.ErrNoPath)
}
