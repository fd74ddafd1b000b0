package maze

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/search"
)

// MazeDistance returns the number of steps on a shortest walk from a to b
// through env, found with breadth-first search.
//
// Returns ErrWallCell if either endpoint is a wall or off the map, and
// search.ErrNoPath if b cannot be reached.
func MazeDistance(a, b grid.Cell, env Environment, opts ...search.Option) (int, error) {
	walls := env.Walls()
	for _, c := range []grid.Cell{a, b} {
		if blocked(walls, c) {
			return 0, fmt.Errorf("%w: %v", ErrWallCell, c)
		}
	}

	p := NewPositionProblem(env, WithStart(a), WithGoal(b), WithoutWarnings())
	res, err := search.BFS[grid.Cell](p, opts...)
	if err != nil {
		return 0, err
	}
	return len(res.Actions), nil
}
