package maze

import (
	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/logging"
	"github.com/katalvlaran/lvsearch/search"
)

// cornersOrder is the successor enumeration order of CornersProblem.
var cornersOrder = []grid.Direction{grid.East, grid.West, grid.North, grid.South}

// allCorners is the visited mask once every corner has been reached.
const allCorners uint8 = 1<<4 - 1

// CornersState is a position plus the set of corners already visited,
// bit i standing for Corners()[i].
type CornersState struct {
	Pos     grid.Cell
	Visited uint8
}

// Has reports whether corner i has been visited.
func (s CornersState) Has(i int) bool { return s.Visited&(1<<i) != 0 }

// CornersProblem searches for a shortest tour touching all four inner
// corners of the maze: (1,1), (1,top), (right,1), (right,top), where top
// and right are the last rows and columns inside the outer wall.
type CornersProblem struct {
	walls   grid.Grid
	start   grid.Cell
	corners [4]grid.Cell
}

// NewCornersProblem builds a CornersProblem from env. A warning is logged
// for every corner without food unless WithoutWarnings is given.
//
// Reads WithStart, WithoutWarnings and WithLogger; WithGoal, WithCostFn and
// WithAnyFoodGoal have no effect here.
func NewCornersProblem(env Environment, opts ...Option) *CornersProblem {
	cfg := applyOptions(opts)
	walls := env.Walls()
	top, right := walls.Height()-2, walls.Width()-2
	p := &CornersProblem{
		walls:   walls,
		start:   env.Start(),
		corners: [4]grid.Cell{{X: 1, Y: 1}, {X: 1, Y: top}, {X: right, Y: 1}, {X: right, Y: top}},
	}
	if cfg.start != nil {
		p.start = *cfg.start
	}

	if cfg.warn {
		food := env.Food()
		for _, c := range p.corners {
			if !food.Get(c) {
				logging.NewEvent(logging.Or(cfg.logger).Warn()).
					Add(logging.Component("maze")).
					Add(logging.Cell("corner", c.X, c.Y)).
					Msg("no food in corner")
			}
		}
	}

	return p
}

// Corners returns the four target corners.
func (p *CornersProblem) Corners() [4]grid.Cell { return p.corners }

// Walls returns the obstacle map.
func (p *CornersProblem) Walls() grid.Grid { return p.walls }

// mark returns visited with the bit of the corner at c set, if c is a corner.
func (p *CornersProblem) mark(visited uint8, c grid.Cell) uint8 {
	for i, corner := range p.corners {
		if corner == c {
			visited |= 1 << i
		}
	}
	return visited
}

// StartState returns the start cell with no corner visited. A corner is
// only counted when a move lands on it, so a start on a corner must be
// re-entered.
func (p *CornersProblem) StartState() CornersState {
	return CornersState{Pos: p.start}
}

// IsGoal reports whether all four corners have been visited.
func (p *CornersProblem) IsGoal(state CornersState) bool {
	return state.Visited == allCorners
}

// Successors returns the open neighbours East, West, North, South at cost 1.
// Entering an unvisited corner adds it; re-entering a visited one does not
// change the set.
func (p *CornersProblem) Successors(state CornersState) []search.Successor[CornersState] {
	cells, dirs := neighbors(p.walls, state.Pos, cornersOrder)
	out := make([]search.Successor[CornersState], len(cells))
	for i, c := range cells {
		out[i] = search.Successor[CornersState]{
			State:  CornersState{Pos: c, Visited: p.mark(state.Visited, c)},
			Action: search.Action(dirs[i]),
			Cost:   1,
		}
	}
	return out
}

// CostOfActions returns len(actions) for a legal sequence, or
// search.InfeasibleCost if any move is illegal.
func (p *CornersProblem) CostOfActions(actions []search.Action) float64 {
	return replay(p.walls, p.start, actions, UnitCost)
}
