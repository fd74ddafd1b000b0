package maze

import (
	"errors"
	"math"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for maze problems.
var (
	// ErrNoFood is returned when a problem needs food but the environment has none.
	ErrNoFood = errors.New("maze: environment has no food")

	// ErrWallCell is returned when an endpoint passed to MazeDistance is a wall.
	ErrWallCell = errors.New("maze: cell is a wall")
)

// Environment is the snapshot a problem is built from. *grid.Layout
// satisfies it.
type Environment interface {
	Walls() grid.Grid
	Food() grid.Grid
	Start() grid.Cell
}

// CostFn returns the cost of stepping into a cell.
type CostFn func(c grid.Cell) float64

// UnitCost charges 1 for every step.
func UnitCost(grid.Cell) float64 { return 1 }

// StayEastCost charges 1/2^x for stepping into column x, so paths drift east.
func StayEastCost(c grid.Cell) float64 { return math.Pow(0.5, float64(c.X)) }

// StayWestCost charges 2^x for stepping into column x, so paths drift west.
func StayWestCost(c grid.Cell) float64 { return math.Pow(2, float64(c.X)) }

// Option configures problem construction. Options are shared by every
// constructor; each one documents which it reads and silently ignores the
// rest.
type Option func(*config)

// config collects every option; each constructor reads the fields it uses.
type config struct {
	goal    *grid.Cell
	start   *grid.Cell
	cost    CostFn
	warn    bool
	anyFood bool
	logger  *bolt.Logger
}

func defaultConfig() config {
	return config{cost: UnitCost, warn: true}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithGoal sets the target cell of a PositionProblem. Default (1,1).
func WithGoal(c grid.Cell) Option {
	return func(cfg *config) { cfg.goal = &c }
}

// WithStart overrides the environment's start cell.
func WithStart(c grid.Cell) Option {
	return func(cfg *config) { cfg.start = &c }
}

// WithCostFn sets the per-step cost of a PositionProblem. Nil is ignored.
func WithCostFn(fn CostFn) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.cost = fn
		}
	}
}

// WithoutWarnings silences layout sanity warnings.
func WithoutWarnings() Option {
	return func(cfg *config) { cfg.warn = false }
}

// WithAnyFoodGoal makes every food cell a goal of an AnyFoodProblem.
func WithAnyFoodGoal() Option {
	return func(cfg *config) { cfg.anyFood = true }
}

// WithLogger routes construction warnings to l.
func WithLogger(l *bolt.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// blocked reports whether c is a wall or lies outside the maze.
func blocked(walls grid.Grid, c grid.Cell) bool {
	return !walls.InBounds(c) || walls.Get(c)
}

// neighbors returns the open cells adjacent to pos in the given direction
// order, paired with the direction that reaches them.
func neighbors(walls grid.Grid, pos grid.Cell, order []grid.Direction) ([]grid.Cell, []grid.Direction) {
	cells := make([]grid.Cell, 0, len(order))
	dirs := make([]grid.Direction, 0, len(order))
	for _, d := range order {
		v, _ := d.Vector()
		next := pos.Add(v)
		if blocked(walls, next) {
			continue
		}
		cells = append(cells, next)
		dirs = append(dirs, d)
	}
	return cells, dirs
}

// replay walks actions from start and sums step(cell) for every cell
// entered. Unknown actions, Stop and moves into walls yield InfeasibleCost.
func replay(walls grid.Grid, start grid.Cell, actions []search.Action, step CostFn) float64 {
	pos, total := start, 0.0
	for _, a := range actions {
		d := grid.Direction(a)
		v, ok := d.Vector()
		if !ok || d == grid.Stop {
			return search.InfeasibleCost
		}
		pos = pos.Add(v)
		if blocked(walls, pos) {
			return search.InfeasibleCost
		}
		total += step(pos)
	}
	return total
}

// Directions converts a planned action sequence back into directions.
func Directions(actions []search.Action) []grid.Direction {
	out := make([]grid.Direction, len(actions))
	for i, a := range actions {
		out[i] = grid.Direction(a)
	}
	return out
}
