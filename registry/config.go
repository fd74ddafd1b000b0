package registry

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// Config selects what a Planner runs.
type Config struct {
	// Algorithm is the search strategy (default dfs).
	Algorithm Algorithm `yaml:"algorithm"`
	// Heuristic guides astar; other algorithms ignore it (default null).
	Heuristic HeuristicID `yaml:"heuristic"`
	// Problem is the maze problem built from each environment (default position).
	Problem ProblemKind `yaml:"problem"`
	// AnyFoodGoal makes every food cell a goal of an anyfood problem.
	AnyFoodGoal bool `yaml:"any_food_goal,omitempty"`
	// LogLevel gives the planner its own stderr logger at this level when no
	// logger is injected. Empty uses the process default from logging.Get.
	LogLevel string `yaml:"log_level,omitempty"`
	// MaxExpansions caps expansions per search; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions,omitempty"`
}

// DefaultConfig returns depth-first search on a position problem with the
// null heuristic.
func DefaultConfig() Config {
	return Config{
		Algorithm: DFS,
		Heuristic: NullHeuristic,
		Problem:   Position,
	}
}

// LoadConfig decodes a YAML document over DefaultConfig and validates it.
// An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("registry: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every name is known and the heuristic fits the problem.
func (c Config) Validate() error {
	if c.Algorithm < DFS || c.Algorithm > AStar {
		return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, c.Algorithm)
	}
	if c.Problem < Position || c.Problem > AnyFoodProblem {
		return fmt.Errorf("%w: %v", ErrUnknownProblem, c.Problem)
	}
	if c.Heuristic < NullHeuristic || c.Heuristic > FoodManhattan {
		return fmt.Errorf("%w: %v", ErrUnknownHeuristic, c.Heuristic)
	}
	if !Compatible(c.Heuristic, c.Problem) {
		return fmt.Errorf("%w: %v on %v", ErrIncompatibleHeuristic, c.Heuristic, c.Problem)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d < 0", ErrInvalidConfig, c.MaxExpansions)
	}
	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Heuristic tables per problem kind. A heuristic is compatible with a kind
// exactly when it has an entry in that kind's table.
var (
	positionHeuristics = map[HeuristicID]search.Heuristic[grid.Cell, *maze.PositionProblem]{
		NullHeuristic: search.NullHeuristic[grid.Cell, *maze.PositionProblem],
		Manhattan:     maze.ManhattanHeuristic,
		Euclidean:     maze.EuclideanHeuristic,
	}
	cornersHeuristics = map[HeuristicID]search.Heuristic[maze.CornersState, *maze.CornersProblem]{
		NullHeuristic: search.NullHeuristic[maze.CornersState, *maze.CornersProblem],
		Corners:       maze.CornersHeuristic,
	}
	foodHeuristics = map[HeuristicID]search.Heuristic[maze.FoodState, *maze.FoodProblem]{
		NullHeuristic: search.NullHeuristic[maze.FoodState, *maze.FoodProblem],
		Food:          maze.FoodHeuristic,
		FoodMST:       maze.FoodMSTHeuristic,
		FoodManhattan: maze.FoodManhattanHeuristic,
	}
	anyFoodHeuristics = map[HeuristicID]search.Heuristic[grid.Cell, *maze.AnyFoodProblem]{
		NullHeuristic: search.NullHeuristic[grid.Cell, *maze.AnyFoodProblem],
		NearestFood:   maze.NearestFoodHeuristic,
	}
)

// Compatible reports whether h can score states of problem kind k.
func Compatible(h HeuristicID, k ProblemKind) bool {
	var ok bool
	switch k {
	case Position:
		_, ok = positionHeuristics[h]
	case CornersProblem:
		_, ok = cornersHeuristics[h]
	case FoodProblem:
		_, ok = foodHeuristics[h]
	case AnyFoodProblem:
		_, ok = anyFoodHeuristics[h]
	}
	return ok
}
