package registry

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for name resolution and configuration.
var (
	// ErrUnknownAlgorithm is returned for an algorithm name outside the registry.
	ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

	// ErrUnknownHeuristic is returned for a heuristic name outside the registry.
	ErrUnknownHeuristic = errors.New("registry: unknown heuristic")

	// ErrUnknownProblem is returned for a problem name outside the registry.
	ErrUnknownProblem = errors.New("registry: unknown problem")

	// ErrIncompatibleHeuristic is returned when a heuristic cannot score the
	// states of the configured problem.
	ErrIncompatibleHeuristic = errors.New("registry: heuristic does not fit problem")

	// ErrInvalidConfig is returned for out-of-range configuration values.
	ErrInvalidConfig = errors.New("registry: invalid config")
)

// Algorithm names a search strategy.
type Algorithm int

const (
	DFS Algorithm = iota
	BFS
	UCS
	AStar
)

var algorithmNames = map[string]Algorithm{
	"dfs": DFS, "depthfirstsearch": DFS,
	"bfs": BFS, "breadthfirstsearch": BFS,
	"ucs": UCS, "uniformcostsearch": UCS,
	"astar": AStar, "a*": AStar, "astarsearch": AStar,
}

// String returns the canonical name.
func (a Algorithm) String() string {
	if a < DFS || a > AStar {
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
	return a.Strategy().String()
}

// Strategy maps a to the engine's strategy.
func (a Algorithm) Strategy() search.Strategy {
	switch a {
	case DFS:
		return search.DepthFirst
	case BFS:
		return search.BreadthFirst
	case UCS:
		return search.UniformCost
	case AStar:
		return search.AStarSearch
	}
	return search.Strategy(-1)
}

// ParseAlgorithm resolves a name, case-insensitively. Long names such as
// depthFirstSearch are accepted as aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	return lookup(algorithmNames, s, ErrUnknownAlgorithm)
}

// UnmarshalYAML decodes a from its name.
func (a *Algorithm) UnmarshalYAML(value *yaml.Node) error {
	return decode(value, a, ParseAlgorithm)
}

// MarshalYAML encodes a as its canonical name.
func (a Algorithm) MarshalYAML() (any, error) { return a.String(), nil }

// HeuristicID names a heuristic.
type HeuristicID int

const (
	NullHeuristic HeuristicID = iota
	Manhattan
	Euclidean
	Corners
	Food
	FoodMST
	NearestFood
	FoodManhattan
)

var heuristicStrings = [...]string{"null", "manhattan", "euclidean", "corners", "food", "food-mst", "nearest-food", "food-manhattan"}

var heuristicNames = map[string]HeuristicID{
	"null": NullHeuristic, "nullheuristic": NullHeuristic,
	"manhattan": Manhattan, "manhattanheuristic": Manhattan,
	"euclidean": Euclidean, "euclideanheuristic": Euclidean,
	"corners": Corners, "cornersheuristic": Corners,
	"food": Food, "foodheuristic": Food,
	"food-mst": FoodMST, "foodmst": FoodMST,
	"nearest-food": NearestFood, "nearestfood": NearestFood,
	"food-manhattan": FoodManhattan, "foodmanhattan": FoodManhattan,
}

// String returns the canonical name.
func (h HeuristicID) String() string {
	if h < 0 || int(h) >= len(heuristicStrings) {
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
	return heuristicStrings[h]
}

// ParseHeuristic resolves a name, case-insensitively.
func ParseHeuristic(s string) (HeuristicID, error) {
	return lookup(heuristicNames, s, ErrUnknownHeuristic)
}

// UnmarshalYAML decodes h from its name.
func (h *HeuristicID) UnmarshalYAML(value *yaml.Node) error {
	return decode(value, h, ParseHeuristic)
}

// MarshalYAML encodes h as its canonical name.
func (h HeuristicID) MarshalYAML() (any, error) { return h.String(), nil }

// ProblemKind names a maze problem.
type ProblemKind int

const (
	Position ProblemKind = iota
	CornersProblem
	FoodProblem
	AnyFoodProblem
)

var problemStrings = [...]string{"position", "corners", "food", "anyfood"}

var problemNames = map[string]ProblemKind{
	"position": Position, "positionsearchproblem": Position,
	"corners": CornersProblem, "cornersproblem": CornersProblem,
	"food": FoodProblem, "foodsearchproblem": FoodProblem,
	"anyfood": AnyFoodProblem, "any-food": AnyFoodProblem, "anyfoodsearchproblem": AnyFoodProblem,
}

// String returns the canonical name.
func (k ProblemKind) String() string {
	if k < 0 || int(k) >= len(problemStrings) {
		return fmt.Sprintf("problem(%d)", int(k))
	}
	return problemStrings[k]
}

// ParseProblem resolves a name, case-insensitively.
func ParseProblem(s string) (ProblemKind, error) {
	return lookup(problemNames, s, ErrUnknownProblem)
}

// UnmarshalYAML decodes k from its name.
func (k *ProblemKind) UnmarshalYAML(value *yaml.Node) error {
	return decode(value, k, ParseProblem)
}

// MarshalYAML encodes k as its canonical name.
func (k ProblemKind) MarshalYAML() (any, error) { return k.String(), nil }

func lookup[T any](names map[string]T, s string, unknown error) (T, error) {
	if v, ok := names[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", unknown, s)
}

func decode[T any](value *yaml.Node, dst *T, parse func(string) (T, error)) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := parse(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*dst = v
	return nil
}
