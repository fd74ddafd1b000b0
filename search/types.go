package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/bolt/v3"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when the Problem is nil, or is a nil pointer
	// or other nil reference behind a non-nil interface.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNoPath is returned when the frontier is exhausted without a goal.
	ErrNoPath = errors.New("search: no path found")

	// ErrNegativeCost is returned when a cost-ordered search sees a step cost < 0.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// InfeasibleCost is the sentinel returned by CostOfActions for action
// sequences containing an illegal move. It exceeds every real path cost.
const InfeasibleCost = 999999.0

// Action labels one transition. The engine treats it as opaque.
type Action string

// Successor is one outgoing transition from a state.
type Successor[S comparable] struct {
	State  S       // state reached
	Action Action  // action that reaches it
	Cost   float64 // incremental, non-negative cost of the step
}

// Problem is the capability set every search problem implements in full.
type Problem[S comparable] interface {
	// StartState returns the state the search begins from.
	StartState() S

	// IsGoal reports whether state satisfies the goal predicate.
	IsGoal(state S) bool

	// Successors enumerates the transitions out of state.
	Successors(state S) []Successor[S]

	// CostOfActions re-simulates actions from the start state and returns
	// their total cost, or InfeasibleCost if any move is illegal.
	CostOfActions(actions []Action) float64
}

// Heuristic estimates the remaining cost from state to a goal of problem.
// Implementations must return a non-negative value.
type Heuristic[S comparable, P any] func(state S, problem P) float64

// NullHeuristic always returns 0. With it, AStar behaves exactly like UCS.
func NullHeuristic[S comparable, P any](S, P) float64 { return 0 }

// Strategy names the exploration order of a search call.
type Strategy int

const (
	// DepthFirst explores the newest node first.
	DepthFirst Strategy = iota
	// BreadthFirst explores the oldest node first.
	BreadthFirst
	// UniformCost explores the cheapest node first.
	UniformCost
	// AStarSearch explores the node with the smallest cost + heuristic first.
	AStarSearch
)

// String returns the short name of the strategy.
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	case UniformCost:
		return "ucs"
	case AStarSearch:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// weighted reports whether the strategy orders by accumulated cost.
func (s Strategy) weighted() bool {
	return s == UniformCost || s == AStarSearch
}

// Result is the outcome of one search call.
type Result[S comparable] struct {
	// Actions leads from the start state to Goal. Empty (non-nil) when the
	// start state is itself a goal; nil when Found is false.
	Actions []Action

	// Cost is the accumulated step cost of Actions.
	Cost float64

	// Goal is the goal state reached; zero value when Found is false.
	Goal S

	// Expanded counts states whose successors were enumerated.
	Expanded int

	// Found reports whether a goal was reached.
	Found bool
}

// Option configures a search call via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for one search call.
type Options struct {
	// Ctx allows cancellation; checked once per loop iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once exceeded.
	MaxExpansions int

	// OnExpand is called right before a state's successors are enumerated.
	// Returning an error aborts the search with that error.
	OnExpand func(state any, depth int) error

	// Logger receives one debug event per finished search.
	// Nil means the package default from logging.Get.
	Logger *bolt.Logger

	err error
}

// DefaultOptions returns Options with a background context, no expansion
// limit, a no-op OnExpand hook and the default logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(any, int) error { return nil },
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  limit to n expansions
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook run before each expansion.
func WithOnExpand(fn func(state any, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes the engine's debug events to l.
func WithLogger(l *bolt.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
