package search

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/logging"
)

// DFS runs depth-first graph search and returns some path to a goal,
// not necessarily the shortest.
func DFS[S comparable](problem Problem[S], opts ...Option) (*Result[S], error) {
	if isNil(problem) {
		return nil, ErrNilProblem
	}
	return run(DepthFirst, problem, frontier.NewStack[*node[S]](), opts)
}

// BFS runs breadth-first graph search and returns a path with the fewest actions.
func BFS[S comparable](problem Problem[S], opts ...Option) (*Result[S], error) {
	if isNil(problem) {
		return nil, ErrNilProblem
	}
	return run(BreadthFirst, problem, frontier.NewQueue[*node[S]](), opts)
}

// UCS runs uniform-cost search and returns a minimum-cost path,
// provided every step cost is non-negative.
func UCS[S comparable](problem Problem[S], opts ...Option) (*Result[S], error) {
	if isNil(problem) {
		return nil, ErrNilProblem
	}
	f := frontier.NewPriorityFunc(func(n *node[S]) float64 { return n.cost })
	return run(UniformCost, problem, f, opts)
}

// AStar runs A* search ordered by path cost plus h(next state, problem).
// A nil h is treated as NullHeuristic.
func AStar[S comparable, P Problem[S]](problem P, h Heuristic[S, P], opts ...Option) (*Result[S], error) {
	if isNil(problem) {
		return nil, ErrNilProblem
	}
	if h == nil {
		h = NullHeuristic[S, P]
	}
	f := frontier.NewPriorityFunc(func(n *node[S]) float64 {
		return n.cost + h(n.state, problem)
	})
	return run(AStarSearch, Problem[S](problem), f, opts)
}

// Run dispatches to the search named by strategy. h is only consulted by
// AStarSearch.
func Run[S comparable, P Problem[S]](strategy Strategy, problem P, h Heuristic[S, P], opts ...Option) (*Result[S], error) {
	switch strategy {
	case DepthFirst:
		return DFS[S](problem, opts...)
	case BreadthFirst:
		return BFS[S](problem, opts...)
	case UniformCost:
		return UCS[S](problem, opts...)
	case AStarSearch:
		return AStar[S, P](problem, h, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, strategy)
	}
}

// isNil reports whether problem is nil, including a nil pointer, map, func
// or slice wrapped in a non-nil interface.
func isNil(problem any) bool {
	if problem == nil {
		return true
	}
	switch v := reflect.ValueOf(problem); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// runner encapsulates mutable state for one search call.
type runner[S comparable] struct {
	strategy Strategy
	problem  Problem[S]
	frontier frontier.Container[*node[S]]
	opts     Options
	visited  map[S]struct{}
	expanded int
}

// run applies options, executes the shared loop and logs the outcome.
func run[S comparable](strategy Strategy, problem Problem[S], f frontier.Container[*node[S]], opts []Option) (*Result[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner[S]{
		strategy: strategy,
		problem:  problem,
		frontier: f,
		opts:     o,
		visited:  make(map[S]struct{}),
	}
	res, err := r.loop()

	logging.NewEvent(logging.Or(o.Logger).Debug()).
		Add(logging.Component("search")).
		Add(logging.Algorithm(strategy.String())).
		Add(logging.Expanded(res.Expanded)).
		Add(logging.Found(res.Found)).
		Add(logging.Cost(res.Cost)).
		Add(logging.ErrorField(err)).
		Msg("search finished")

	return res, err
}

// loop pops nodes until a goal is found, the frontier empties, or an
// option aborts the search. The returned Result is never nil.
func (r *runner[S]) loop() (*Result[S], error) {
	res := &Result[S]{}
	r.frontier.Push(&node[S]{state: r.problem.StartState()})

	for {
		// cancellation check (once per loop)
		select {
		case <-r.opts.Ctx.Done():
			res.Expanded = r.expanded
			return res, r.opts.Ctx.Err()
		default:
		}

		n, ok := r.frontier.Pop()
		if !ok {
			res.Expanded = r.expanded
			return res, ErrNoPath
		}

		if r.problem.IsGoal(n.state) {
			res.Actions = n.path()
			res.Cost = n.cost
			res.Goal = n.state
			res.Expanded = r.expanded
			res.Found = true
			return res, nil
		}

		// stale entry for an already expanded state
		if _, seen := r.visited[n.state]; seen {
			continue
		}
		r.visited[n.state] = struct{}{}

		if err := r.expand(n); err != nil {
			res.Expanded = r.expanded
			return res, err
		}
	}
}

// expand enumerates the successors of n and pushes one child per successor.
func (r *runner[S]) expand(n *node[S]) error {
	if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, r.opts.MaxExpansions)
	}
	if err := r.opts.OnExpand(n.state, n.depth); err != nil {
		return fmt.Errorf("search: OnExpand error at depth %d: %w", n.depth, err)
	}
	r.expanded++

	for _, succ := range r.problem.Successors(n.state) {
		if r.strategy.weighted() && succ.Cost < 0 {
			return fmt.Errorf("%w: action %q cost=%v", ErrNegativeCost, succ.Action, succ.Cost)
		}
		r.frontier.Push(n.child(succ))
	}
	return nil
}
