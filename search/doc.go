// Package search implements a problem-agnostic state-space search engine.
//
// A Problem exposes a start state, a goal predicate, successor enumeration
// (next state, action, non-negative step cost) and a cost function over
// action sequences. The engine never inspects states directly; it only
// compares them for equality and uses them as map keys.
//
// What
//
//   - DFS:   depth-first graph search (frontier.Stack).
//   - BFS:   breadth-first graph search (frontier.Queue); shortest in actions.
//   - UCS:   uniform-cost search (frontier.PriorityFunc keyed by path cost).
//   - AStar: A* search keyed by path cost + heuristic(next state).
//
// All four share one expansion loop:
//
//  1. Seed the frontier with (start, no actions, cost 0).
//  2. Pop a node; if the frontier is empty, fail with ErrNoPath.
//  3. If the node's state is a goal, return its action path.
//  4. If the state is not yet visited: mark it, enumerate successors and
//     push one child per successor.
//  5. Repeat.
//
// Deduplication happens at pop time, not insertion time: several frontier
// entries for one state may coexist, and only the first one popped is
// expanded. With non-negative step costs this keeps UCS optimal, and A*
// optimal for consistent heuristics.
//
// Paths are stored as parent-pointer chains and materialized into an action
// slice only once, when a goal is popped.
//
// Determinism
//
//	Successors are pushed in the order the Problem returns them and priority
//	ties are served in insertion order (see package frontier), so every run
//	over the same problem yields the same path.
//
// Errors
//
//   - ErrNilProblem       if the problem is nil.
//   - ErrNoPath           if the frontier empties without reaching a goal.
//   - ErrNegativeCost     if UCS or A* meets a negative step cost.
//   - ErrExpansionLimit   if WithMaxExpansions is exceeded.
//   - ErrOptionViolation  for invalid options.
//   - ctx.Err()           if the WithContext context is done.
//
// On ErrNoPath and ErrExpansionLimit the returned Result is non-nil with
// Found == false, so callers can still read Expanded.
package search
