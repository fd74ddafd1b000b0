package search_test

import (
	"github.com/katalvlaran/lvsearch/search"
)

// edge is one labelled, weighted arc of graphProblem.
type edge struct {
	to     string
	action search.Action
	cost   float64
}

// graphProblem is a tiny explicit-graph Problem used across the tests.
type graphProblem struct {
	start string
	goals map[string]bool
	adj   map[string][]edge
}

func (g *graphProblem) StartState() string { return g.start }

func (g *graphProblem) IsGoal(s string) bool { return g.goals[s] }

func (g *graphProblem) Successors(s string) []search.Successor[string] {
	out := make([]search.Successor[string], 0, len(g.adj[s]))
	for _, e := range g.adj[s] {
		out = append(out, search.Successor[string]{State: e.to, Action: e.action, Cost: e.cost})
	}
	return out
}

func (g *graphProblem) CostOfActions(actions []search.Action) float64 {
	cur, total := g.start, 0.0
	for _, a := range actions {
		moved := false
		for _, e := range g.adj[cur] {
			if e.action == a {
				cur, total, moved = e.to, total+e.cost, true
				break
			}
		}
		if !moved {
			return search.InfeasibleCost
		}
	}
	return total
}

// diamond builds:
//
//	S -a(1)-> A -c(1)-> C -d(1)-> D -g2(1)-> G
//	S -b(4)-> B -g1(1)-> G
//	A -g3(5)-> G
//
// Fewest actions: [a g3] (BFS order) or [b g1]; cheapest: [a c d g2] = 4.
func diamond() *graphProblem {
	return &graphProblem{
		start: "S",
		goals: map[string]bool{"G": true},
		adj: map[string][]edge{
			"S": {{"A", "a", 1}, {"B", "b", 4}},
			"A": {{"C", "c", 1}, {"G", "g3", 5}},
			"B": {{"G", "g1", 1}},
			"C": {{"D", "d", 1}},
			"D": {{"G", "g2", 1}},
		},
	}
}

// diamondH is a consistent heuristic for diamond.
func diamondH(s string, _ *graphProblem) float64 {
	return map[string]float64{"S": 4, "A": 3, "B": 1, "C": 2, "D": 1, "G": 0}[s]
}
