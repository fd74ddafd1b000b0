package search

// node is one immutable frontier entry. Children point at their parent;
// parents are never mutated.
type node[S comparable] struct {
	state  S
	parent *node[S]
	action Action  // action taken from parent; empty at the root
	cost   float64 // accumulated step cost from the start
	depth  int     // number of actions from the start
}

// child builds the node reached from n through succ.
func (n *node[S]) child(succ Successor[S]) *node[S] {
	return &node[S]{
		state:  succ.State,
		parent: n,
		action: succ.Action,
		cost:   n.cost + succ.Cost,
		depth:  n.depth + 1,
	}
}

// path materializes the action sequence from the root to n.
func (n *node[S]) path() []Action {
	actions := make([]Action, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		actions[cur.depth-1] = cur.action
	}
	return actions
}
