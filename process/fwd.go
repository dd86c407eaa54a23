package process

import "github.com/katalvlaran/bnattract/symbolic"

// Fwd is a forward closure under incremental construction: each Step
// scans variables from the highest index downward, applies the first one
// that enlarges the reach set, and returns false; if every variable
// (down to the lowest) yields nothing new, Step returns true.
type Fwd struct {
	reach    symbolic.CVSet
	universe symbolic.CVSet
}

// NewFwd seeds a Fwd process at initial, restricted to universe.
func NewFwd(initial, universe symbolic.CVSet) *Fwd {
	return &Fwd{reach: initial.Intersect(universe), universe: universe}
}

// ReachSet is the forward closure computed so far.
func (p *Fwd) ReachSet() symbolic.CVSet { return p.reach }

func (p *Fwd) Step(scheduler Scheduler, graph symbolic.SymbolicGraph) bool {
	variables := scheduler.Variables()
	if len(variables) == 0 {
		return true
	}
	for i := len(variables) - 1; i >= 0; i-- {
		v := variables[i]
		post := graph.VarPost(v, p.reach).Intersect(p.universe).Minus(p.reach)
		if post.IsEmpty() {
			continue
		}
		p.reach = p.reach.Union(post)
		return false
	}
	return true
}

func (p *Fwd) Weight() int { return p.reach.SymbolicSize() }

func (p *Fwd) DiscardStates(set symbolic.CVSet) {
	p.reach = p.reach.Minus(set)
	p.universe = p.universe.Minus(set)
}
