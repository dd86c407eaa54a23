package process

import "github.com/katalvlaran/bnattract/symbolic"

// Bwd is the backward counterpart of Fwd, built over var_pre.
type Bwd struct {
	reach    symbolic.CVSet
	universe symbolic.CVSet
}

// NewBwd seeds a Bwd process at initial, restricted to universe.
func NewBwd(initial, universe symbolic.CVSet) *Bwd {
	return &Bwd{reach: initial.Intersect(universe), universe: universe}
}

// ReachSet is the backward closure computed so far.
func (p *Bwd) ReachSet() symbolic.CVSet { return p.reach }

func (p *Bwd) Step(scheduler Scheduler, graph symbolic.SymbolicGraph) bool {
	variables := scheduler.Variables()
	if len(variables) == 0 {
		return true
	}
	for i := len(variables) - 1; i >= 0; i-- {
		v := variables[i]
		pre := graph.VarPre(v, p.reach).Intersect(p.universe).Minus(p.reach)
		if pre.IsEmpty() {
			continue
		}
		p.reach = p.reach.Union(pre)
		return false
	}
	return true
}

func (p *Bwd) Weight() int { return p.reach.SymbolicSize() }

func (p *Bwd) DiscardStates(set symbolic.CVSet) {
	p.reach = p.reach.Minus(set)
	p.universe = p.universe.Minus(set)
}
