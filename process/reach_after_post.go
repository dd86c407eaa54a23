package process

import (
	"github.com/katalvlaran/bnattract/reach"
	"github.com/katalvlaran/bnattract/symbolic"
)

// ReachAfterPost wraps a Fwd process seeded at var_can_post(v, U). On
// completion it discards the predecessor basin of its forward-reach set
// (states that can only ever lead into it, not out of it, so they cannot
// host a bottom SCC for this variable) and spawns an ExtendedComponent to
// continue the elimination for v.
type ReachAfterPost struct {
	variable symbolic.Variable
	fwd      *Fwd
}

// NewReachAfterPost builds the process for variable v over the given
// universe.
func NewReachAfterPost(v symbolic.Variable, graph symbolic.SymbolicGraph, universe symbolic.CVSet) *ReachAfterPost {
	varCanPost := graph.VarCanPost(v, universe)
	return &ReachAfterPost{variable: v, fwd: NewFwd(varCanPost, universe)}
}

func (p *ReachAfterPost) Step(scheduler Scheduler, graph symbolic.SymbolicGraph) bool {
	if !p.fwd.Step(scheduler, graph) {
		return false
	}

	fwdSet := p.fwd.ReachSet()
	if !fwdSet.Equals(scheduler.Universe()) {
		basin := reach.Bwd(graph, scheduler.Variables(), fwdSet, scheduler.Universe()).Minus(fwdSet)
		if !basin.IsEmpty() {
			scheduler.DiscardStates(basin)
		}
	}

	scheduler.Spawn(NewExtendedComponent(p.variable, fwdSet, scheduler.Universe(), graph))

	return true
}

func (p *ReachAfterPost) Weight() int { return p.fwd.Weight() }

func (p *ReachAfterPost) DiscardStates(set symbolic.CVSet) { p.fwd.DiscardStates(set) }
