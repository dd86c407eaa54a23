package process

import (
	"github.com/katalvlaran/bnattract/reach"
	"github.com/katalvlaran/bnattract/symbolic"
)

// ExtendedComponent wraps a Bwd process seeded at var_can_post(v, U) and
// restricted to a previously computed forward-reach set (fwdSet, from the
// ReachAfterPost that spawned it). On completion it discards the basin of
// whatever part of fwdSet its backward closure failed to re-cover — states
// that can reach fwdSet but can never be reached back from it, so they
// cannot lie on a bottom SCC for v either — and retires v once it can no
// longer fire anywhere in the surviving universe.
type ExtendedComponent struct {
	variable symbolic.Variable
	fwdSet   symbolic.CVSet
	bwd      *Bwd
}

// NewExtendedComponent builds the process for variable v, given the
// forward-reach set fwdSet it must fold back into, over the given
// universe.
func NewExtendedComponent(v symbolic.Variable, fwdSet, universe symbolic.CVSet, graph symbolic.SymbolicGraph) *ExtendedComponent {
	varCanPost := graph.VarCanPost(v, universe)
	return &ExtendedComponent{
		variable: v,
		fwdSet:   fwdSet,
		bwd:      NewBwd(varCanPost, fwdSet),
	}
}

func (p *ExtendedComponent) Step(scheduler Scheduler, graph symbolic.SymbolicGraph) bool {
	if !p.bwd.Step(scheduler, graph) {
		return false
	}

	extendedComponent := p.bwd.ReachSet()
	bottomRegion := p.fwdSet.Minus(extendedComponent)
	if !bottomRegion.IsEmpty() {
		basin := reach.Bwd(graph, scheduler.Variables(), bottomRegion, scheduler.Universe()).Minus(bottomRegion)
		if !basin.IsEmpty() {
			scheduler.DiscardStates(basin)
		}
	}

	if graph.VarCanPost(p.variable, scheduler.Universe()).IsEmpty() {
		scheduler.DiscardVariable(p.variable)
	}

	return true
}

func (p *ExtendedComponent) Weight() int { return p.bwd.Weight() }

func (p *ExtendedComponent) DiscardStates(set symbolic.CVSet) { p.bwd.DiscardStates(set) }
