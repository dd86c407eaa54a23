package reduce

import (
	"github.com/katalvlaran/bnattract/process"
	"github.com/katalvlaran/bnattract/reach"
	"github.com/katalvlaran/bnattract/scheduler"
	"github.com/katalvlaran/bnattract/symbolic"
)

// Priority spawns a ReachAfterPost process per graph variable over a
// PriorityScheduler and drains it to a fixed point.
func Priority(graph symbolic.SymbolicGraph, universe symbolic.CVSet) (symbolic.CVSet, []symbolic.Variable) {
	sched := scheduler.NewPriorityScheduler(universe, graph.Variables())
	for _, v := range sched.Variables() {
		sched.Spawn(process.NewReachAfterPost(v, graph, sched.Universe()))
	}

	return sched.Run(graph)
}

// RoundRobin spawns a ReachAfterPost process per graph variable over a
// RoundRobinScheduler and drains it to a fixed point.
func RoundRobin(graph symbolic.SymbolicGraph, universe symbolic.CVSet) (symbolic.CVSet, []symbolic.Variable) {
	sched := scheduler.NewRoundRobinScheduler(universe, graph.Variables())
	for _, v := range sched.Variables() {
		sched.Spawn(process.NewReachAfterPost(v, graph, sched.Universe()))
	}

	return sched.Run(graph)
}

// Sequential performs the same per-variable elimination as
// ReachAfterPost/ExtendedComponent, but in a single pass over each
// variable with no suspension and no scheduler: for each v, compute
// reach_fwd from var_can_post(v, U), discard its predecessor basin,
// compute reach_bwd from the same seed inside the forward set to get
// the extended component, discard the basin of the leftover bottom
// region, and retire v if it can no longer fire against the current
// universe. It is a correctness baseline for Priority and RoundRobin,
// not a performance alternative.
func Sequential(graph symbolic.SymbolicGraph, universe symbolic.CVSet) (symbolic.CVSet, []symbolic.Variable) {
	allVariables := graph.Variables()
	variables := append([]symbolic.Variable(nil), allVariables...)

	for _, v := range allVariables {
		varCanPost := graph.VarCanPost(v, universe)

		fwdSet := reach.Fwd(graph, variables, varCanPost, universe)
		if !fwdSet.Equals(universe) {
			if basin := reach.Bwd(graph, variables, fwdSet, universe).Minus(fwdSet); !basin.IsEmpty() {
				universe = universe.Minus(basin)
			}
		}

		extendedComponent := reach.Bwd(graph, variables, varCanPost, fwdSet)
		if bottom := fwdSet.Minus(extendedComponent); !bottom.IsEmpty() {
			if basin := reach.Bwd(graph, variables, bottom, universe).Minus(bottom); !basin.IsEmpty() {
				universe = universe.Minus(basin)
			}
		}

		if graph.VarCanPost(v, universe).IsEmpty() {
			variables = removeVariable(variables, v)
		}
	}

	return universe, variables
}

func removeVariable(variables []symbolic.Variable, v symbolic.Variable) []symbolic.Variable {
	out := variables[:0]
	for _, x := range variables {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
