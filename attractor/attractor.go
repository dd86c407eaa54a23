package attractor

import (
	"github.com/katalvlaran/bnattract/process"
	"github.com/katalvlaran/bnattract/reach"
	"github.com/katalvlaran/bnattract/symbolic"
)

// Find enumerates terminal bottom SCCs of universe by repeated
// basin elimination: pick a pivot, compute its backward basin within
// the remaining universe, compute the pivot's forward closure inside
// that basin, and keep the component for whichever colours have no
// outgoing transition out of it. The whole basin is then removed from
// the remaining universe, guaranteeing no duplicate results.
func Find(graph symbolic.SymbolicGraph, variables []symbolic.Variable, universe symbolic.CVSet, pivot PivotFunc) []symbolic.CVSet {
	var result []symbolic.CVSet
	remaining := universe

	for !remaining.IsEmpty() {
		p := pivot(remaining)
		basin := reach.Bwd(graph, variables, p, remaining)
		component := reach.Fwd(graph, variables, p, basin)

		if terminal := terminalColours(graph, component); !terminal.IsEmpty() {
			result = append(result, component.IntersectColours(terminal))
		}

		remaining = remaining.Minus(basin)
	}

	return result
}

// FindLockstep is equivalent to Find but drives the forward closure
// incrementally through process.Fwd, bailing out of a candidate
// component the moment its reach escapes the pivot's backward basin
// instead of growing it to completion first.
func FindLockstep(graph symbolic.SymbolicGraph, variables []symbolic.Variable, universe symbolic.CVSet, pivot PivotFunc) []symbolic.CVSet {
	var result []symbolic.CVSet
	remaining := universe
	sched := &staticScheduler{universe: graph.UnitUniverse(), variables: variables}

	for !remaining.IsEmpty() {
		p := pivot(remaining)
		basin := reach.Bwd(graph, variables, p, remaining)

		fwd := process.NewFwd(p, graph.UnitUniverse())
		terminalCandidate := true
		for {
			done := fwd.Step(sched, graph)
			if !fwd.ReachSet().IsSubset(basin) {
				terminalCandidate = false
				break
			}
			if done {
				break
			}
		}

		if terminalCandidate {
			component := fwd.ReachSet()
			if terminal := terminalColours(graph, component); !terminal.IsEmpty() {
				result = append(result, component.IntersectColours(terminal))
			}
		}

		remaining = remaining.Minus(basin)
	}

	return result
}

// terminalColours is the set of colours for which component has no
// outgoing transition: component is both forward- and backward-closed
// for exactly those colours, making it a bottom SCC for each.
func terminalColours(graph symbolic.SymbolicGraph, component symbolic.CVSet) symbolic.ColourSet {
	exit := graph.Post(component).Minus(component).Colours()
	return component.Colours().Minus(exit)
}

// staticScheduler is a fixed, non-mutating process.Scheduler: enough
// for driving a single process.Fwd that never spawns or discards.
type staticScheduler struct {
	universe  symbolic.CVSet
	variables []symbolic.Variable
}

func (s *staticScheduler) Universe() symbolic.CVSet         { return s.universe }
func (s *staticScheduler) Variables() []symbolic.Variable   { return s.variables }
func (s *staticScheduler) DiscardStates(symbolic.CVSet)     {}
func (s *staticScheduler) DiscardVariable(symbolic.Variable) {}
func (s *staticScheduler) Spawn(process.Process)            {}
