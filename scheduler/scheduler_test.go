package scheduler_test

import (
	"testing"

	"github.com/katalvlaran/bnattract/process"
	"github.com/katalvlaran/bnattract/scheduler"
	"github.com/katalvlaran/bnattract/symbolic/explicit"
)

// constantInputChain builds "v1 := 1; v2 := !v2": v1 latches permanently
// to 1, v2 free-runs a self-negation 2-cycle. States with v1 = 0 are
// transient; the only attractor lives entirely within v1 = 1.
func constantInputChain(t *testing.T) *explicit.Graph {
	t.Helper()
	g, err := explicit.NewGraph([]explicit.UpdateFunc{
		func(_, _ uint64) bool { return true },
		func(state, _ uint64) bool { return state&2 == 0 },
	}, 0)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestPriorityScheduler_ConstantInputChain_ConvergesToTheSettledStates(t *testing.T) {
	g := constantInputChain(t)
	universe := g.UnitUniverse()
	sched := scheduler.NewPriorityScheduler(universe, g.Variables())
	for _, v := range sched.Variables() {
		sched.Spawn(process.NewReachAfterPost(v, g, sched.Universe()))
	}

	finalUniverse, finalVariables := sched.Run(g)

	settled := g.FixVariable(0, true)
	if !finalUniverse.Equals(settled) {
		t.Errorf("priority reduction should converge to exactly the v1 = 1 states")
	}
	for _, v := range finalVariables {
		if v == 0 {
			t.Errorf("v1 should be retired once it can no longer fire")
		}
	}
}

func TestRoundRobinScheduler_ConstantInputChain_ConvergesToTheSettledStates(t *testing.T) {
	g := constantInputChain(t)
	universe := g.UnitUniverse()
	sched := scheduler.NewRoundRobinScheduler(universe, g.Variables())
	for _, v := range sched.Variables() {
		sched.Spawn(process.NewReachAfterPost(v, g, sched.Universe()))
	}

	finalUniverse, finalVariables := sched.Run(g)

	settled := g.FixVariable(0, true)
	if !finalUniverse.Equals(settled) {
		t.Errorf("round-robin reduction should converge to exactly the v1 = 1 states")
	}
	for _, v := range finalVariables {
		if v == 0 {
			t.Errorf("v1 should be retired once it can no longer fire")
		}
	}
}

func TestPriorityScheduler_DiscardStatesPropagatesToQueuedProcesses(t *testing.T) {
	g := constantInputChain(t)
	universe := g.UnitUniverse()
	sched := scheduler.NewPriorityScheduler(universe, g.Variables())
	fwd := process.NewFwd(g.FixVariable(0, false), universe)
	sched.Spawn(fwd)

	transient := g.FixVariable(0, false)
	sched.DiscardStates(transient)

	if !sched.Universe().Intersect(transient).IsEmpty() {
		t.Errorf("DiscardStates must shrink the scheduler's own universe")
	}

	// Propagation to already-queued processes is distributed at the start
	// of the next Step call, not synchronously with DiscardStates.
	sched.Step(g)

	if !fwd.ReachSet().Intersect(transient).IsEmpty() {
		t.Errorf("DiscardStates must also shrink every process still queued")
	}
}
