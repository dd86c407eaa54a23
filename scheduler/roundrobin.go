package scheduler

import (
	"github.com/katalvlaran/bnattract/process"
	"github.com/katalvlaran/bnattract/symbolic"
)

// RoundRobinScheduler steps every live process exactly once per round,
// blind to cost. It implements process.Scheduler.
//
// As with PriorityScheduler, spawns and discards issued mid-round are
// buffered and only take effect at the start of the next Step call.
type RoundRobinScheduler struct {
	universe       symbolic.CVSet
	variables      []symbolic.Variable
	processes      []process.Process
	pendingSpawn   []process.Process
	pendingDiscard symbolic.CVSet
}

// NewRoundRobinScheduler seeds a scheduler over universe and variables
// with no processes queued yet.
func NewRoundRobinScheduler(universe symbolic.CVSet, variables []symbolic.Variable) *RoundRobinScheduler {
	return &RoundRobinScheduler{
		universe:  universe,
		variables: append([]symbolic.Variable(nil), variables...),
	}
}

func (s *RoundRobinScheduler) Universe() symbolic.CVSet       { return s.universe }
func (s *RoundRobinScheduler) Variables() []symbolic.Variable { return s.variables }

func (s *RoundRobinScheduler) DiscardStates(set symbolic.CVSet) {
	s.universe = s.universe.Minus(set)
	if s.pendingDiscard == nil {
		s.pendingDiscard = set
	} else {
		s.pendingDiscard = s.pendingDiscard.Union(set)
	}
}

func (s *RoundRobinScheduler) DiscardVariable(v symbolic.Variable) {
	out := s.variables[:0]
	for _, x := range s.variables {
		if x != v {
			out = append(out, x)
		}
	}
	s.variables = out
}

func (s *RoundRobinScheduler) Spawn(p process.Process) {
	s.pendingSpawn = append(s.pendingSpawn, p)
}

// Step admits pending spawns and distributes any pending discard, then
// steps every currently live process exactly once, in order, keeping
// only those that returned false. It returns the number of processes
// stepped this round, 0 iff none remained.
func (s *RoundRobinScheduler) Step(graph symbolic.SymbolicGraph) int {
	s.processes = append(s.processes, s.pendingSpawn...)
	s.pendingSpawn = nil

	if s.pendingDiscard != nil && !s.pendingDiscard.IsEmpty() {
		for _, p := range s.processes {
			p.DiscardStates(s.pendingDiscard)
		}
		s.pendingDiscard = nil
	}

	round := s.processes
	s.processes = nil
	for _, p := range round {
		if !p.Step(s, graph) {
			s.processes = append(s.processes, p)
		}
	}

	return len(round)
}

// Run steps the scheduler to exhaustion and returns the surviving
// universe and variables.
func (s *RoundRobinScheduler) Run(graph symbolic.SymbolicGraph) (symbolic.CVSet, []symbolic.Variable) {
	for s.Step(graph) != 0 {
	}

	return s.universe, s.variables
}
