package scheduler

import (
	"container/heap"

	"github.com/katalvlaran/bnattract/process"
	"github.com/katalvlaran/bnattract/symbolic"
)

// PriorityScheduler always favours its symbolically smallest live
// process, re-weighing after every micro-step, so a single runaway
// computation never starves cheaper competitors. It implements
// process.Scheduler.
//
// Spawns and discards issued mid-step are buffered and only take
// effect at the start of the scheduler's next Step call: a spawn is
// invisible to the step that created it, and every live process sees
// a discard only once, applied uniformly before it runs again.
type PriorityScheduler struct {
	universe       symbolic.CVSet
	variables      []symbolic.Variable
	queue          *processQueue
	pendingSpawn   []process.Process
	pendingDiscard symbolic.CVSet
}

// NewPriorityScheduler seeds a scheduler over universe and variables
// with an empty queue; Spawn the initial processes before the first
// Step or Run call.
func NewPriorityScheduler(universe symbolic.CVSet, variables []symbolic.Variable) *PriorityScheduler {
	q := &processQueue{}
	heap.Init(q)
	return &PriorityScheduler{
		universe:  universe,
		variables: append([]symbolic.Variable(nil), variables...),
		queue:     q,
	}
}

func (s *PriorityScheduler) Universe() symbolic.CVSet       { return s.universe }
func (s *PriorityScheduler) Variables() []symbolic.Variable { return s.variables }

func (s *PriorityScheduler) DiscardStates(set symbolic.CVSet) {
	s.universe = s.universe.Minus(set)
	if s.pendingDiscard == nil {
		s.pendingDiscard = set
	} else {
		s.pendingDiscard = s.pendingDiscard.Union(set)
	}
}

func (s *PriorityScheduler) DiscardVariable(v symbolic.Variable) {
	out := s.variables[:0]
	for _, x := range s.variables {
		if x != v {
			out = append(out, x)
		}
	}
	s.variables = out
}

func (s *PriorityScheduler) Spawn(p process.Process) { s.pendingSpawn = append(s.pendingSpawn, p) }

// Step admits pending spawns and distributes any pending discard, then
// drives the smallest-weight process until it either completes or
// grows past the weight of its nearest competitor. It returns 0 iff no
// process remained to run.
func (s *PriorityScheduler) Step(graph symbolic.SymbolicGraph) int {
	for _, p := range s.pendingSpawn {
		heap.Push(s.queue, p)
	}
	s.pendingSpawn = nil

	if s.pendingDiscard != nil && !s.pendingDiscard.IsEmpty() {
		for _, p := range *s.queue {
			p.DiscardStates(s.pendingDiscard)
		}
		s.pendingDiscard = nil
	}

	if s.queue.Len() == 0 {
		return 0
	}

	if s.queue.Len() == 1 {
		p := heap.Pop(s.queue).(process.Process)
		iterations := 0
		for {
			iterations++
			if p.Step(s, graph) {
				return iterations
			}
		}
	}

	p := heap.Pop(s.queue).(process.Process)
	target := (*s.queue)[0].Weight()
	iterations := 0
	for {
		iterations++
		if p.Step(s, graph) {
			return iterations
		}
		if p.Weight() > target {
			heap.Push(s.queue, p)
			return iterations
		}
	}
}

// Run steps the scheduler to exhaustion and returns the surviving
// universe and variables.
func (s *PriorityScheduler) Run(graph symbolic.SymbolicGraph) (symbolic.CVSet, []symbolic.Variable) {
	for s.Step(graph) != 0 {
	}

	return s.universe, s.variables
}

// processQueue is a min-heap of process.Process ordered by Weight, in
// the shape of prim_kruskal's edgePQ.
type processQueue []process.Process

func (q processQueue) Len() int            { return len(q) }
func (q processQueue) Less(i, j int) bool  { return q[i].Weight() < q[j].Weight() }
func (q processQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *processQueue) Push(x interface{}) { *q = append(*q, x.(process.Process)) }
func (q *processQueue) Pop() interface{} {
	old := *q
	n := len(old)
	p := old[n-1]
	*q = old[:n-1]

	return p
}
