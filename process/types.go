package process

import "github.com/katalvlaran/bnattract/symbolic"

// Process is one incremental, pausable reachability computation.
//
// Step advances by at most one symbolic update and returns true only
// once the process's work is complete and any completion-time side
// effects on the scheduler (spawning a follow-up process, discarding a
// basin, retiring a variable) have already happened.
//
// Weight reports the current symbolic size (BDD-node count, in a
// production backend) of the process's principal set; it must be cheap,
// since PriorityScheduler calls it every step.
//
// DiscardStates subtracts set from the process's internal reach set and
// universe restriction, so a process never expands into territory the
// scheduler has already eliminated.
type Process interface {
	Step(scheduler Scheduler, graph symbolic.SymbolicGraph) bool
	Weight() int
	DiscardStates(set symbolic.CVSet)
}

// Scheduler is the capability a Process's Step needs back from whatever
// is running it: the shared universe and active-variable set, and the
// ability to spawn follow-up processes, discard states, and retire
// variables that can no longer fire.
type Scheduler interface {
	Universe() symbolic.CVSet
	Variables() []symbolic.Variable
	DiscardStates(set symbolic.CVSet)
	DiscardVariable(v symbolic.Variable)
	Spawn(p Process)
}
