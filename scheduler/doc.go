// Package scheduler provides the two process.Scheduler implementations
// that package reduce drives: PriorityScheduler, which always steps its
// symbolically smallest live process next (a min-heap ordered by
// process.Process.Weight, in the manner of prim_kruskal's edge
// priority queue), and RoundRobinScheduler, which steps every live
// process exactly once per round, blind to cost.
//
// Both hold the shared universe and active-variable set that every
// spawned process reads through the process.Scheduler interface, and
// both shrink monotonically: DiscardStates only removes states,
// DiscardVariable only removes variables, and neither scheduler ever
// re-admits what it has discarded.
package scheduler
