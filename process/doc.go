// Package process implements incremental reachability units ("processes")
// and the Scheduler capability they run against.
//
// Each Process advances by at most one symbolic update per call to Step,
// so a Scheduler can interleave many of them, weigh them by symbolic
// size, and prune them the moment the shared universe shrinks. Process
// and Scheduler are expressed as capability-set interfaces (spec §9):
// Process needs only Step/Weight/DiscardStates, Scheduler only the
// handful of methods a Process's Step can call back into. There is no
// cyclic ownership — Scheduler implementations exclusively own their
// Processes; a Process only borrows its Scheduler for the duration of a
// Step call.
//
// Fwd and Bwd are the incremental counterparts of reach.Fwd/reach.Bwd:
// each Step performs one saturating unit of work instead of running to
// completion. ReachAfterPost and ExtendedComponent compose them into the
// two-phase "eliminate a variable's basin, then its bottom region" unit
// that transition-guided reduction (see package reduce) spawns once per
// network variable.
package process
