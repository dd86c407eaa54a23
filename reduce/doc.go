// Package reduce drives transition-guided reduction: spawning a
// ReachAfterPost process per variable over one of the two schedulers in
// package scheduler, then draining it to a fixed point.
//
// A third, scheduler-free Sequential variant is provided as a
// correctness baseline: it performs the same per-variable elimination
// in a single pass, variable by variable, with no process suspension
// and no symbolic-size arbitration. All three are semantically
// equivalent up to the ordering of the surviving variable list (see
// the equivalence tests).
package reduce
