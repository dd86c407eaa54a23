// Package bnattract finds the terminal strongly connected components
// ("attractors") of an asynchronous Boolean network without ever
// enumerating a single state.
//
// 🧬 What is bnattract?
//
//	A symbolic attractor-detection engine that tracks whole sets of
//	(state, colour) pairs as coloured-vertex sets (CVSets) and drives
//	every reachability computation by fixed-point iteration rather than
//	explicit-state search:
//
//	  • symbolic/  — the CVSet / ColourSet / SymbolicGraph algebra contract
//	  • reach/     — the saturating forward/backward reachability kernel
//	  • process/   — incremental, pausable reachability units
//	  • scheduler/ — priority and round-robin arbiters over live processes
//	  • reduce/    — transition-guided reduction (TGR), shrinking the
//	                 candidate universe before the search begins
//	  • attractor/ — pivot-driven decomposition into bottom components
//
// ✨ Why symbolic?
//
//   - Scales      — state space is exponential in variable count; a BDD-backed
//     CVSet keeps the working set small even when the state space is not
//   - Parameterised — one CVSet simultaneously tracks every admissible
//     colouring (parameter valuation) of the transition function
//   - Deterministic — fixed pivot strategy + PRNG seed reproduce every byte
//     of output
//
// Under the hood, everything is organized as:
//
//	symbolic/          — façade contract + errors
//	symbolic/explicit/ — concrete bitset-backed reference implementation
//	reach/             — C1: reach_fwd / reach_bwd saturating kernel
//	process/           — C2: Fwd, Bwd, ReachAfterPost, ExtendedComponent
//	scheduler/         — C3: PriorityScheduler, RoundRobinScheduler
//	reduce/            — C4: TGR driver (priority / round-robin / sequential)
//	attractor/         — C5: pivot → basin → component → bottom-colour loop
//	bnet/              — minimal textual Boolean-network parser
//	config/            — runtime options (reducer, finder, pivot, seed)
//	cliutil/           — shared CLI plumbing for the cmd/ front-ends
//
// Pipeline:
//
//	BooleanNetwork → SymbolicGraph → [Reducer] → (U′, V′) → [AttractorFinder] → []ColouredSet
//
//	go get github.com/katalvlaran/bnattract
package bnattract
