// Package explicit is a reference implementation of the symbolic package's
// façade contract (CVSet, ColourSet, SymbolicGraph) over an explicit,
// bitset-backed representation of State × Colour.
//
// It exists because the actual binary-decision-diagram engine the core is
// designed against is, per this project's scope, an external collaborator
// — no such package is available to import, and fabricating a fake one
// would be worse than being honest about the substitution. Every
// algorithm in reach/, process/, scheduler/, reduce/, and attractor/ is
// written purely in terms of the symbolic interfaces, so swapping this
// package for a real BDD-backed one is a one-line change at the call
// site, not a rewrite.
//
// What:
//
//   - Graph holds a fixed variable order, one UpdateFunc closure per
//     variable, and the number of uninterpreted Boolean parameters (the
//     "colour" axis); package bnet compiles a parsed network into one.
//   - Set is a flat bitset over State × Colour, where a (state, colour)
//     pair is encoded as state*NumColours + colour.
//   - Every CVSet/ColourSet algebra method is O(words) bit-twiddling;
//     there is no sharing or canonicalization the way a real BDD would
//     provide, so this backend is only suitable for small models (the
//     scenarios in attractor/scenarios_test.go all fit in a handful of
//     variables).
//
// Errors:
//
//   - symbolic.ErrEmptyUniverse: returned by NewGraph when given no
//     update functions.
//   - symbolic.ErrUnknownVariable: returned by NewGraph when given more
//     than 64 update functions or parameters.
//   - PickVertex on an empty Set panics with symbolic.InvariantViolation
//     carrying symbolic.ErrPickOnEmpty's message; a Variable outside
//     [0, NumVars) passed to a Graph method panics with
//     symbolic.InvariantViolation as well.
package explicit
