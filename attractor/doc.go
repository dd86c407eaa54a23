// Package attractor finds terminal bottom strongly connected components
// (attractors) of a reduced symbolic graph.
//
// Find implements the basin-elimination loop directly against the
// batch reachability kernel in package reach. FindLockstep reuses
// process.Fwd and exits a candidate component early the moment its
// growing forward reach escapes the pivot's backward basin, trading a
// different BDD-size profile for the same result set.
//
// Both take a PivotFunc so callers can choose between PickVertexPivot
// (deterministic) and a seeded RandomPivot.
package attractor
