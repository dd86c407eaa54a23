// Package reach implements the saturating reachability kernel shared by
// every process, scheduler, and attractor-search variant in this module:
// the forward and backward closure of a set of (state, colour) pairs,
// restricted to a universe, using per-variable saturation order.
//
// What:
//
//   - Fwd computes the least fixed point of R0 = initial, Rn+1 = Rn ∪
//     ((⋃v var_post(v, Rn)) ∩ universe).
//   - Bwd is the symmetric construction over var_pre.
//
// Why saturation:
//
//   - Picking the highest-indexed variable first and restarting there on
//     every successful step (rather than sweeping all variables
//     breadth-first) biases work toward variables that are currently
//     productive, which empirically keeps the intermediate CVSets small.
//
// Complexity: each iteration is one VarPost/VarPre call; termination is
// guaranteed because the CVSet lattice is finite and every non-empty step
// strictly increases the result.
package reach
