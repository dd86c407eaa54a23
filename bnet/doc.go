// Package bnet is a deliberately small textual front end for Boolean
// networks: one `name := expression` line per variable, expressions
// built from variable names, !, &, |, parentheses, the literals 0/1,
// and an uninterpreted-parameter marker `?name`. It exists only to
// drive the cmd/* front-ends end to end from standard input; parsing
// and serialisation of richer Boolean-network formats is explicitly
// out of scope (see symbolic/explicit's doc comment for the analogous
// note about the BDD façade).
//
// Parse builds a Network; Network.ToSymbolicGraph compiles it into a
// symbolic/explicit.Graph by turning each variable's expression into an
// explicit.UpdateFunc closure over the packed (state, colour) pair.
package bnet
