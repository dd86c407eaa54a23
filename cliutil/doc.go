// Package cliutil is the CLI plumbing shared by every cmd/attractors-*
// binary: read a network from stdin, build its symbolic graph, run the
// requested reducer/finder combination, and render the result.
//
// This is the one piece of genuinely shared behaviour across the five
// front-ends; everything else a given binary does is picking which
// reducer and finder to call.
package cliutil
