// Command attractors-roundrobin reads a Boolean network from standard
// input, runs round-robin-scheduled transition-guided reduction over
// it, then searches the reduced universe with the basin-elimination
// finder.
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/bnattract/attractor"
	"github.com/katalvlaran/bnattract/cliutil"
	"github.com/katalvlaran/bnattract/reduce"
	"github.com/katalvlaran/bnattract/symbolic"
)

func main() {
	logger := log.New(os.Stderr, "attractors-roundrobin: ", 0)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(symbolic.InvariantViolation); ok {
				logger.Printf("internal invariant violation: %v", r)
				os.Exit(2)
			}
			panic(r)
		}
	}()

	code := cliutil.RunPipeline(os.Stdin, os.Stdout, logger, reduce.RoundRobin, attractor.Find, cliutil.StaticPivot(attractor.PickVertexPivot))
	os.Exit(code)
}
