// Command attractors-priority reads a Boolean network from standard
// input, runs priority-scheduled transition-guided reduction over it,
// then searches the reduced universe with the lock-step finder.
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
	logger := log.New(os.Stderr, "attractors-priority: ", 0)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(symbolic.InvariantViolation); ok {
				logger.Printf("internal invariant violation: %v", r)
				os.Exit(2)
			}
			panic(r)
		}
	}()

	code := cliutil.RunPipeline(os.Stdin, os.Stdout, logger, reduce.Priority, attractor.FindLockstep, cliutil.StaticPivot(attractor.PickVertexPivot))
	os.Exit(code)
}
