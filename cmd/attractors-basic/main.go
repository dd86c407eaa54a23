// Command attractors-basic reads a Boolean network from standard
// input and searches it for attractors with no transition-guided
// reduction: attractor.Find runs directly against the network's full
// unit universe, picking each pivot deterministically.
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/bnattract/attractor"
	"github.com/katalvlaran/bnattract/cliutil"
	"github.com/katalvlaran/bnattract/symbolic"
)

func main() {
	logger := log.New(os.Stderr, "attractors-basic: ", 0)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(symbolic.InvariantViolation); ok {
				logger.Printf("internal invariant violation: %v", r)
				os.Exit(2)
			}
			panic(r)
		}
	}()

	code := cliutil.RunPipeline(os.Stdin, os.Stdout, logger, cliutil.Identity, attractor.Find, cliutil.StaticPivot(attractor.PickVertexPivot))
	os.Exit(code)
}
