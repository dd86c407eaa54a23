// Command attractors is the config-driven front-end: it reads a
// Boolean network from standard input and an optional YAML config
// file, resolves which reducer, finder, and pivot strategy to run
// (command-line flags override the file, which overrides the
// defaults), and writes the resulting attractors to standard output.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	"github.com/katalvlaran/bnattract/attractor"
	"github.com/katalvlaran/bnattract/cliutil"
	"github.com/katalvlaran/bnattract/config"
	"github.com/katalvlaran/bnattract/reduce"
	"github.com/katalvlaran/bnattract/symbolic"
)

func main() {
	logger := log.New(os.Stderr, "attractors: ", 0)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(symbolic.InvariantViolation); ok {
				logger.Printf("internal invariant violation: %v", r)
				os.Exit(2)
			}
			panic(r)
		}
	}()

	opts, err := resolveOptions(os.Args[1:], logger)
	if err != nil {
		logger.Printf("%v", err)
		os.Exit(1)
	}

	reducer, err := reducerFor(opts.Reducer)
	if err != nil {
		logger.Printf("%v", err)
		os.Exit(1)
	}
	finder, err := finderFor(opts.Finder)
	if err != nil {
		logger.Printf("%v", err)
		os.Exit(1)
	}
	pivotFactory, err := pivotFactoryFor(opts.Pivot, opts.Seed)
	if err != nil {
		logger.Printf("%v", err)
		os.Exit(1)
	}

	code := cliutil.RunPipeline(os.Stdin, os.Stdout, logger, reducer, finder, pivotFactory)
	os.Exit(code)
}

// resolveOptions loads config.Default(), overlays an optional
// -config YAML file, then overlays any flags explicitly set on the
// command line.
func resolveOptions(args []string, logger *log.Logger) (config.Options, error) {
	var configPath string
	probe := flag.NewFlagSet("attractors", flag.ContinueOnError)
	probe.StringVar(&configPath, "config", "", "path to a YAML config file")
	flagged := config.RegisterFlags(probe, config.Default())
	if err := probe.Parse(args); err != nil {
		return config.Options{}, err
	}

	base := config.Default()
	if configPath != "" {
		fromFile, err := config.FromYAML(configPath)
		if err != nil {
			return config.Options{}, err
		}
		base = fromFile
	}

	resolved := config.Resolve(probe, base, flagged)
	if err := resolved.Validate(); err != nil {
		return config.Options{}, err
	}

	return resolved, nil
}

func reducerFor(name string) (cliutil.ReducerFunc, error) {
	switch name {
	case config.ReducerPriority:
		return reduce.Priority, nil
	case config.ReducerRoundRobin:
		return reduce.RoundRobin, nil
	case config.ReducerSequential:
		return reduce.Sequential, nil
	default:
		return nil, config.ErrUnknownReducer
	}
}

func finderFor(name string) (cliutil.FinderFunc, error) {
	switch name {
	case config.FinderBasin:
		return attractor.Find, nil
	case config.FinderLockstep:
		return attractor.FindLockstep, nil
	default:
		return nil, config.ErrUnknownFinder
	}
}

func pivotFactoryFor(name string, seed int64) (cliutil.PivotFactory, error) {
	switch name {
	case config.PivotDeterministic:
		return cliutil.StaticPivot(attractor.PickVertexPivot), nil
	case config.PivotRandom:
		rng := rand.New(rand.NewSource(seed))
		return func(graph symbolic.SymbolicGraph) attractor.PivotFunc {
			return attractor.NewRandomPivot(graph, rng)
		}, nil
	default:
		return nil, config.ErrUnknownPivot
	}
}
