package config

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Reducer names, matching spec's {priority, round-robin, sequential}.
const (
	ReducerPriority   = "priority"
	ReducerRoundRobin = "round-robin"
	ReducerSequential = "sequential"
)

// Finder names, matching spec's {basin, lockstep}.
const (
	FinderBasin    = "basin"
	FinderLockstep = "lockstep"
)

// Pivot names, matching spec's {deterministic, random(seed)}.
const (
	PivotDeterministic = "deterministic"
	PivotRandom        = "random"
)

// Options is the recognised runtime configuration: which reducer,
// finder, and pivot strategy to run, and the PRNG seed the random
// pivot strategy uses.
type Options struct {
	Reducer string `yaml:"reducer" mapstructure:"reducer"`
	Finder  string `yaml:"finder" mapstructure:"finder"`
	Pivot   string `yaml:"pivot" mapstructure:"pivot"`
	Seed    int64  `yaml:"seed" mapstructure:"seed"`
}

// Default returns the baseline options: priority reduction, lock-step
// search, deterministic pivot selection.
func Default() Options {
	return Options{
		Reducer: ReducerPriority,
		Finder:  FinderLockstep,
		Pivot:   PivotDeterministic,
		Seed:    0,
	}
}

// Validate reports whether every field names a recognised value. Every
// combination that validates is semantically valid, per spec §9.
func (o Options) Validate() error {
	switch o.Reducer {
	case ReducerPriority, ReducerRoundRobin, ReducerSequential:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownReducer, o.Reducer)
	}
	switch o.Finder {
	case FinderBasin, FinderLockstep:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFinder, o.Finder)
	}
	switch o.Pivot {
	case PivotDeterministic, PivotRandom:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPivot, o.Pivot)
	}
	return nil
}

// FromYAML reads path as a YAML config file and unmarshals it over
// Default(). Unset fields keep their defaults.
func FromYAML(path string) (Options, error) {
	opts := Default()

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return opts, err
	}
	if err := vp.Unmarshal(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// RegisterFlags binds Options' fields onto fs, seeded with base, and
// returns the bound Options. Call fs.Parse, then Resolve to apply only
// the flags the caller actually set.
func RegisterFlags(fs *flag.FlagSet, base Options) *Options {
	opts := base
	fs.StringVar(&opts.Reducer, "reducer", base.Reducer, "reducer: priority, round-robin, or sequential")
	fs.StringVar(&opts.Finder, "finder", base.Finder, "attractor finder: basin or lockstep")
	fs.StringVar(&opts.Pivot, "pivot", base.Pivot, "pivot strategy: deterministic or random")
	fs.Int64Var(&opts.Seed, "seed", base.Seed, "PRNG seed for the random pivot strategy")

	return &opts
}

// Resolve starts from a YAML-loaded base (or Default()) and overrides
// only the fields fs.Parse actually saw on the command line, so a
// config file supplies defaults and explicit flags win ties.
func Resolve(fs *flag.FlagSet, base Options, flagged *Options) Options {
	resolved := base
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "reducer":
			resolved.Reducer = flagged.Reducer
		case "finder":
			resolved.Finder = flagged.Finder
		case "pivot":
			resolved.Pivot = flagged.Pivot
		case "seed":
			resolved.Seed = flagged.Seed
		}
	})

	return resolved
}
