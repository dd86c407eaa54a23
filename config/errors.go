package config

import "errors"

// ErrUnknownReducer indicates Options.Reducer named something other
// than priority, round-robin, or sequential.
var ErrUnknownReducer = errors.New("config: unknown reducer")

// ErrUnknownFinder indicates Options.Finder named something other than
// basin or lockstep.
var ErrUnknownFinder = errors.New("config: unknown finder")

// ErrUnknownPivot indicates Options.Pivot named something other than
// deterministic or random.
var ErrUnknownPivot = errors.New("config: unknown pivot strategy")
