package bnet

import "errors"

// ErrEmptyInput indicates the network text had no variable declarations.
var ErrEmptyInput = errors.New("bnet: input defines no variables")

// ErrDuplicateVariable indicates the same variable name was declared
// more than once.
var ErrDuplicateVariable = errors.New("bnet: duplicate variable declaration")

// ErrUnknownVariable indicates an expression referenced a name that was
// never declared on the left-hand side of a `name := expression` line.
var ErrUnknownVariable = errors.New("bnet: reference to an undeclared variable")

// ErrSyntax indicates a line could not be parsed as `name := expression`
// or the expression grammar was violated.
var ErrSyntax = errors.New("bnet: syntax error")

// ErrTooManyVariables indicates the network declares more variables
// than the explicit backend can address (64, one per bit of a uint64
// state word).
var ErrTooManyVariables = errors.New("bnet: too many variables for the explicit backend")
