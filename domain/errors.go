package domain

import "errors"

var (
	// ErrInvalidArgument reports an input outside the domain of a calculation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoRootInBracket reports that a solver's search interval does not
	// contain a sign change.
	ErrNoRootInBracket = errors.New("no root in bracket")
)
