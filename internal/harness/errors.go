package harness

import (
	"errors"
)

var (
	ErrInvariant        = errors.New("tree invariant violated")
	ErrMismatch         = errors.New("tree disagrees with model")
	ErrExpectation      = errors.New("script expectation failed")
	ErrUnknownOp        = errors.New("unknown operation")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUnknownKeySet    = errors.New("unknown key set")
)
