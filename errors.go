package kzg10

import (
	"errors"
	"fmt"
)

var (
	ErrDegreeIsZero      = errors.New("cannot create parameters supporting degree less than 1")
	ErrHidingBoundIsZero = errors.New("hiding bound must be at least 1")
	ErrMissingRng        = errors.New("hiding bound is set but no randomness source was given")
	ErrTerminated        = errors.New("operation was terminated by the caller")
	ErrLengthMismatch    = errors.New("number of commitments, points, values and proofs must be the same")
)

// TooManyCoefficientsError reports a polynomial that does not fit the
// available powers of the committer key.
type TooManyCoefficientsError struct {
	NumCoefficients int
	NumPowers       int
}

func (e *TooManyCoefficientsError) Error() string {
	return fmt.Sprintf("polynomial has %d coefficients but the key only holds %d powers", e.NumCoefficients, e.NumPowers)
}

// HidingBoundTooLargeError reports a blinding polynomial that does not
// fit the available powers of gamma*G.
type HidingBoundTooLargeError struct {
	HidingPolyDegree int
	NumPowers        int
}

func (e *HidingBoundTooLargeError) Error() string {
	return fmt.Sprintf("hiding bound %d is too large: only %d powers of gamma*G are available", e.HidingPolyDegree, e.NumPowers)
}

// UnsupportedDegreeBoundError reports a degree bound absent from the
// list resolved at setup time.
type UnsupportedDegreeBoundError struct {
	Bound int
}

func (e *UnsupportedDegreeBoundError) Error() string {
	return fmt.Sprintf("degree bound %d is not supported by the public parameters", e.Bound)
}

// IncorrectDegreeBoundError reports a degree bound inconsistent with the
// labeled polynomial carrying it.
type IncorrectDegreeBoundError struct {
	PolyDegree      int
	DegreeBound     int
	SupportedDegree int
	Label           string
}

func (e *IncorrectDegreeBoundError) Error() string {
	return fmt.Sprintf("polynomial %q of degree %d has an incorrect degree bound %d (supported degree %d)",
		e.Label, e.PolyDegree, e.DegreeBound, e.SupportedDegree)
}
