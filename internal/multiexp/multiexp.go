// Package multiexp wraps the variable-base multi-scalar multiplication
// kernel used to commit to polynomial coefficients.
package multiexp

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

var ErrTooManyGoRoutines = errors.New("number of goroutines must be less than 1024")

// MultiExpG1 computes an inner product between scalars and points, that
// is scalars[0]*points[0] + ... + scalars[n-1]*points[n-1]. The slices
// must have the same length; empty inputs yield the identity.
//
// The result is left in Jacobian form so callers can keep accumulating
// into it before one final affine conversion.
func MultiExpG1(scalars []fr.Element, points []bls12381.G1Affine) (*bls12381.G1Jac, error) {
	return multiExpG1(scalars, points, 0)
}

// MultiExpG1WithRoutines is MultiExpG1 with an explicit bound on the
// number of goroutines used. Zero or a negative value defaults to the
// number of CPUs.
func MultiExpG1WithRoutines(scalars []fr.Element, points []bls12381.G1Affine, numGoRoutines int) (*bls12381.G1Jac, error) {
	if err := isValidNumGoRoutines(numGoRoutines); err != nil {
		return nil, err
	}
	return multiExpG1(scalars, points, numGoRoutines)
}

func multiExpG1(scalars []fr.Element, points []bls12381.G1Affine, numGoRoutines int) (*bls12381.G1Jac, error) {
	var res bls12381.G1Jac
	if len(scalars) == 0 {
		return &res, nil
	}
	return res.MultiExp(points, scalars, ecc.MultiExpConfig{NbTasks: numGoRoutines})
}

// isValidNumGoRoutines returns an error if the number of goroutines to
// be used is not valid, meaning not less than 1024.
//
// 1024 is chosen here as the underlying gnark-crypto library will return
// an error for more than 1023 tasks. Instead of waiting until the MSM is
// invoked, we return the error here.
func isValidNumGoRoutines(value int) error {
	if value >= 1024 {
		return ErrTooManyGoRoutines
	}
	return nil
}
