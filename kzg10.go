// Package kzg10 implements the polynomial commitment scheme of Kate,
// Zaverucha and Goldberg over BLS12-381: a prover binds itself to a
// polynomial with a single G1 element and later proves, with a constant
// size proof, that the polynomial evaluates to a claimed value at a
// chosen point.
//
// Commitments are optionally hiding: a random blinding polynomial is
// committed against a second power table and its evaluation travels in
// the proof so the verifier can cancel the blinding term exactly.
package kzg10

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	frpoly "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/polynomial"
)

// Polynomial is a dense list of scalar field coefficients, lowest degree
// first. The engine only reads polynomials; ownership stays with the
// caller.
type Polynomial = []fr.Element

// Commitment is a binding, constant size representation of a polynomial.
type Commitment = bls12381.G1Affine

// degree returns the index of the highest non-zero coefficient. The zero
// polynomial is treated as having degree 0.
func degree(p Polynomial) int {
	for i := len(p) - 1; i > 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return 0
}

func evaluate(p Polynomial, z fr.Element) fr.Element {
	poly := frpoly.Polynomial(p)
	return poly.Eval(&z)
}

// divideByLinear returns the quotient of p / (X - z), computed by
// synthetic division. The remainder of that division is exactly p(z) and
// is dropped, so the quotient is the same whether or not p(z) was first
// subtracted from p.
func divideByLinear(p Polynomial, z fr.Element) Polynomial {
	if len(p) <= 1 {
		return Polynomial{}
	}
	quotient := make(Polynomial, len(p)-1)
	var acc fr.Element
	acc.Set(&p[len(p)-1])
	for i := len(p) - 2; i >= 0; i-- {
		quotient[i].Set(&acc)
		acc.Mul(&acc, &z)
		acc.Add(&acc, &p[i])
	}
	return quotient
}

// skipLeadingZeros strips zero low-order coefficients, returning how many
// were skipped. The caller shifts the power table by the same amount so
// the multi-exponentiation only touches coefficients that contribute.
func skipLeadingZeros(p Polynomial) (int, Polynomial) {
	n := 0
	for n < len(p) && p[n].IsZero() {
		n++
	}
	return n, p[n:]
}

func checkDegreeIsTooLarge(deg, numPowers int) error {
	numCoefficients := deg + 1
	if numCoefficients > numPowers {
		return &TooManyCoefficientsError{NumCoefficients: numCoefficients, NumPowers: numPowers}
	}
	return nil
}

// Committing to a blinding polynomial of degree d consumes d+1 powers of
// gamma*G, hence the >= comparison.
func checkHidingBound(hidingPolyDegree, numPowers int) error {
	if hidingPolyDegree == 0 {
		return ErrHidingBoundIsZero
	}
	if hidingPolyDegree >= numPowers {
		return &HidingBoundTooLargeError{HidingPolyDegree: hidingPolyDegree, NumPowers: numPowers}
	}
	return nil
}
