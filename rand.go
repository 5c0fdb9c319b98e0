package kzg10

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Randomness is always drawn from a caller supplied source, never from an
// ambient global generator. This keeps Commit, Open and BatchVerify
// deterministic for a fixed source and makes every test seedable.

// randomScalar samples a uniform field element from rng. Sampling extra
// bytes beyond the field size keeps the modular bias negligible.
func randomScalar(rng io.Reader) (fr.Element, error) {
	var buf [fr.Bytes + 16]byte
	var e fr.Element
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return e, err
	}
	e.SetBytes(buf[:])
	return e, nil
}

// randomScalar128 samples a 128-bit scalar. Short randomizers suffice for
// the 2^-128 soundness target of the batched check and are cheaper to
// sample and multiply by than full width field elements.
func randomScalar128(rng io.Reader) (fr.Element, error) {
	var buf [16]byte
	var e fr.Element
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return e, err
	}
	e.SetBytes(buf[:])
	return e, nil
}

// randomPolynomial samples a polynomial of exactly the given degree: the
// leading coefficient is resampled until it is non-zero.
func randomPolynomial(deg int, rng io.Reader) (Polynomial, error) {
	p := make(Polynomial, deg+1)
	for i := range p {
		c, err := randomScalar(rng)
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	for p[deg].IsZero() {
		c, err := randomScalar(rng)
		if err != nil {
			return nil, err
		}
		p[deg] = c
	}
	return p, nil
}
