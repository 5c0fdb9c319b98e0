package kzg10

import (
	"context"
	"io"
	"time"

	"github.com/crate-crypto/go-kzg10/internal/logger"
	"github.com/crate-crypto/go-kzg10/internal/multiexp"
)

// Randomness blinds a commitment. The zero value carries an empty
// blinding polynomial and produces a plain binding commitment.
type Randomness struct {
	BlindingPolynomial Polynomial
}

// IsHiding reports whether the randomness carries a blinding polynomial.
func (r *Randomness) IsHiding() bool {
	return len(r.BlindingPolynomial) > 0
}

// EmptyRandomness returns non-hiding randomness.
func EmptyRandomness() Randomness {
	return Randomness{}
}

// Commit binds p to a single G1 element. A hidingBound of 0 produces a
// plain commitment. A positive hidingBound additionally samples a
// blinding polynomial of exactly that degree from rng and folds its
// commitment against the gamma powers into the result; the returned
// Randomness must then be passed to Open.
//
// ctx is polled between the two multi-scalar multiplications. Once it is
// canceled the partial accumulator is discarded and ErrTerminated
// returned.
func Commit(ctx context.Context, powers *Powers, p Polynomial, hidingBound int, rng io.Reader) (Commitment, Randomness, error) {
	if err := checkDegreeIsTooLarge(degree(p), powers.Size()); err != nil {
		return Commitment{}, Randomness{}, err
	}
	log := logger.Logger()
	start := time.Now()

	numLeadingZeros, plainCoeffs := skipLeadingZeros(p)
	commitment, err := multiexp.MultiExpG1(plainCoeffs, powers.PowersOfG[numLeadingZeros:numLeadingZeros+len(plainCoeffs)])
	if err != nil {
		return Commitment{}, Randomness{}, err
	}

	if ctx.Err() != nil {
		return Commitment{}, Randomness{}, ErrTerminated
	}

	randomness := EmptyRandomness()
	if hidingBound > 0 {
		if rng == nil {
			return Commitment{}, Randomness{}, ErrMissingRng
		}
		blinding, err := randomPolynomial(hidingBound, rng)
		if err != nil {
			return Commitment{}, Randomness{}, err
		}
		if err := checkHidingBound(degree(blinding), len(powers.PowersOfGammaG)); err != nil {
			return Commitment{}, Randomness{}, err
		}
		randomness.BlindingPolynomial = blinding

		randomCommitment, err := multiexp.MultiExpG1(blinding, powers.PowersOfGammaG[:len(blinding)])
		if err != nil {
			return Commitment{}, Randomness{}, err
		}
		if ctx.Err() != nil {
			return Commitment{}, Randomness{}, ErrTerminated
		}
		commitment.AddAssign(randomCommitment)
	}

	var res Commitment
	res.FromJacobian(commitment)
	log.Debug().Int("degree", degree(p)).Int("hidingBound", hidingBound).Dur("took", time.Since(start)).Msg("commit done")
	return res, randomness, nil
}
