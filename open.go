package kzg10

import (
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crate-crypto/go-kzg10/internal/logger"
	"github.com/crate-crypto/go-kzg10/internal/multiexp"
)

// Proof attests that a committed polynomial evaluates to a claimed value
// at a chosen point.
type Proof struct {
	// W commits to the witness polynomial (p(x) - p(z)) / (x - z).
	W bls12381.G1Affine
	// RandomV is the blinding polynomial evaluated at the point, nil when
	// the commitment was not hiding. The verifier uses it to cancel the
	// blinding term exactly.
	RandomV *fr.Element
}

// computeWitnessPolynomial divides p by (x - z). The remainder of that
// division is p(z) itself, so the quotient witnesses the evaluation claim
// without ever forming p(x) - p(z). The second return value is the
// analogous quotient for the blinding polynomial, nil when the randomness
// is empty.
func computeWitnessPolynomial(p Polynomial, point fr.Element, rand Randomness) (Polynomial, Polynomial) {
	witness := divideByLinear(p, point)
	var hidingWitness Polynomial
	if rand.IsHiding() {
		hidingWitness = divideByLinear(rand.BlindingPolynomial, point)
	}
	return witness, hidingWitness
}

// Open produces an evaluation proof for p at point. rand must be the
// randomness returned by the Commit call whose commitment is being
// opened.
func Open(powers *Powers, p Polynomial, point fr.Element, rand Randomness) (Proof, error) {
	if err := checkDegreeIsTooLarge(degree(p), powers.Size()); err != nil {
		return Proof{}, err
	}
	log := logger.Logger()
	start := time.Now()

	witness, hidingWitness := computeWitnessPolynomial(p, point, rand)
	proof, err := openWithWitnessPolynomial(powers, point, rand, witness, hidingWitness)
	if err != nil {
		return Proof{}, err
	}
	log.Debug().Int("degree", degree(p)).Dur("took", time.Since(start)).Msg("open done")
	return proof, nil
}

func openWithWitnessPolynomial(powers *Powers, point fr.Element, rand Randomness, witness, hidingWitness Polynomial) (Proof, error) {
	if err := checkDegreeIsTooLarge(degree(witness), powers.Size()); err != nil {
		return Proof{}, err
	}
	numLeadingZeros, witnessCoeffs := skipLeadingZeros(witness)
	w, err := multiexp.MultiExpG1(witnessCoeffs, powers.PowersOfG[numLeadingZeros:numLeadingZeros+len(witnessCoeffs)])
	if err != nil {
		return Proof{}, err
	}

	var proof Proof
	if hidingWitness != nil {
		blindingEvaluation := evaluate(rand.BlindingPolynomial, point)
		hidingW, err := multiexp.MultiExpG1(hidingWitness, powers.PowersOfGammaG[:len(hidingWitness)])
		if err != nil {
			return Proof{}, err
		}
		w.AddAssign(hidingW)
		proof.RandomV = &blindingEvaluation
	}
	proof.W.FromJacobian(w)
	return proof, nil
}
