package kzg10

import (
	"io"
	"math/big"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crate-crypto/go-kzg10/internal/logger"
)

// Verify checks that value is the evaluation at point of the polynomial
// committed inside commitment. A cryptographically invalid proof yields
// false, never an error; the error return is reserved for failures of the
// pairing computation itself.
func Verify(vk *VerifierKey, commitment Commitment, point, value fr.Element, proof Proof) (bool, error) {
	// inner = C - [value]G - [randomV]gammaG
	var inner, tmp bls12381.G1Jac
	var s big.Int
	inner.FromAffine(&commitment)
	tmp.FromAffine(&vk.G)
	tmp.ScalarMultiplication(&tmp, value.BigInt(&s))
	inner.SubAssign(&tmp)
	if proof.RandomV != nil {
		tmp.FromAffine(&vk.GammaG)
		tmp.ScalarMultiplication(&tmp, proof.RandomV.BigInt(&s))
		inner.SubAssign(&tmp)
	}

	// [beta - z]H
	var hJac, zH, betaMinusZH bls12381.G2Jac
	hJac.FromAffine(&vk.H)
	zH.ScalarMultiplication(&hJac, point.BigInt(&s))
	betaMinusZH.FromAffine(&vk.BetaH)
	betaMinusZH.SubAssign(&zH)

	// e(inner, H) == e(W, [beta-z]H), checked as a single pairing product
	// with the left input negated.
	inner.Neg(&inner)
	var innerAff bls12381.G1Affine
	innerAff.FromJacobian(&inner)
	var betaMinusZHAff bls12381.G2Affine
	betaMinusZHAff.FromJacobian(&betaMinusZH)

	return bls12381.PairingCheck(
		[]bls12381.G1Affine{innerAff, proof.W},
		[]bls12381.G2Affine{vk.H, betaMinusZHAff},
	)
}

// BatchVerify checks many evaluation proofs with a single randomized
// pairing product. Every entry after the first is weighted by a fresh
// 128-bit randomizer drawn from rng, so a batch containing an invalid
// proof passes only with probability about 2^-128, independent of the
// batch size.
func BatchVerify(vk *VerifierKey, commitments []Commitment, points, values []fr.Element, proofs []Proof, rng io.Reader) (bool, error) {
	n := len(commitments)
	if len(points) != n || len(values) != n || len(proofs) != n {
		return false, ErrLengthMismatch
	}
	if n == 0 {
		return true, nil
	}
	log := logger.Logger()
	start := time.Now()

	var totalC, totalW bls12381.G1Jac
	var gMultiplier, gammaGMultiplier fr.Element
	var s big.Int

	var randomizer fr.Element
	randomizer.SetOne()
	for i := 0; i < n; i++ {
		if i > 0 {
			var err error
			randomizer, err = randomScalar128(rng)
			if err != nil {
				return false, err
			}
		}

		// c_i = C_i + [z_i]W_i
		var c bls12381.G1Jac
		c.FromAffine(&proofs[i].W)
		c.ScalarMultiplication(&c, points[i].BigInt(&s))
		c.AddMixed(&commitments[i])

		// Instead of multiplying G and gammaG every turn, accumulate
		// their coefficients and multiply once after the loop.
		var t fr.Element
		t.Mul(&randomizer, &values[i])
		gMultiplier.Add(&gMultiplier, &t)
		if proofs[i].RandomV != nil {
			t.Mul(&randomizer, proofs[i].RandomV)
			gammaGMultiplier.Add(&gammaGMultiplier, &t)
		}

		randomizer.BigInt(&s)
		c.ScalarMultiplication(&c, &s)
		totalC.AddAssign(&c)
		var w bls12381.G1Jac
		w.FromAffine(&proofs[i].W)
		w.ScalarMultiplication(&w, &s)
		totalW.AddAssign(&w)
	}

	var t bls12381.G1Jac
	t.FromAffine(&vk.G)
	t.ScalarMultiplication(&t, gMultiplier.BigInt(&s))
	totalC.SubAssign(&t)
	t.FromAffine(&vk.GammaG)
	t.ScalarMultiplication(&t, gammaGMultiplier.BigInt(&s))
	totalC.SubAssign(&t)

	// e(totalW, betaH) == e(totalC, H), computed as one product over the
	// precomputed lines: e(-totalW, betaH) * e(totalC, H) == 1.
	totalW.Neg(&totalW)
	affine := bls12381.BatchJacobianToAffineG1([]bls12381.G1Jac{totalW, totalC})
	ok, err := bls12381.PairingCheckFixedQ(affine, vk.Lines[:])
	if err != nil {
		return false, err
	}
	log.Debug().Int("batchSize", n).Dur("took", time.Since(start)).Msg("batch verification done")
	return ok, nil
}
