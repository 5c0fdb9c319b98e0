package kzg10

import (
	"io"
	"math/big"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/crate-crypto/go-kzg10/internal/logger"
	"github.com/crate-crypto/go-kzg10/internal/utils"
)

// pairingLines are precomputed Miller loop lines for a G2 element that is
// reused across many pairings.
type pairingLines = [2][len(bls12381.LoopCounter) - 1]bls12381.LineEvaluationAff

// UniversalParams is the structured reference string of the scheme. It is
// produced once by Setup, is immutable afterwards, and may be read
// concurrently without synchronization.
type UniversalParams struct {
	// PowersOfG holds beta^i * G for i in 0..maxDegree.
	PowersOfG []bls12381.G1Affine
	// PowersOfGammaG holds gamma * beta^i * G for i in 0..maxDegree+1.
	// The extra power lets a hiding commitment answer up to maxDegree
	// queries.
	PowersOfGammaG []bls12381.G1Affine
	H              bls12381.G2Affine
	BetaH          bls12381.G2Affine

	// SupportedDegreeBounds is the bound list resolved at setup time,
	// sorted ascending.
	SupportedDegreeBounds []int
	// InversePowersOfG maps a supported bound d to beta^(maxDegree-d) * G.
	InversePowersOfG map[int]bls12381.G1Affine
	// InverseNegPowersOfH maps a supported bound d to beta^-(maxDegree-d) * H.
	InverseNegPowersOfH map[int]bls12381.G2Affine

	// Precomputed pairing lines for BetaH and H, in that order.
	Lines [2]pairingLines
}

// MaxDegree returns the largest polynomial degree the parameters support.
func (pp *UniversalParams) MaxDegree() int {
	return len(pp.PowersOfG) - 1
}

// Setup simulates a trusted setup: it samples the secret scalar beta
// together with independent generators and expands them into the power
// tables of the scheme. beta never leaves this function; only its derived
// public outputs do. A production deployment replaces this single party
// computation with a multi-party ceremony.
//
// produceG2Powers additionally populates InverseNegPowersOfH for the
// resolved degree bounds, which degree-bound protocols need on the G2
// side.
func Setup(maxDegree int, bounds DegreeBoundsConfig, produceG2Powers bool, rng io.Reader) (*UniversalParams, error) {
	if maxDegree < 1 {
		return nil, ErrDegreeIsZero
	}
	log := logger.Logger()
	start := time.Now()

	// The toxic waste.
	beta, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	gScalar, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	gammaGScalar, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}
	hScalar, err := randomScalar(rng)
	if err != nil {
		return nil, err
	}

	_, _, gen1Aff, gen2Aff := bls12381.Generators()
	var bi big.Int
	var g, gammaG bls12381.G1Affine
	g.ScalarMultiplication(&gen1Aff, gScalar.BigInt(&bi))
	gammaG.ScalarMultiplication(&gen1Aff, gammaGScalar.BigInt(&bi))
	var h bls12381.G2Affine
	h.ScalarMultiplication(&gen2Aff, hScalar.BigInt(&bi))

	// beta^0 .. beta^(maxDegree+1); the final power only feeds the gamma
	// table.
	powersOfBeta := utils.ComputePowers(beta, uint(maxDegree+2))

	// Both tables reuse a fixed base, so they go through the windowed
	// batch scalar multiplication and come back already normalized to
	// affine. The two tables are independent.
	var pp UniversalParams
	var errG errgroup.Group
	errG.Go(func() error {
		pp.PowersOfG = bls12381.BatchScalarMultiplicationG1(&g, powersOfBeta[:maxDegree+1])
		return nil
	})
	errG.Go(func() error {
		pp.PowersOfGammaG = bls12381.BatchScalarMultiplicationG1(&gammaG, powersOfBeta)
		return nil
	})
	if err := errG.Wait(); err != nil {
		return nil, err
	}

	pp.SupportedDegreeBounds = bounds.Resolve(maxDegree)
	if len(pp.SupportedDegreeBounds) > 0 {
		pp.InversePowersOfG = make(map[int]bls12381.G1Affine, len(pp.SupportedDegreeBounds))
		for _, d := range pp.SupportedDegreeBounds {
			pp.InversePowersOfG[d] = pp.PowersOfG[maxDegree-d]
		}

		if produceG2Powers {
			negPowersOfBeta := make([]fr.Element, len(pp.SupportedDegreeBounds))
			for i, d := range pp.SupportedDegreeBounds {
				negPowersOfBeta[i].Exp(beta, big.NewInt(int64(maxDegree-d)))
				negPowersOfBeta[i].Inverse(&negPowersOfBeta[i])
			}
			negPowersOfH := bls12381.BatchScalarMultiplicationG2(&h, negPowersOfBeta)
			pp.InverseNegPowersOfH = make(map[int]bls12381.G2Affine, len(negPowersOfH))
			for i, d := range pp.SupportedDegreeBounds {
				pp.InverseNegPowersOfH[d] = negPowersOfH[i]
			}
		}
	}

	pp.H = h
	pp.BetaH.ScalarMultiplication(&h, beta.BigInt(&bi))
	pp.Lines[0] = bls12381.PrecomputeLines(pp.BetaH)
	pp.Lines[1] = bls12381.PrecomputeLines(pp.H)

	log.Debug().Int("maxDegree", maxDegree).Dur("took", time.Since(start)).Msg("setup done")
	return &pp, nil
}
