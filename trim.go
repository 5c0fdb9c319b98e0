package kzg10

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Powers is the committer key: views of the two SRS power tables
// truncated to a supported degree. Powers are cheap to derive and safe
// for concurrent use.
type Powers struct {
	PowersOfG      []bls12381.G1Affine
	PowersOfGammaG []bls12381.G1Affine
}

// Size returns the number of G1 powers available, one more than the
// largest committable degree.
func (p *Powers) Size() int {
	return len(p.PowersOfG)
}

// VerifierKey holds the group elements needed to verify evaluation
// proofs, together with precomputed pairing lines for the two G2
// elements that appear in every batched check.
type VerifierKey struct {
	G      bls12381.G1Affine
	GammaG bls12381.G1Affine
	H      bls12381.G2Affine
	BetaH  bls12381.G2Affine

	// Precomputed pairing lines for BetaH and H, in that order.
	Lines [2]pairingLines
}

// Trim specializes the public parameters for a given supported degree,
// returning the committer and verifier keys. The caller must request a
// degree no larger than pp.MaxDegree().
//
// A supported degree of exactly 1 is raised to 2.
func Trim(pp *UniversalParams, supportedDegree int) (Powers, VerifierKey) {
	if supportedDegree == 1 {
		supportedDegree++
	}
	powers := Powers{
		PowersOfG:      pp.PowersOfG[:supportedDegree+1],
		PowersOfGammaG: pp.PowersOfGammaG[:supportedDegree+1],
	}
	vk := VerifierKey{
		G:      pp.PowersOfG[0],
		GammaG: pp.PowersOfGammaG[0],
		H:      pp.H,
		BetaH:  pp.BetaH,
		Lines:  pp.Lines,
	}
	return powers, vk
}
