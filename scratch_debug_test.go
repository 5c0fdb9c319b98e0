package kzg10

import (
	"reflect"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"
)

func TestScratchHidingBatchDebug(t *testing.T) {
	rng := testRng()
	pp, err := Setup(20, DegreeBoundsConfig{}, false, rng)
	require.NoError(t, err)
	_, vk := Trim(pp, 20)

	freshBeta := bls12381.PrecomputeLines(vk.BetaH)
	freshH := bls12381.PrecomputeLines(vk.H)
	t.Logf("Lines[0]==lines(BetaH): %v", reflect.DeepEqual(vk.Lines[0], pairingLines(freshBeta)))
	t.Logf("Lines[1]==lines(H):     %v", reflect.DeepEqual(vk.Lines[1], pairingLines(freshH)))
	t.Logf("Lines[0]==lines(H):     %v", reflect.DeepEqual(vk.Lines[0], pairingLines(freshH)))
	t.Logf("Lines[1]==lines(BetaH): %v", reflect.DeepEqual(vk.Lines[1], pairingLines(freshBeta)))

	// Sanity: a trivially valid pair e(-P, Q)*e(P, Q) == 1 via both checks,
	// and repeated fixedQ calls on the same slice.
	var g bls12381.G1Affine
	g = vk.G
	var gNeg bls12381.G1Affine
	gNeg.Neg(&g)
	P := []bls12381.G1Affine{gNeg, g}
	ok, err := bls12381.PairingCheck(P, []bls12381.G2Affine{vk.H, vk.H})
	require.NoError(t, err)
	t.Logf("plain e(-G,H)e(G,H)==1: %v", ok)
	hl := [2]pairingLines{pairingLines(freshH), pairingLines(freshH)}
	ok, err = bls12381.PairingCheckFixedQ(P, hl[:])
	require.NoError(t, err)
	t.Logf("fixedQ e(-G,H)e(G,H)==1 (1st call): %v", ok)
	ok, err = bls12381.PairingCheckFixedQ(P, hl[:])
	require.NoError(t, err)
	t.Logf("fixedQ e(-G,H)e(G,H)==1 (2nd call): %v", ok)
	ok, err = bls12381.PairingCheck(P, []bls12381.G2Affine{vk.H, vk.H})
	require.NoError(t, err)
	t.Logf("plain again after fixedQ: %v", ok)
}
