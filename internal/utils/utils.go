package utils

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ComputePowers computes x^0 to x^n-1.
// If n == 0 an empty slice is returned.
func ComputePowers(x fr.Element, n uint) []fr.Element {
	if n == 0 {
		return []fr.Element{}
	}
	powers := make([]fr.Element, n)
	powers[0].SetOne()
	for i := uint(1); i < n; i++ {
		powers[i].Mul(&powers[i-1], &x)
	}
	return powers
}
