package utils

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

func TestComputePowersBaseOne(t *testing.T) {
	one := fr.One()

	powers := ComputePowers(one, 10)
	for _, pow := range powers {
		if !pow.Equal(&one) {
			t.Error("powers should all be 1")
		}
	}
}

func TestComputePowersZero(t *testing.T) {
	x := fr.NewElement(1234)

	powers := ComputePowers(x, 0)
	// When given a number of 0
	// this will return an empty slice
	if len(powers) != 0 {
		t.Error("number of powers to compute was zero, but got more than 0 powers computed")
	}
}

func TestComputePowersSmoke(t *testing.T) {
	var base fr.Element
	base.SetInt64(123)

	powers := ComputePowers(base, 16)

	for index, pow := range powers {
		var expected fr.Element
		expected.Exp(base, big.NewInt(int64(index)))

		if !expected.Equal(&pow) {
			t.Error("incorrect exponentiation result")
		}
	}
}
