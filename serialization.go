package kzg10

import (
	"encoding/binary"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// The parameters are serialized field by field in declaration order so a
// generated SRS can be cached on disk instead of re-running Setup. Group
// elements go through the canonical compressed encoding; the precomputed
// pairing lines are derived data and are recomputed on decode rather
// than written.

// WriteTo implements io.WriterTo.
func (pp *UniversalParams) WriteTo(w io.Writer) (int64, error) {
	var written int64
	enc := bls12381.NewEncoder(w)
	for _, v := range []interface{}{pp.PowersOfG, pp.PowersOfGammaG, &pp.H, &pp.BetaH} {
		if err := enc.Encode(v); err != nil {
			return written + enc.BytesWritten(), err
		}
	}

	n, err := writeBoundList(w, pp.SupportedDegreeBounds)
	written += n
	if err != nil {
		return written + enc.BytesWritten(), err
	}

	// The inverse power maps are written as slices in bound order.
	inverseG := make([]bls12381.G1Affine, 0, len(pp.InversePowersOfG))
	for _, d := range pp.SupportedDegreeBounds {
		if g, ok := pp.InversePowersOfG[d]; ok {
			inverseG = append(inverseG, g)
		}
	}
	if err := enc.Encode(inverseG); err != nil {
		return written + enc.BytesWritten(), err
	}

	inverseH := make([]bls12381.G2Affine, 0, len(pp.InverseNegPowersOfH))
	if len(pp.InverseNegPowersOfH) > 0 {
		for _, d := range pp.SupportedDegreeBounds {
			inverseH = append(inverseH, pp.InverseNegPowersOfH[d])
		}
	}
	if err := enc.Encode(inverseH); err != nil {
		return written + enc.BytesWritten(), err
	}

	return written + enc.BytesWritten(), nil
}

// ReadFrom implements io.ReaderFrom.
func (pp *UniversalParams) ReadFrom(r io.Reader) (int64, error) {
	var read int64
	dec := bls12381.NewDecoder(r)
	for _, v := range []interface{}{&pp.PowersOfG, &pp.PowersOfGammaG, &pp.H, &pp.BetaH} {
		if err := dec.Decode(v); err != nil {
			return read + dec.BytesRead(), err
		}
	}

	bounds, n, err := readBoundList(r)
	read += n
	if err != nil {
		return read + dec.BytesRead(), err
	}
	pp.SupportedDegreeBounds = bounds

	var inverseG []bls12381.G1Affine
	if err := dec.Decode(&inverseG); err != nil {
		return read + dec.BytesRead(), err
	}
	var inverseH []bls12381.G2Affine
	if err := dec.Decode(&inverseH); err != nil {
		return read + dec.BytesRead(), err
	}

	pp.InversePowersOfG = nil
	if len(inverseG) > 0 {
		pp.InversePowersOfG = make(map[int]bls12381.G1Affine, len(inverseG))
		for i, d := range bounds {
			pp.InversePowersOfG[d] = inverseG[i]
		}
	}
	pp.InverseNegPowersOfH = nil
	if len(inverseH) > 0 {
		pp.InverseNegPowersOfH = make(map[int]bls12381.G2Affine, len(inverseH))
		for i, d := range bounds {
			pp.InverseNegPowersOfH[d] = inverseH[i]
		}
	}

	pp.Lines[0] = bls12381.PrecomputeLines(pp.BetaH)
	pp.Lines[1] = bls12381.PrecomputeLines(pp.H)
	return read + dec.BytesRead(), nil
}

// WriteTo implements io.WriterTo.
func (vk *VerifierKey) WriteTo(w io.Writer) (int64, error) {
	enc := bls12381.NewEncoder(w)
	for _, v := range []interface{}{&vk.G, &vk.GammaG, &vk.H, &vk.BetaH} {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

// ReadFrom implements io.ReaderFrom.
func (vk *VerifierKey) ReadFrom(r io.Reader) (int64, error) {
	dec := bls12381.NewDecoder(r)
	for _, v := range []interface{}{&vk.G, &vk.GammaG, &vk.H, &vk.BetaH} {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	vk.Lines[0] = bls12381.PrecomputeLines(vk.BetaH)
	vk.Lines[1] = bls12381.PrecomputeLines(vk.H)
	return dec.BytesRead(), nil
}

func writeBoundList(w io.Writer, bounds []int) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(bounds))); err != nil {
		return 0, err
	}
	written := int64(4)
	for _, d := range bounds {
		if err := binary.Write(w, binary.LittleEndian, uint32(d)); err != nil {
			return written, err
		}
		written += 4
	}
	return written, nil
}

func readBoundList(r io.Reader) ([]int, int64, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, 0, err
	}
	read := int64(4)
	if n == 0 {
		return nil, read, nil
	}
	bounds := make([]int, n)
	for i := range bounds {
		var d uint32
		if err := binary.Read(r, binary.LittleEndian, &d); err != nil {
			return nil, read, err
		}
		read += 4
		bounds[i] = int(d)
	}
	return bounds, read, nil
}
