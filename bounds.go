package kzg10

import "sort"

// DegreeBoundsMode selects which degree bounds, beyond the maximum degree
// itself, the public parameters must support.
type DegreeBoundsMode uint8

const (
	// DegreeBoundsNone supports no explicit degree bounds.
	DegreeBoundsNone DegreeBoundsMode = iota
	// DegreeBoundsAll supports every bound below the maximum degree.
	DegreeBoundsAll
	// DegreeBoundsRadix2 supports bounds of the form 2^k - 2. These are
	// the only bounds the outer protocol requests when it works over
	// radix-2 evaluation domains.
	DegreeBoundsRadix2
	// DegreeBoundsList supports an explicit list of bounds.
	DegreeBoundsList
)

// DegreeBoundsConfig is a closed choice among the bound strategies. It is
// resolved once, at setup time, into a concrete ordered list of supported
// bounds.
type DegreeBoundsConfig struct {
	Mode DegreeBoundsMode
	List []int
}

// Resolve returns the sorted list of degree bounds supported for
// maxDegree.
func (c DegreeBoundsConfig) Resolve(maxDegree int) []int {
	switch c.Mode {
	case DegreeBoundsAll:
		bounds := make([]int, maxDegree)
		for i := range bounds {
			bounds[i] = i
		}
		return bounds
	case DegreeBoundsRadix2:
		var bounds []int
		for cur := 2; cur-2 <= maxDegree; cur *= 2 {
			bounds = append(bounds, cur-2)
		}
		return bounds
	case DegreeBoundsList:
		bounds := append([]int(nil), c.List...)
		sort.Ints(bounds)
		return bounds
	default:
		return nil
	}
}

// LabeledPolynomial carries the label and optional degree bound the outer
// protocol attaches to a polynomial. A negative DegreeBound means the
// polynomial carries no bound.
type LabeledPolynomial struct {
	Label       string
	Poly        Polynomial
	DegreeBound int
}

func (p LabeledPolynomial) HasDegreeBound() bool { return p.DegreeBound >= 0 }

// CheckDegreesAndBounds validates a labeled polynomial against the bound
// list resolved at setup time: the bound must be in the list, and must
// sit between the polynomial's degree and the maximum degree.
func CheckDegreesAndBounds(supportedDegree, maxDegree int, enforcedBounds []int, p LabeledPolynomial) error {
	if !p.HasDegreeBound() {
		return nil
	}
	i := sort.SearchInts(enforcedBounds, p.DegreeBound)
	if i == len(enforcedBounds) || enforcedBounds[i] != p.DegreeBound {
		return &UnsupportedDegreeBoundError{Bound: p.DegreeBound}
	}
	if p.DegreeBound < degree(p.Poly) || p.DegreeBound > maxDegree {
		return &IncorrectDegreeBoundError{
			PolyDegree:      degree(p.Poly),
			DegreeBound:     p.DegreeBound,
			SupportedDegree: supportedDegree,
			Label:           p.Label,
		}
	}
	return nil
}
