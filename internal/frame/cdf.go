package frame

import "github.com/m4tthewde/av1ref/internal/util"

// CDFSet maps a syntax element name to its cumulative distributions, one
// array per context.
type CDFSet map[string][][]uint16

func (s CDFSet) Clone() CDFSet {
	if s == nil {
		return nil
	}
	out := make(CDFSet, len(s))
	for k, v := range s {
		out[k] = util.Clone2D(v)
	}
	return out
}

// ProbabilityModels is everything the entropy decoder adapts during a frame.
type ProbabilityModels struct {
	NonCoeff CDFSet
	Coeff    CDFSet
}

func (p ProbabilityModels) Clone() ProbabilityModels {
	return ProbabilityModels{
		NonCoeff: p.NonCoeff.Clone(),
		Coeff:    p.Coeff.Clone(),
	}
}
