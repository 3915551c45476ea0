package frame

import (
	"github.com/pkg/errors"

	"github.com/m4tthewde/av1ref/internal/util"
)

var ErrGrainPoints = errors.New("frame: film grain scaling points are not increasing")

// FilmGrainParams is the film grain synthesis record signalled per frame and
// checkpointed per slot.
type FilmGrainParams struct {
	ApplyGrain            bool
	GrainSeed             int
	UpdateGrain           bool
	FilmGrainParamsRefIdx int

	PointYValue           []int
	PointYScaling         []int
	ChromaScalingFromLuma bool
	PointCbValue          []int
	PointCbScaling        []int
	PointCrValue          []int
	PointCrScaling        []int

	GrainScalingMinus8 int
	ArCoeffLag         int
	ArCoeffsY          []int
	ArCoeffsCb         []int
	ArCoeffsCr         []int
	ArCoeffShiftMinus6 int
	GrainScaleShift    int

	CbMult     int
	CbLumaMult int
	CbOffset   int
	CrMult     int
	CrLumaMult int
	CrOffset   int

	OverlapFlag           bool
	ClipToRestrictedRange bool
}

func (p *FilmGrainParams) Clone() *FilmGrainParams {
	if p == nil {
		return nil
	}
	out := *p
	out.PointYValue = util.CloneSlice(p.PointYValue)
	out.PointYScaling = util.CloneSlice(p.PointYScaling)
	out.PointCbValue = util.CloneSlice(p.PointCbValue)
	out.PointCbScaling = util.CloneSlice(p.PointCbScaling)
	out.PointCrValue = util.CloneSlice(p.PointCrValue)
	out.PointCrScaling = util.CloneSlice(p.PointCrScaling)
	out.ArCoeffsY = util.CloneSlice(p.ArCoeffsY)
	out.ArCoeffsCb = util.CloneSlice(p.ArCoeffsCb)
	out.ArCoeffsCr = util.CloneSlice(p.ArCoeffsCr)
	return &out
}

// Validate checks that every scaling function's x coordinates strictly
// increase.
func (p *FilmGrainParams) Validate() error {
	if p == nil || !p.ApplyGrain {
		return nil
	}
	points := []struct {
		name   string
		values []int
	}{
		{"point_y_value", p.PointYValue},
		{"point_cb_value", p.PointCbValue},
		{"point_cr_value", p.PointCrValue},
	}
	for _, pt := range points {
		for i := 1; i < len(pt.values); i++ {
			if pt.values[i] <= pt.values[i-1] {
				return errors.Wrapf(ErrGrainPoints, "%s[%d]=%d after %d", pt.name, i, pt.values[i], pt.values[i-1])
			}
		}
	}
	return nil
}
