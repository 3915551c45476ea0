package frame

const (
	MaxSegments = 8
	SegLvlMax   = 8

	WarpModelPrecBits = 16
)

// GlobalMotion holds six warp coefficients per reference class, indexed by
// class (entry IntraFrame is unused).
type GlobalMotion [TotalRefsPerFrame][6]int

// DefaultGlobalMotion is the identity warp for every class.
func DefaultGlobalMotion() GlobalMotion {
	var gm GlobalMotion
	for ref := LastFrame; ref <= AltrefFrame; ref++ {
		for i := 0; i < 6; i++ {
			if i%3 == 2 {
				gm[ref][i] = 1 << WarpModelPrecBits
			}
		}
	}
	return gm
}

// LoopFilterDeltas are the per-reference and per-mode loop filter level
// adjustments carried across frames.
type LoopFilterDeltas struct {
	RefDeltas  [TotalRefsPerFrame]int
	ModeDeltas [2]int
}

// DefaultLoopFilterDeltas are the values installed when a frame does not
// inherit from a primary reference.
func DefaultLoopFilterDeltas() LoopFilterDeltas {
	return LoopFilterDeltas{
		RefDeltas: [TotalRefsPerFrame]int{
			IntraFrame:   1,
			LastFrame:    0,
			Last2Frame:   0,
			Last3Frame:   0,
			BwdrefFrame:  0,
			GoldenFrame:  -1,
			Altref2Frame: -1,
			AltrefFrame:  -1,
		},
	}
}

// SegmentationParams is the segmentation feature table.
type SegmentationParams struct {
	FeatureEnabled [MaxSegments][SegLvlMax]bool
	FeatureData    [MaxSegments][SegLvlMax]int
}
