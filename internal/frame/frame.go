// Package frame defines the per-frame state that moves between the current
// frame and the reference pool: pixels, motion, probability models and the
// header-level parameter sets that are checkpointed per slot.
package frame

// Pool and reference-list sizes.
const (
	NumRefFrames      = 8
	RefsPerFrame      = 7
	TotalRefsPerFrame = 8
	PrimaryRefNone    = 7

	// AllFrames is the refresh mask that selects every slot.
	AllFrames = 1<<NumRefFrames - 1
)

// Reference frame classes. A block's reference is one of these; None marks
// an unused second prediction list.
const (
	None         = -1
	IntraFrame   = 0
	LastFrame    = 1
	Last2Frame   = 2
	Last3Frame   = 3
	GoldenFrame  = 4
	BwdrefFrame  = 5
	Altref2Frame = 6
	AltrefFrame  = 7
)

type Type int

const (
	KeyFrame Type = iota
	InterFrame
	IntraOnlyFrame
	SwitchFrame
)

func (t Type) IsIntra() bool {
	return t == KeyFrame || t == IntraOnlyFrame
}

func (t Type) String() string {
	switch t {
	case KeyFrame:
		return "KEY_FRAME"
	case InterFrame:
		return "INTER_FRAME"
	case IntraOnlyFrame:
		return "INTRA_ONLY_FRAME"
	case SwitchFrame:
		return "SWITCH_FRAME"
	}
	return "UNKNOWN_FRAME"
}

// MV is a motion vector in 1/8 pel units, row component first.
type MV [2]int

// InvalidMV marks a motion field cell that received no projection.
const InvalidMV = -1 << 15

var InvalidMotion = MV{InvalidMV, InvalidMV}

func (m MV) Valid() bool {
	return m[0] != InvalidMV
}

// MiCols returns the width of the 4x4 mode-info grid for a frame width.
// The grid is always an even number of units so that it tiles into 8x8.
func MiCols(frameWidth int) int {
	return 2 * ((frameWidth + 7) >> 3)
}

func MiRows(frameHeight int) int {
	return 2 * ((frameHeight + 7) >> 3)
}
