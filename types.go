package av1ref

import (
	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/mfmv"
	"github.com/m4tthewde/av1ref/internal/refs"
)

type (
	Buffer             = frame.Buffer
	Plane              = frame.Plane
	MV                 = frame.MV
	FrameType          = frame.Type
	ModeInfo           = frame.ModeInfo
	BlockMap           = frame.BlockMap
	SavedMotion        = frame.SavedMotion
	GlobalMotion       = frame.GlobalMotion
	LoopFilterDeltas   = frame.LoopFilterDeltas
	SegmentationParams = frame.SegmentationParams
	FilmGrainParams    = frame.FilmGrainParams
	CDFSet             = frame.CDFSet
	ProbabilityModels  = frame.ProbabilityModels

	// Snapshot is a frame's complete committed state.
	Snapshot = refs.Snapshot
	// MotionField is the projected temporal motion of the current frame.
	MotionField = mfmv.Field
)

const (
	NumRefFrames      = frame.NumRefFrames
	RefsPerFrame      = frame.RefsPerFrame
	TotalRefsPerFrame = frame.TotalRefsPerFrame
	PrimaryRefNone    = frame.PrimaryRefNone
	AllFrames         = frame.AllFrames

	KeyFrame       = frame.KeyFrame
	InterFrame     = frame.InterFrame
	IntraOnlyFrame = frame.IntraOnlyFrame
	SwitchFrame    = frame.SwitchFrame

	None         = frame.None
	IntraFrame   = frame.IntraFrame
	LastFrame    = frame.LastFrame
	Last2Frame   = frame.Last2Frame
	Last3Frame   = frame.Last3Frame
	GoldenFrame  = frame.GoldenFrame
	BwdrefFrame  = frame.BwdrefFrame
	Altref2Frame = frame.Altref2Frame
	AltrefFrame  = frame.AltrefFrame

	InvalidMV = frame.InvalidMV
)

func NewBuffer(width, height, bitDepth, subX, subY, numPlanes int) *Buffer {
	return frame.NewBuffer(width, height, bitDepth, subX, subY, numPlanes)
}

func NewBlockMap(miRows, miCols int) *BlockMap {
	return frame.NewBlockMap(miRows, miCols)
}

func DefaultGlobalMotion() GlobalMotion {
	return frame.DefaultGlobalMotion()
}

func DefaultLoopFilterDeltas() LoopFilterDeltas {
	return frame.DefaultLoopFilterDeltas()
}
