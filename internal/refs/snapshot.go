package refs

import (
	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/util"
)

// Snapshot is the complete state of one decoded frame as it is kept in a
// reference slot. The same record describes the current frame's state on
// its way into the pool (Commit) and back out of it (Restore).
type Snapshot struct {
	FrameID   int
	FrameType frame.Type
	Showable  bool

	OrderHint int
	// SavedOrderHints[ref] is the order hint the frame used for each of its
	// own reference classes.
	SavedOrderHints [frame.TotalRefsPerFrame]int

	UpscaledWidth int
	FrameWidth    int
	FrameHeight   int
	RenderWidth   int
	RenderHeight  int
	MiCols        int
	MiRows        int
	BitDepth      int
	SubsamplingX  int
	SubsamplingY  int

	// Frame is the final, post loop restoration picture.
	Frame        *frame.Buffer
	Motion       frame.SavedMotion
	SegmentIDs   [][]int
	GlobalMotion frame.GlobalMotion
	CDFs         frame.ProbabilityModels
	LoopFilter   frame.LoopFilterDeltas
	Segmentation frame.SegmentationParams
	FilmGrain    *frame.FilmGrainParams
}

// Clone returns a deep copy: no slice, map or buffer is shared with s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Frame = s.Frame.Clone()
	out.Motion = s.Motion.Clone()
	out.SegmentIDs = util.Clone2D(s.SegmentIDs)
	out.CDFs = s.CDFs.Clone()
	out.FilmGrain = s.FilmGrain.Clone()
	return &out
}
