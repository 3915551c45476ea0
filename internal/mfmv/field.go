// Package mfmv builds the temporal motion field a frame predicts from, and
// captures the motion a decoded frame leaves behind for later frames.
package mfmv

import (
	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/orderhint"
	"github.com/m4tthewde/av1ref/internal/util"
)

const (
	MaxFrameDistance = 31
	MfmvStackSize    = 3
	MaxOffsetWidth   = 8
	MaxOffsetHeight  = 0
	RefmvsLimit      = 1<<12 - 1

	miSizeLog2 = 2
	// 1/8 pel to 8x8 block units.
	blockShift = 3 + 1 + miSizeLog2
)

// Frame is the current frame as seen by projection and capture.
type Frame struct {
	MiRows    int
	MiCols    int
	OrderHint int
	// OrderHints[ref] is the order hint of the slot used for class ref.
	OrderHints  [frame.TotalRefsPerFrame]int
	RefFrameIdx [frame.RefsPerFrame]int
	Hints       orderhint.Config
}

// Field is the projected motion of the current frame, one grid of 8x8
// cells per reference class LastFrame..AltrefFrame.
type Field struct {
	Rows8 int
	Cols8 int
	Mvs   [frame.TotalRefsPerFrame][][]frame.MV
}

// NewField returns a field for the given mode-info grid with every cell
// invalid.
func NewField(miRows, miCols int) *Field {
	f := &Field{
		Rows8: miRows >> 1,
		Cols8: miCols >> 1,
	}
	for ref := frame.LastFrame; ref <= frame.AltrefFrame; ref++ {
		f.Mvs[ref] = util.Fill2D(f.Rows8, f.Cols8, frame.InvalidMotion)
	}
	return f
}

func (f *Field) At(ref, y8, x8 int) frame.MV {
	return f.Mvs[ref][y8][x8]
}

// Reset invalidates every cell.
func (f *Field) Reset() {
	for ref := frame.LastFrame; ref <= frame.AltrefFrame; ref++ {
		for _, row := range f.Mvs[ref] {
			for x := range row {
				row[x] = frame.InvalidMotion
			}
		}
	}
}

// Empty reports whether no cell of any class holds a projection.
func (f *Field) Empty() bool {
	for ref := frame.LastFrame; ref <= frame.AltrefFrame; ref++ {
		for _, row := range f.Mvs[ref] {
			for _, mv := range row {
				if mv != frame.InvalidMotion {
					return false
				}
			}
		}
	}
	return true
}
