package frame

import "github.com/m4tthewde/av1ref/internal/util"

// ModeInfo is what tile decoding decided for one 4x4 block: a reference
// class and motion vector per prediction list. RefFrame[1] is None for
// single-reference blocks; RefFrame[0] is IntraFrame for intra blocks.
type ModeInfo struct {
	RefFrame [2]int
	Mv       [2]MV
}

// BlockMap is the per-4x4 decision grid of the current frame.
type BlockMap struct {
	MiRows int
	MiCols int
	Info   [][]ModeInfo
}

// NewBlockMap returns a grid where every block is intra.
func NewBlockMap(miRows, miCols int) *BlockMap {
	intra := ModeInfo{RefFrame: [2]int{IntraFrame, None}}
	return &BlockMap{
		MiRows: miRows,
		MiCols: miCols,
		Info:   util.Fill2D(miRows, miCols, intra),
	}
}

// SavedMotion is the motion kept with a reference slot for later
// projection, one entry per 8x8 block. RefFrames[y][x] is None when the
// block had no eligible vector.
type SavedMotion struct {
	RefFrames [][]int
	Mvs       [][]MV
}

func NewSavedMotion(rows8, cols8 int) SavedMotion {
	return SavedMotion{
		RefFrames: util.Fill2D(rows8, cols8, None),
		Mvs:       util.Make2D[MV](rows8, cols8),
	}
}

func (m SavedMotion) Rows() int {
	return len(m.RefFrames)
}

func (m SavedMotion) Cols() int {
	if len(m.RefFrames) == 0 {
		return 0
	}
	return len(m.RefFrames[0])
}

func (m SavedMotion) Clone() SavedMotion {
	return SavedMotion{
		RefFrames: util.Clone2D(m.RefFrames),
		Mvs:       util.Clone2D(m.Mvs),
	}
}

// Empty reports whether no block saved a vector.
func (m SavedMotion) Empty() bool {
	for _, row := range m.RefFrames {
		for _, r := range row {
			if r != None {
				return false
			}
		}
	}
	return true
}
