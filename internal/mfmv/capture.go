package mfmv

import (
	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/util"
)

// Capture selects, per 8x8 block, the motion this frame leaves for later
// projection: the last prediction list whose reference precedes the current
// frame and whose vector is within RefmvsLimit. Each 8x8 cell is
// represented by its bottom-right 4x4 block.
func Capture(blocks *frame.BlockMap, cur *Frame) frame.SavedMotion {
	rows8, cols8 := cur.MiRows>>1, cur.MiCols>>1
	saved := frame.NewSavedMotion(rows8, cols8)

	for y8 := 0; y8 < rows8; y8++ {
		for x8 := 0; x8 < cols8; x8++ {
			mi := blocks.Info[2*y8+1][2*x8+1]
			for list := 0; list < 2; list++ {
				r := mi.RefFrame[list]
				if r <= frame.IntraFrame {
					continue
				}
				if cur.Hints.RelativeDist(cur.OrderHints[r], cur.OrderHint) >= 0 {
					continue
				}
				mv := mi.Mv[list]
				if util.Abs(mv[0]) > RefmvsLimit || util.Abs(mv[1]) > RefmvsLimit {
					continue
				}
				saved.RefFrames[y8][x8] = r
				saved.Mvs[y8][x8] = mv
			}
		}
	}
	return saved
}
