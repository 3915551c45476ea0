package mfmv

import (
	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/refs"
	"github.com/m4tthewde/av1ref/internal/util"
)

// divMult[d] is 2^14 / d.
var divMult = [32]int{
	0, 16384, 8192, 5461, 4096, 3276, 2730, 2340,
	2048, 1820, 1638, 1489, 1365, 1260, 1170, 1092,
	1024, 963, 910, 862, 819, 780, 744, 712,
	682, 655, 630, 606, 585, 564, 546, 528,
}

// MvProjection scales mv by numerator/denominator in 14-bit fixed point.
func MvProjection(mv frame.MV, numerator, denominator int) frame.MV {
	clippedDenominator := util.Min(denominator, MaxFrameDistance)
	clippedNumerator := util.Clip3(-MaxFrameDistance, MaxFrameDistance, numerator)

	var projMv frame.MV
	for i := 0; i < 2; i++ {
		scaled := util.Round2Signed(mv[i]*clippedNumerator*divMult[clippedDenominator], 14)
		projMv[i] = util.Clip3(-(1<<14)+1, (1<<14)-1, scaled)
	}
	return projMv
}

// blockPosition moves the 8x8 coordinate v8 by delta (1/8 pel) in the
// direction of dstSign. The result must stay inside the frame and within
// maxOff8 cells of the 64x64 superblock v8 started in.
func blockPosition(v8, delta, dstSign, max8, maxOff8 int) (int, bool) {
	base8 := (v8 >> 3) << 3
	var offset8 int
	if delta >= 0 {
		offset8 = delta >> blockShift
	} else {
		offset8 = -((-delta) >> blockShift)
	}
	v8 += dstSign * offset8
	if v8 < 0 || v8 >= max8 || v8 < base8-maxOff8 || v8 >= base8+8+maxOff8 {
		return v8, false
	}
	return v8, true
}

// Estimate builds the motion field for cur from the motion saved with its
// reference slots.
func Estimate(cur *Frame, store *refs.Store) *Field {
	f := NewField(cur.MiRows, cur.MiCols)

	lastIdx := cur.RefFrameIdx[0]
	curGoldHint := cur.OrderHints[frame.GoldenFrame]
	lastAltHint := store.Slot(lastIdx).SavedOrderHints[frame.AltrefFrame]
	// LAST is an overlay of GOLDEN when its ALTREF is the current GOLDEN.
	if lastAltHint != curGoldHint {
		projection(f, cur, store, frame.LastFrame, -1)
	}

	refStamp := MfmvStackSize - 2
	for _, src := range []int{frame.BwdrefFrame, frame.Altref2Frame, frame.AltrefFrame} {
		if cur.Hints.RelativeDist(cur.OrderHints[src], cur.OrderHint) <= 0 {
			continue
		}
		if src == frame.AltrefFrame && refStamp < 0 {
			continue
		}
		if projection(f, cur, store, src, 1) {
			refStamp--
		}
	}

	if refStamp >= 0 {
		projection(f, cur, store, frame.Last2Frame, -1)
	}
	return f
}

// projection writes the saved motion of src's slot into f. It reports false
// when the slot has nothing to contribute.
func projection(f *Field, cur *Frame, store *refs.Store, src, dstSign int) bool {
	srcIdx := cur.RefFrameIdx[src-frame.LastFrame]
	slot := store.Slot(srcIdx)
	if slot.MiRows != cur.MiRows || slot.MiCols != cur.MiCols || slot.FrameType.IsIntra() {
		return false
	}

	h8, w8 := f.Rows8, f.Cols8
	if slot.Motion.Rows() < h8 || slot.Motion.Cols() < w8 {
		return false
	}

	for y8 := 0; y8 < h8; y8++ {
		for x8 := 0; x8 < w8; x8++ {
			srcRef := slot.Motion.RefFrames[y8][x8]
			if srcRef <= frame.IntraFrame {
				continue
			}
			mv := slot.Motion.Mvs[y8][x8]

			refToCur := cur.Hints.RelativeDist(cur.OrderHints[src], cur.OrderHint)
			refOffset := cur.Hints.RelativeDist(cur.OrderHints[src], slot.SavedOrderHints[srcRef])
			if util.Abs(refToCur) > MaxFrameDistance || util.Abs(refOffset) > MaxFrameDistance || refOffset <= 0 {
				continue
			}

			projMv := MvProjection(mv, refToCur*dstSign, refOffset)
			posY8, okY := blockPosition(y8, projMv[0], dstSign, h8, MaxOffsetHeight)
			posX8, okX := blockPosition(x8, projMv[1], dstSign, w8, MaxOffsetWidth)
			if !okY || !okX {
				continue
			}

			for dst := frame.LastFrame; dst <= frame.AltrefFrame; dst++ {
				refToDst := cur.Hints.RelativeDist(cur.OrderHint, cur.OrderHints[dst])
				f.Mvs[dst][posY8][posX8] = MvProjection(mv, refToDst, refOffset)
			}
		}
	}
	return true
}
