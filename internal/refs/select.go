package refs

import (
	"github.com/pkg/errors"

	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/orderhint"
)

// refFrameList is the order in which classes left open after the backward
// searches are filled from forward slots.
var refFrameList = [frame.RefsPerFrame - 2]int{
	frame.Last2Frame,
	frame.Last3Frame,
	frame.BwdrefFrame,
	frame.Altref2Frame,
	frame.AltrefFrame,
}

type refSelector struct {
	shifted      [frame.NumRefFrames]int
	used         [frame.NumRefFrames]bool
	curFrameHint int
}

// latestBackward finds the unused slot furthest after the current frame.
// Among equal hints the highest index wins.
func (s *refSelector) latestBackward() int {
	ref, latest := -1, 0
	for i, hint := range s.shifted {
		if !s.used[i] && hint >= s.curFrameHint && (ref < 0 || hint >= latest) {
			ref, latest = i, hint
		}
	}
	return ref
}

// earliestBackward finds the unused slot closest after the current frame.
func (s *refSelector) earliestBackward() int {
	ref, earliest := -1, 0
	for i, hint := range s.shifted {
		if !s.used[i] && hint >= s.curFrameHint && (ref < 0 || hint < earliest) {
			ref, earliest = i, hint
		}
	}
	return ref
}

// latestForward finds the unused slot closest before the current frame.
func (s *refSelector) latestForward() int {
	ref, latest := -1, 0
	for i, hint := range s.shifted {
		if !s.used[i] && hint < s.curFrameHint && (ref < 0 || hint >= latest) {
			ref, latest = i, hint
		}
	}
	return ref
}

// SetFrameRefs derives all seven reference assignments, indexed by class
// minus LastFrame, from the slots' order hints when only LAST and GOLDEN
// were signalled explicitly.
func SetFrameRefs(hints [frame.NumRefFrames]int, current int, oh orderhint.Config, lastIdx, goldIdx int) ([frame.RefsPerFrame]int, error) {
	var refFrameIdx [frame.RefsPerFrame]int
	if !oh.Enabled {
		return refFrameIdx, ErrNoOrderHints
	}
	if lastIdx < 0 || lastIdx >= frame.NumRefFrames || goldIdx < 0 || goldIdx >= frame.NumRefFrames {
		return refFrameIdx, errors.Wrapf(ErrSlotIndex, "last_frame_idx=%d gold_frame_idx=%d", lastIdx, goldIdx)
	}

	for i := range refFrameIdx {
		refFrameIdx[i] = -1
	}
	refFrameIdx[frame.LastFrame-frame.LastFrame] = lastIdx
	refFrameIdx[frame.GoldenFrame-frame.LastFrame] = goldIdx

	s := refSelector{curFrameHint: oh.Half()}
	s.used[lastIdx] = true
	s.used[goldIdx] = true
	for i, hint := range hints {
		s.shifted[i] = s.curFrameHint + oh.RelativeDist(hint, current)
	}

	if lastHint := s.shifted[lastIdx]; lastHint >= s.curFrameHint {
		return refFrameIdx, errors.Wrapf(ErrRefOrder, "LAST slot %d has hint %d, current %d", lastIdx, hints[lastIdx], current)
	}
	if goldHint := s.shifted[goldIdx]; goldHint >= s.curFrameHint {
		return refFrameIdx, errors.Wrapf(ErrRefOrder, "GOLDEN slot %d has hint %d, current %d", goldIdx, hints[goldIdx], current)
	}

	assign := func(refFrame, slot int) {
		if slot >= 0 {
			refFrameIdx[refFrame-frame.LastFrame] = slot
			s.used[slot] = true
		}
	}

	assign(frame.AltrefFrame, s.latestBackward())
	assign(frame.BwdrefFrame, s.earliestBackward())
	assign(frame.Altref2Frame, s.earliestBackward())

	for _, refFrame := range refFrameList {
		if refFrameIdx[refFrame-frame.LastFrame] < 0 {
			assign(refFrame, s.latestForward())
		}
	}

	// Anything still open gets the slot with the earliest output order.
	ref, earliest := -1, 0
	for i, hint := range s.shifted {
		if ref < 0 || hint < earliest {
			ref, earliest = i, hint
		}
	}
	for i := range refFrameIdx {
		if refFrameIdx[i] < 0 {
			refFrameIdx[i] = ref
		}
	}

	return refFrameIdx, nil
}
