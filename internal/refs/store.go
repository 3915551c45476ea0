// Package refs owns the pool of reference slots and the rules that decide
// which slots a frame predicts from.
package refs

import (
	"github.com/pkg/errors"

	"github.com/m4tthewde/av1ref/internal/frame"
)

// Slot is one entry of the reference pool. An invalid slot is never read
// for prediction; its Snapshot may hold a stale frame.
type Slot struct {
	Valid bool
	Snapshot
}

// Store is the fixed pool of reference slots. Slots are addressed by index
// only and Commit is the single writer of frame state.
type Store struct {
	slots [frame.NumRefFrames]Slot
}

// NewStore returns a pool in which every slot is invalid.
func NewStore() *Store {
	return &Store{}
}

// Slot returns slot i. The slot is owned by the store and must not be
// modified by the caller.
func (s *Store) Slot(i int) *Slot {
	return &s.slots[i]
}

func (s *Store) Valid(i int) bool {
	return i >= 0 && i < frame.NumRefFrames && s.slots[i].Valid
}

// OrderHints returns every slot's order hint, valid or not.
func (s *Store) OrderHints() [frame.NumRefFrames]int {
	var hints [frame.NumRefFrames]int
	for i := range s.slots {
		hints[i] = s.slots[i].OrderHint
	}
	return hints
}

// Commit copies snap into every slot whose bit is set in refreshFlags. Each
// refreshed slot receives its own deep copy. Nothing is written unless the
// whole commit is acceptable.
func (s *Store) Commit(refreshFlags int, snap *Snapshot) error {
	if snap == nil {
		return ErrNilSnapshot
	}
	if refreshFlags < 0 || refreshFlags > frame.AllFrames {
		return errors.Wrapf(ErrRefreshFlags, "refresh_frame_flags=%#x", refreshFlags)
	}
	if snap.FrameType == frame.IntraOnlyFrame && refreshFlags == frame.AllFrames {
		return errors.Wrapf(ErrIntraOnlyRefreshAll, "frame id %d", snap.FrameID)
	}

	for i := 0; i < frame.NumRefFrames; i++ {
		if (refreshFlags>>i)&1 == 1 {
			s.slots[i] = Slot{
				Valid:    true,
				Snapshot: *snap.Clone(),
			}
		}
	}
	return nil
}

// Restore returns a deep copy of slot i's state.
func (s *Store) Restore(i int) (*Snapshot, error) {
	if i < 0 || i >= frame.NumRefFrames {
		return nil, errors.Wrapf(ErrSlotIndex, "slot %d", i)
	}
	if !s.slots[i].Valid {
		return nil, errors.Wrapf(ErrInvalidSlot, "slot %d", i)
	}
	return s.slots[i].Snapshot.Clone(), nil
}

// ResetForKeyFrame invalidates the whole pool and zeroes every order hint.
// A shown key frame never predicts from earlier frames.
func (s *Store) ResetForKeyFrame() {
	for i := range s.slots {
		s.slots[i].Valid = false
		s.slots[i].OrderHint = 0
	}
}

func (s *Store) Invalidate(i int) {
	s.slots[i].Valid = false
}

// MarkFrameIDs invalidates slots whose frame id cannot belong to a frame
// decoded within the last 2^diffLen ids before currentID, with ids wrapping
// at 2^idLen. It returns the indices it invalidated.
func (s *Store) MarkFrameIDs(currentID, idLen, diffLen int) []int {
	var marked []int
	window := 1 << diffLen
	for i := range s.slots {
		if !s.slots[i].Valid {
			continue
		}
		id := s.slots[i].FrameID
		var stale bool
		if currentID > window {
			stale = id > currentID || id < currentID-window
		} else {
			stale = id > currentID && id < (1<<idLen)+currentID-window
		}
		if stale {
			s.slots[i].Valid = false
			marked = append(marked, i)
		}
	}
	return marked
}

// SyncOrderHints applies explicitly signalled per-slot order hints. A slot
// whose stored hint disagrees is invalidated and takes the signalled hint.
// It returns the indices it invalidated.
func (s *Store) SyncOrderHints(hints []int) []int {
	var marked []int
	for i := 0; i < len(hints) && i < frame.NumRefFrames; i++ {
		if hints[i] != s.slots[i].OrderHint {
			s.slots[i].Valid = false
			s.slots[i].OrderHint = hints[i]
			marked = append(marked, i)
		}
	}
	return marked
}
