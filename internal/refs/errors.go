package refs

import "github.com/pkg/errors"

// Caller errors.
var (
	ErrSlotIndex    = errors.New("refs: slot index out of range")
	ErrRefreshFlags = errors.New("refs: refresh_frame_flags out of range")
	ErrNilSnapshot  = errors.New("refs: commit of nil snapshot")
)

// Stream conformance errors.
var (
	ErrInvalidSlot         = errors.New("refs: reference slot is not valid")
	ErrIntraOnlyRefreshAll = errors.New("refs: intra-only frame refreshes every slot")
	ErrRefOrder            = errors.New("refs: LAST/GOLDEN reference is not earlier than the current frame")
	ErrNoOrderHints        = errors.New("refs: short reference signalling requires order hints")
)
