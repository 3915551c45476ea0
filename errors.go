package av1ref

import (
	"github.com/pkg/errors"

	"github.com/m4tthewde/av1ref/internal/bits"
	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/refs"
)

// Caller errors: the decoder was driven out of order or with missing data.
var (
	ErrNoFrameSetup      = errors.New("av1ref: frame wrap-up without a matching SetupFrame")
	ErrShowExistingSetup = errors.New("av1ref: SetupFrame called for show_existing_frame")
	ErrMissingTileData   = errors.New("av1ref: tile data missing")
	ErrPrimaryRefFrame   = errors.New("av1ref: primary_ref_frame out of range")
	ErrSlotIndex         = refs.ErrSlotIndex
	ErrRefreshFlags      = refs.ErrRefreshFlags
	ErrOutOfData         = bits.ErrOutOfData
)

// Stream conformance errors. Decoding of the stream cannot continue past
// any of these.
var (
	ErrRefNotValid         = errors.New("av1ref: reference slot is not valid")
	ErrFrameIDMismatch     = errors.New("av1ref: reference frame id mismatch")
	ErrNotShowable         = errors.New("av1ref: shown frame is not showable")
	ErrGrainRefIdx         = errors.New("av1ref: film_grain_params_ref_idx is not a reference of this frame")
	ErrRefOrder            = refs.ErrRefOrder
	ErrNoOrderHints        = refs.ErrNoOrderHints
	ErrIntraOnlyRefreshAll = refs.ErrIntraOnlyRefreshAll
	ErrGrainPoints         = frame.ErrGrainPoints
)
