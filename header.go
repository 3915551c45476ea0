package av1ref

import (
	"github.com/pkg/errors"

	"github.com/m4tthewde/av1ref/internal/bits"
	"github.com/m4tthewde/av1ref/internal/frame"
)

// BitReader reads n-bit unsigned big-endian fields, f(n).
type BitReader interface {
	F(n int) (int, error)
}

func NewBitReader(data []byte) BitReader {
	return bits.NewReader(data)
}

// FrameHeader holds the uncompressed header fields the reference lifecycle
// depends on. It is produced by the header parser; SetupFrame resolves the
// short-signalled references and the loaded film grain into it.
type FrameHeader struct {
	ShowExistingFrame bool
	FrameToShowMapIdx int
	DisplayFrameID    int

	FrameType          FrameType
	ShowFrame          bool
	ShowableFrame      bool
	ErrorResilientMode bool
	CurrentFrameID     int
	OrderHint          int
	// RefOrderHints are the ref_order_hint[] values of an error resilient
	// frame, nil when not signalled.
	RefOrderHints     []int
	PrimaryRefFrame   int
	RefreshFrameFlags int

	FrameRefsShortSignaling bool
	LastFrameIdx            int
	GoldFrameIdx            int
	RefFrameIdx             [RefsPerFrame]int
	DeltaFrameIDs           [RefsPerFrame]int // delta_frame_id_minus_1 + 1
	UseRefFrameMvs          bool

	UpscaledWidth int
	FrameWidth    int
	FrameHeight   int
	RenderWidth   int
	RenderHeight  int
	UseSuperres   bool
	BitDepth      int
	SubsamplingX  int
	SubsamplingY  int

	LoopFilterLevel       [2]int
	LoopFilterDeltas      LoopFilterDeltas
	SegmentationEnabled   bool
	SegmentationUpdateMap bool
	Segmentation          SegmentationParams
	GlobalMotion          GlobalMotion
	FilmGrain             *FilmGrainParams
}

func (h *FrameHeader) FrameIsIntra() bool {
	return h.FrameType.IsIntra()
}

func (h *FrameHeader) MiCols() int {
	return frame.MiCols(h.FrameWidth)
}

func (h *FrameHeader) MiRows() int {
	return frame.MiRows(h.FrameHeight)
}

func flag(r BitReader) (bool, error) {
	v, err := r.F(1)
	return v != 0, err
}

// ReadShowExisting reads show_existing_frame and, when set, the slot to
// show and its display_frame_id.
func (d *Decoder) ReadShowExisting(r BitReader, h *FrameHeader) error {
	var err error
	if h.ShowExistingFrame, err = flag(r); err != nil {
		return errors.Wrap(err, "could not read show_existing_frame")
	}
	if !h.ShowExistingFrame {
		return nil
	}

	if h.FrameToShowMapIdx, err = r.F(3); err != nil {
		return errors.Wrap(err, "could not read frame_to_show_map_idx")
	}
	if d.config.FrameIDNumbersPresent {
		if h.DisplayFrameID, err = r.F(d.config.FrameIDLength); err != nil {
			return errors.Wrap(err, "could not read display_frame_id")
		}
	}
	h.ShowFrame = true
	return nil
}

// ReadFrameRefs reads the reference selection of an inter frame:
// frame_refs_short_signaling, last/gold_frame_idx, ref_frame_idx[] and
// delta_frame_id_minus_1[].
func (d *Decoder) ReadFrameRefs(r BitReader, h *FrameHeader) error {
	var err error
	h.FrameRefsShortSignaling = false
	if d.config.EnableOrderHint {
		if h.FrameRefsShortSignaling, err = flag(r); err != nil {
			return errors.Wrap(err, "could not read frame_refs_short_signaling")
		}
		if h.FrameRefsShortSignaling {
			if h.LastFrameIdx, err = r.F(3); err != nil {
				return errors.Wrap(err, "could not read last_frame_idx")
			}
			if h.GoldFrameIdx, err = r.F(3); err != nil {
				return errors.Wrap(err, "could not read gold_frame_idx")
			}
		}
	}

	for i := 0; i < RefsPerFrame; i++ {
		if !h.FrameRefsShortSignaling {
			if h.RefFrameIdx[i], err = r.F(3); err != nil {
				return errors.Wrapf(err, "could not read ref_frame_idx[%d]", i)
			}
		}
		if d.config.FrameIDNumbersPresent {
			delta, err := r.F(d.config.DeltaFrameIDLength)
			if err != nil {
				return errors.Wrapf(err, "could not read delta_frame_id_minus_1[%d]", i)
			}
			h.DeltaFrameIDs[i] = delta + 1
		}
	}
	return nil
}
