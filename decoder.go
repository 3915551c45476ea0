// Package av1ref implements the reference-frame lifecycle of an AV1 decoder:
// the reference pool, reference selection, temporal motion projection and
// the end-of-frame wrap-up that filters, upscales, commits and outputs a
// decoded frame.
package av1ref

import (
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/mfmv"
	"github.com/m4tthewde/av1ref/internal/orderhint"
	"github.com/m4tthewde/av1ref/internal/refs"
	"github.com/m4tthewde/av1ref/internal/util"
)

// FrameContext is the state SetupFrame prepares for decoding a frame's
// tiles.
type FrameContext struct {
	RefFrameIdx [RefsPerFrame]int
	// OrderHints[ref] is the order hint of the slot used for class ref.
	OrderHints       [TotalRefsPerFrame]int
	RefFrameSignBias [TotalRefsPerFrame]bool

	ProbabilityModels ProbabilityModels
	LoopFilterDeltas  LoopFilterDeltas
	Segmentation      SegmentationParams
	PrevGlobalMotion  GlobalMotion
	PrevSegmentIDs    [][]int
	MotionField       *MotionField
}

type pendingFrame struct {
	header *FrameHeader
	ctx    *FrameContext
}

type Decoder struct {
	config  Config
	hints   orderhint.Config
	refs    *refs.Store
	filters PostFilter
	log     *log.Logger

	pending    *pendingFrame
	current    *refs.Snapshot
	frameCount int
}

func NewDecoder(config Config) *Decoder {
	d := &Decoder{
		config:  config,
		hints:   config.orderHints(),
		refs:    refs.NewStore(),
		filters: config.Filters,
		log:     config.Logger,
	}
	if d.filters == nil {
		d.filters = NopFilters{}
	}
	if d.log == nil {
		d.log = log.New(io.Discard, "", 0)
	}
	return d
}

// RefValid reports whether slot i may be used for prediction.
func (d *Decoder) RefValid(i int) bool {
	return d.refs.Valid(i)
}

// RefFrame returns a copy of slot i's committed state.
func (d *Decoder) RefFrame(i int) (*Snapshot, error) {
	s, err := d.refs.Restore(i)
	if errors.Is(err, refs.ErrInvalidSlot) {
		return nil, errors.Wrapf(ErrRefNotValid, "slot %d", i)
	}
	return s, err
}

// Current returns a copy of the most recently decoded or restored frame, nil
// before the first frame.
func (d *Decoder) Current() *Snapshot {
	return d.current.Clone()
}

// SetupFrame prepares the decoder for the tiles of a new frame: frame id
// marking, the key frame reset, reference resolution, loading of the
// primary reference's state and motion field estimation.
func (d *Decoder) SetupFrame(h *FrameHeader) (*FrameContext, error) {
	d.pending = nil
	if h.ShowExistingFrame {
		return nil, ErrShowExistingSetup
	}

	if d.config.FrameIDNumbersPresent {
		marked := d.refs.MarkFrameIDs(h.CurrentFrameID, d.config.FrameIDLength, d.config.DeltaFrameIDLength)
		if len(marked) > 0 {
			d.log.Printf("frame id %d: invalidated stale slots %v", h.CurrentFrameID, marked)
		}
	}

	if h.FrameType == KeyFrame && h.ShowFrame {
		d.refs.ResetForKeyFrame()
	} else if h.ErrorResilientMode && d.hints.Enabled && h.RefOrderHints != nil {
		marked := d.refs.SyncOrderHints(h.RefOrderHints)
		if len(marked) > 0 {
			d.log.Printf("frame %d: ref_order_hint invalidated slots %v", d.frameCount, marked)
		}
	}

	ctx := &FrameContext{}
	if !h.FrameIsIntra() {
		if err := d.resolveRefs(h, ctx); err != nil {
			return nil, err
		}
	}
	if err := d.loadPrevious(h, ctx); err != nil {
		return nil, err
	}
	if err := d.loadGrain(h); err != nil {
		return nil, err
	}

	ctx.MotionField = mfmv.NewField(h.MiRows(), h.MiCols())
	if h.UseRefFrameMvs && !h.FrameIsIntra() {
		ctx.MotionField = mfmv.Estimate(d.motionFrame(h, ctx), d.refs)
	}

	d.pending = &pendingFrame{header: h, ctx: ctx}
	return ctx, nil
}

func (d *Decoder) resolveRefs(h *FrameHeader, ctx *FrameContext) error {
	if h.FrameRefsShortSignaling {
		idx, err := refs.SetFrameRefs(d.refs.OrderHints(), h.OrderHint, d.hints, h.LastFrameIdx, h.GoldFrameIdx)
		if err != nil {
			return errors.Wrapf(err, "frame %d", d.frameCount)
		}
		h.RefFrameIdx = idx
		d.log.Printf("frame %d: short signaling resolved ref_frame_idx=%v", d.frameCount, idx)
	}

	idLen := d.config.FrameIDLength
	for i, idx := range h.RefFrameIdx {
		if idx < 0 || idx >= NumRefFrames {
			return errors.Wrapf(ErrSlotIndex, "ref_frame_idx[%d]=%d", i, idx)
		}
		if !d.refs.Valid(idx) {
			return errors.Wrapf(ErrRefNotValid, "ref_frame_idx[%d]=%d", i, idx)
		}
		slot := d.refs.Slot(idx)
		if d.config.FrameIDNumbersPresent {
			expected := (h.CurrentFrameID + (1 << idLen) - h.DeltaFrameIDs[i]) % (1 << idLen)
			if expected != slot.FrameID {
				return errors.Wrapf(ErrFrameIDMismatch, "ref_frame_idx[%d]=%d: expected id %d, slot holds %d", i, idx, expected, slot.FrameID)
			}
		}
		ref := LastFrame + i
		ctx.OrderHints[ref] = slot.OrderHint
		ctx.RefFrameSignBias[ref] = d.hints.RelativeDist(slot.OrderHint, h.OrderHint) > 0
	}
	ctx.RefFrameIdx = h.RefFrameIdx
	return nil
}

func (d *Decoder) loadPrevious(h *FrameHeader, ctx *FrameContext) error {
	primary := h.PrimaryRefFrame
	if h.FrameIsIntra() || h.ErrorResilientMode {
		primary = PrimaryRefNone
	}
	if primary < 0 || primary > PrimaryRefNone {
		return errors.Wrapf(ErrPrimaryRefFrame, "primary_ref_frame=%d", primary)
	}

	miRows, miCols := h.MiRows(), h.MiCols()
	if primary == PrimaryRefNone {
		if d.config.DefaultCDFs != nil {
			ctx.ProbabilityModels = d.config.DefaultCDFs()
		}
		ctx.LoopFilterDeltas = DefaultLoopFilterDeltas()
		ctx.Segmentation = SegmentationParams{}
		ctx.PrevGlobalMotion = DefaultGlobalMotion()
		ctx.PrevSegmentIDs = util.Make2D[int](miRows, miCols)
		return nil
	}

	slot := d.refs.Slot(h.RefFrameIdx[primary])
	ctx.ProbabilityModels = slot.CDFs.Clone()
	ctx.LoopFilterDeltas = slot.LoopFilter
	ctx.Segmentation = slot.Segmentation
	ctx.PrevGlobalMotion = slot.GlobalMotion
	if h.SegmentationEnabled && slot.MiRows == miRows && slot.MiCols == miCols && slot.SegmentIDs != nil {
		ctx.PrevSegmentIDs = util.Clone2D(slot.SegmentIDs)
	} else {
		ctx.PrevSegmentIDs = util.Make2D[int](miRows, miCols)
	}
	return nil
}

// loadGrain validates freshly signalled grain parameters, or replaces
// h.FilmGrain with those of the referenced slot, keeping the new seed.
func (d *Decoder) loadGrain(h *FrameHeader) error {
	if !d.config.FilmGrainParamsPresent || h.FilmGrain == nil || !h.FilmGrain.ApplyGrain {
		return nil
	}
	if h.FilmGrain.UpdateGrain {
		return h.FilmGrain.Validate()
	}

	idx := h.FilmGrain.FilmGrainParamsRefIdx
	found := false
	for _, ref := range h.RefFrameIdx {
		if ref == idx {
			found = true
			break
		}
	}
	if !found || h.FrameIsIntra() {
		return errors.Wrapf(ErrGrainRefIdx, "film_grain_params_ref_idx=%d", idx)
	}
	slot := d.refs.Slot(idx)
	if slot.FilmGrain == nil {
		return errors.Wrapf(ErrGrainRefIdx, "slot %d holds no film grain parameters", idx)
	}

	loaded := slot.FilmGrain.Clone()
	loaded.GrainSeed = h.FilmGrain.GrainSeed
	loaded.UpdateGrain = false
	loaded.FilmGrainParamsRefIdx = idx
	h.FilmGrain = loaded
	return nil
}

func (d *Decoder) motionFrame(h *FrameHeader, ctx *FrameContext) *mfmv.Frame {
	return &mfmv.Frame{
		MiRows:      h.MiRows(),
		MiCols:      h.MiCols(),
		OrderHint:   h.OrderHint,
		OrderHints:  ctx.OrderHints,
		RefFrameIdx: ctx.RefFrameIdx,
		Hints:       d.hints,
	}
}

func (d *Decoder) snapshot(h *FrameHeader, ctx *FrameContext, td *TileData, final *frame.Buffer, motion frame.SavedMotion) *refs.Snapshot {
	snap := &refs.Snapshot{
		FrameID:         h.CurrentFrameID,
		FrameType:       h.FrameType,
		Showable:        h.ShowableFrame,
		OrderHint:       h.OrderHint,
		SavedOrderHints: ctx.OrderHints,
		UpscaledWidth:   h.UpscaledWidth,
		FrameWidth:      h.FrameWidth,
		FrameHeight:     h.FrameHeight,
		RenderWidth:     h.RenderWidth,
		RenderHeight:    h.RenderHeight,
		MiCols:          h.MiCols(),
		MiRows:          h.MiRows(),
		BitDepth:        h.BitDepth,
		SubsamplingX:    h.SubsamplingX,
		SubsamplingY:    h.SubsamplingY,
		Frame:           final,
		Motion:          motion,
		SegmentIDs:      td.SegmentIDs,
		GlobalMotion:    h.GlobalMotion,
		CDFs:            td.CDFs,
		LoopFilter:      h.LoopFilterDeltas,
		Segmentation:    h.Segmentation,
	}
	if d.config.FilmGrainParamsPresent {
		snap.FilmGrain = h.FilmGrain
	}
	return snap
}
