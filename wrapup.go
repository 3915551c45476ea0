package av1ref

import (
	"github.com/pkg/errors"

	"github.com/m4tthewde/av1ref/internal/mfmv"
	"github.com/m4tthewde/av1ref/internal/refs"
	"github.com/m4tthewde/av1ref/internal/superres"
	"github.com/m4tthewde/av1ref/internal/util"
)

// TileData is what tile decoding leaves behind for wrap-up.
type TileData struct {
	Recon      *Buffer
	Blocks     *BlockMap
	SegmentIDs [][]int
	// CDFs are the probability models saved at the end of the largest tile.
	CDFs ProbabilityModels
}

// PostFilter runs the in-loop filters. Each call filters frame in place.
type PostFilter interface {
	LoopFilter(frame *Buffer, h *FrameHeader)
	CDEF(frame *Buffer, h *FrameHeader)
	// LoopRestoration filters frame, a copy of upscaledCdef. upscaledCurr is
	// the upscaled deblocked frame, the source of stripe boundary samples.
	LoopRestoration(frame, upscaledCdef, upscaledCurr *Buffer, h *FrameHeader)
}

type NopFilters struct{}

func (NopFilters) LoopFilter(*Buffer, *FrameHeader) {}

func (NopFilters) CDEF(*Buffer, *FrameHeader) {}

func (NopFilters) LoopRestoration(_, _, _ *Buffer, _ *FrameHeader) {}

// OutputFrame is a frame handed to the output process.
type OutputFrame struct {
	// Frame is owned by the decoder and must not be modified.
	Frame         *Buffer
	FrameType     FrameType
	OrderHint     int
	UpscaledWidth int
	FrameHeight   int
	RenderWidth   int
	RenderHeight  int
	// FilmGrain is nil when no grain is to be synthesised.
	FilmGrain *FilmGrainParams
}

type Sink interface {
	Output(f *OutputFrame) error
}

type SinkFunc func(f *OutputFrame) error

func (fn SinkFunc) Output(f *OutputFrame) error {
	return fn(f)
}

// DecodeFrameWrapup finishes a frame. A decoded frame is filtered, upscaled
// and committed to the slots named by refresh_frame_flags. A
// show_existing_frame header restores the shown slot instead; a shown key
// frame is committed back into every slot. A shown frame is then output.
func (d *Decoder) DecodeFrameWrapup(h *FrameHeader, td *TileData) error {
	if h.ShowExistingFrame {
		return d.showExisting(h)
	}

	p := d.pending
	if p == nil || p.header != h {
		return ErrNoFrameSetup
	}
	d.pending = nil
	if td == nil || td.Recon == nil || td.Blocks == nil {
		return ErrMissingTileData
	}

	if h.LoopFilterLevel[0] != 0 || h.LoopFilterLevel[1] != 0 {
		d.filters.LoopFilter(td.Recon, h)
	}
	cdef := td.Recon.Clone()
	d.filters.CDEF(cdef, h)

	sr := superres.Params{
		Enabled:       h.UseSuperres,
		FrameWidth:    h.FrameWidth,
		FrameHeight:   h.FrameHeight,
		UpscaledWidth: h.UpscaledWidth,
	}
	upscaledCdef := superres.Upscale(cdef, sr)
	upscaledCurr := superres.Upscale(td.Recon, sr)
	final := upscaledCdef.Clone()
	d.filters.LoopRestoration(final, upscaledCdef, upscaledCurr, h)

	motion := mfmv.Capture(td.Blocks, d.motionFrame(h, p.ctx))

	miRows, miCols := h.MiRows(), h.MiCols()
	if td.SegmentIDs == nil {
		td.SegmentIDs = util.Make2D[int](miRows, miCols)
	}
	if h.SegmentationEnabled && !h.SegmentationUpdateMap {
		for y := 0; y < miRows && y < len(p.ctx.PrevSegmentIDs); y++ {
			copy(td.SegmentIDs[y], p.ctx.PrevSegmentIDs[y])
		}
	}

	snap := d.snapshot(h, p.ctx, td, final, motion)
	if err := d.refs.Commit(h.RefreshFrameFlags, snap); err != nil {
		return errors.Wrapf(err, "frame %d", d.frameCount)
	}
	d.current = snap.Clone()
	d.log.Printf("frame %d: %s order_hint=%d refresh_frame_flags=%08b show_frame=%t",
		d.frameCount, h.FrameType, h.OrderHint, h.RefreshFrameFlags, h.ShowFrame)
	d.frameCount++

	if h.ShowFrame {
		return d.output(d.current)
	}
	return nil
}

func (d *Decoder) showExisting(h *FrameHeader) error {
	d.pending = nil
	idx := h.FrameToShowMapIdx
	if idx < 0 || idx >= NumRefFrames {
		return errors.Wrapf(ErrSlotIndex, "frame_to_show_map_idx=%d", idx)
	}
	slot := d.refs.Slot(idx)
	if !slot.Valid {
		return errors.Wrapf(ErrRefNotValid, "frame_to_show_map_idx=%d", idx)
	}
	if d.config.FrameIDNumbersPresent && h.DisplayFrameID != slot.FrameID {
		return errors.Wrapf(ErrFrameIDMismatch, "display_frame_id=%d, slot %d holds %d", h.DisplayFrameID, idx, slot.FrameID)
	}
	if !slot.Showable {
		return errors.Wrapf(ErrNotShowable, "slot %d", idx)
	}

	shown, err := d.refs.Restore(idx)
	if err != nil {
		return err
	}
	h.FrameType = shown.FrameType
	h.ShowFrame = true
	h.RefreshFrameFlags = 0
	if h.FrameType == KeyFrame {
		h.RefreshFrameFlags = AllFrames
		d.current = shown
	}

	committed := shown.Clone()
	committed.Showable = false
	if err := d.refs.Commit(h.RefreshFrameFlags, committed); err != nil {
		return errors.Wrapf(err, "show existing slot %d", idx)
	}
	d.log.Printf("frame %d: show existing slot %d (%s) refresh_frame_flags=%08b",
		d.frameCount, idx, h.FrameType, h.RefreshFrameFlags)
	d.frameCount++

	return d.output(shown)
}

func (d *Decoder) output(s *refs.Snapshot) error {
	if d.config.Output == nil {
		return nil
	}
	f := &OutputFrame{
		Frame:         s.Frame,
		FrameType:     s.FrameType,
		OrderHint:     s.OrderHint,
		UpscaledWidth: s.UpscaledWidth,
		FrameHeight:   s.FrameHeight,
		RenderWidth:   s.RenderWidth,
		RenderHeight:  s.RenderHeight,
	}
	if s.FilmGrain != nil && s.FilmGrain.ApplyGrain {
		f.FilmGrain = s.FilmGrain
	}
	return errors.Wrap(d.config.Output.Output(f), "output")
}
