package av1ref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4tthewde/av1ref/internal/util"
)

const (
	testWidth  = 16
	testHeight = 16
)

func keyHeader() *FrameHeader {
	return &FrameHeader{
		FrameType:         KeyFrame,
		ShowFrame:         true,
		RefreshFrameFlags: AllFrames,
		PrimaryRefFrame:   PrimaryRefNone,
		UpscaledWidth:     testWidth,
		FrameWidth:        testWidth,
		FrameHeight:       testHeight,
		RenderWidth:       testWidth,
		RenderHeight:      testHeight,
		BitDepth:          8,
		SubsamplingX:      1,
		SubsamplingY:      1,
		LoopFilterDeltas:  DefaultLoopFilterDeltas(),
		GlobalMotion:      DefaultGlobalMotion(),
	}
}

func interHeader(orderHint, refresh int, refIdx [RefsPerFrame]int) *FrameHeader {
	h := keyHeader()
	h.FrameType = InterFrame
	h.OrderHint = orderHint
	h.RefreshFrameFlags = refresh
	h.RefFrameIdx = refIdx
	h.PrimaryRefFrame = PrimaryRefNone
	return h
}

func tileData(h *FrameHeader, pix int) *TileData {
	recon := NewBuffer(h.FrameWidth, h.FrameHeight, h.BitDepth, h.SubsamplingX, h.SubsamplingY, 3)
	recon.Fill(pix)
	return &TileData{
		Recon:  recon,
		Blocks: NewBlockMap(h.MiRows(), h.MiCols()),
	}
}

func uniformBlocks(h *FrameHeader, ref int, mv MV) *BlockMap {
	b := NewBlockMap(h.MiRows(), h.MiCols())
	for y := range b.Info {
		for x := range b.Info[y] {
			b.Info[y][x] = ModeInfo{RefFrame: [2]int{ref, None}, Mv: [2]MV{mv}}
		}
	}
	return b
}

func decode(t *testing.T, d *Decoder, h *FrameHeader, td *TileData) *FrameContext {
	t.Helper()
	ctx, err := d.SetupFrame(h)
	require.NoError(t, err)
	require.NoError(t, d.DecodeFrameWrapup(h, td))
	return ctx
}

func collect(shown *[]*OutputFrame) Sink {
	return SinkFunc(func(f *OutputFrame) error {
		*shown = append(*shown, f)
		return nil
	})
}

func TestDecodeSequence(t *testing.T) {
	var shown []*OutputFrame
	config := DefaultConfig()
	config.Output = collect(&shown)
	d := NewDecoder(config)

	decode(t, d, keyHeader(), tileData(keyHeader(), 100))
	first, err := d.RefFrame(0)
	require.NoError(t, err)
	for i := 0; i < NumRefFrames; i++ {
		assert.True(t, d.RefValid(i))
		slot, err := d.RefFrame(i)
		require.NoError(t, err)
		assert.Equal(t, first, slot, "slot %d", i)
	}
	assert.Equal(t, 100, first.Frame.Planes[0].At(3, 3))
	assert.True(t, first.Motion.Empty())
	require.Len(t, shown, 1)
	assert.Equal(t, KeyFrame, shown[0].FrameType)

	h2 := interHeader(1, 1<<3, [RefsPerFrame]int{})
	h2.UseRefFrameMvs = true
	td2 := tileData(h2, 120)
	td2.Blocks = uniformBlocks(h2, LastFrame, MV{0, 8})
	ctx2 := decode(t, d, h2, td2)
	assert.True(t, ctx2.MotionField.Empty())

	slot3, err := d.RefFrame(3)
	require.NoError(t, err)
	assert.Equal(t, InterFrame, slot3.FrameType)
	assert.Equal(t, 1, slot3.OrderHint)
	assert.False(t, slot3.Motion.Empty())
	assert.Equal(t, LastFrame, slot3.Motion.RefFrames[0][0])
	assert.Equal(t, MV{0, 8}, slot3.Motion.Mvs[1][1])
	for _, i := range []int{0, 1, 2, 4, 5, 6, 7} {
		slot, err := d.RefFrame(i)
		require.NoError(t, err)
		assert.Equal(t, first, slot, "slot %d", i)
	}
	assert.Equal(t, 1, d.Current().OrderHint)

	h3 := interHeader(2, 1<<4, [RefsPerFrame]int{3, 0, 0, 3, 0, 0, 0})
	h3.UseRefFrameMvs = true
	ctx3 := decode(t, d, h3, tileData(h3, 140))
	field := ctx3.MotionField
	require.False(t, field.Empty())
	for y := 0; y < field.Rows8; y++ {
		for x := 0; x < field.Cols8; x++ {
			assert.Equal(t, MV{0, 8}, field.At(LastFrame, y, x))
			assert.Equal(t, MV{0, 8}, field.At(GoldenFrame, y, x))
			assert.Equal(t, MV{0, 16}, field.At(Last2Frame, y, x))
		}
	}
	assert.Equal(t, [TotalRefsPerFrame]int{0, 1, 0, 0, 1, 0, 0, 0}, ctx3.OrderHints)
	assert.Len(t, shown, 3)
}

func TestShortSignalingResolvesRefs(t *testing.T) {
	d := NewDecoder(DefaultConfig())
	decode(t, d, keyHeader(), tileData(keyHeader(), 0))

	h := interHeader(1, 0, [RefsPerFrame]int{})
	h.FrameRefsShortSignaling = true
	h.LastFrameIdx = 0
	h.GoldFrameIdx = 1
	ctx, err := d.SetupFrame(h)
	require.NoError(t, err)
	expected := [RefsPerFrame]int{0, 7, 6, 1, 5, 4, 3}
	assert.Equal(t, expected, h.RefFrameIdx)
	assert.Equal(t, expected, ctx.RefFrameIdx)
	assert.False(t, ctx.RefFrameSignBias[AltrefFrame])
}

func TestSignBias(t *testing.T) {
	d := NewDecoder(DefaultConfig())
	key := keyHeader()
	key.OrderHint = 10
	decode(t, d, key, tileData(key, 0))

	h := interHeader(5, 0, [RefsPerFrame]int{})
	ctx, err := d.SetupFrame(h)
	require.NoError(t, err)
	for ref := LastFrame; ref <= AltrefFrame; ref++ {
		assert.True(t, ctx.RefFrameSignBias[ref])
		assert.Equal(t, 10, ctx.OrderHints[ref])
	}
}

func TestShowExistingKeyFrame(t *testing.T) {
	var shown []*OutputFrame
	config := DefaultConfig()
	config.Output = collect(&shown)
	d := NewDecoder(config)

	key := keyHeader()
	key.ShowFrame = false
	key.ShowableFrame = true
	key.RefreshFrameFlags = 1 << 2
	decode(t, d, key, tileData(key, 77))
	assert.Empty(t, shown)

	inter := interHeader(1, 1, [RefsPerFrame]int{2, 2, 2, 2, 2, 2, 2})
	decode(t, d, inter, tileData(inter, 33))
	require.Len(t, shown, 1)

	existing := &FrameHeader{ShowExistingFrame: true, FrameToShowMapIdx: 2}
	require.NoError(t, d.DecodeFrameWrapup(existing, nil))
	require.Len(t, shown, 2)
	assert.Equal(t, KeyFrame, shown[1].FrameType)
	assert.Equal(t, 77, shown[1].Frame.Planes[0].At(0, 0))
	assert.Equal(t, KeyFrame, existing.FrameType)
	assert.Equal(t, AllFrames, existing.RefreshFrameFlags)

	for i := 0; i < NumRefFrames; i++ {
		slot, err := d.RefFrame(i)
		require.NoError(t, err)
		assert.Equal(t, KeyFrame, slot.FrameType, "slot %d", i)
		assert.False(t, slot.Showable, "slot %d", i)
		assert.Equal(t, 77, slot.Frame.Planes[0].At(5, 5))
	}
	assert.Equal(t, KeyFrame, d.Current().FrameType)

	again := &FrameHeader{ShowExistingFrame: true, FrameToShowMapIdx: 2}
	assert.ErrorIs(t, d.DecodeFrameWrapup(again, nil), ErrNotShowable)
}

func TestShowExistingInterFrame(t *testing.T) {
	var shown []*OutputFrame
	config := DefaultConfig()
	config.Output = collect(&shown)
	d := NewDecoder(config)
	decode(t, d, keyHeader(), tileData(keyHeader(), 0))

	hidden := interHeader(4, 1<<6, [RefsPerFrame]int{})
	hidden.ShowFrame = false
	hidden.ShowableFrame = true
	decode(t, d, hidden, tileData(hidden, 90))
	before, err := d.RefFrame(6)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		existing := &FrameHeader{ShowExistingFrame: true, FrameToShowMapIdx: 6}
		require.NoError(t, d.DecodeFrameWrapup(existing, nil))
		assert.Equal(t, 0, existing.RefreshFrameFlags)
	}
	require.Len(t, shown, 3)
	assert.Equal(t, 4, shown[2].OrderHint)
	assert.Equal(t, 90, shown[2].Frame.Planes[1].At(0, 0))

	after, err := d.RefFrame(6)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 4, d.Current().OrderHint)
}

func TestShowExistingErrors(t *testing.T) {
	config := DefaultConfig()
	config.FrameIDNumbersPresent = true
	config.FrameIDLength = 8
	config.DeltaFrameIDLength = 4
	d := NewDecoder(config)

	err := d.DecodeFrameWrapup(&FrameHeader{ShowExistingFrame: true, FrameToShowMapIdx: 1}, nil)
	assert.ErrorIs(t, err, ErrRefNotValid)

	key := keyHeader()
	key.CurrentFrameID = 9
	decode(t, d, key, tileData(key, 0))

	err = d.DecodeFrameWrapup(&FrameHeader{ShowExistingFrame: true, FrameToShowMapIdx: 1, DisplayFrameID: 9}, nil)
	assert.ErrorIs(t, err, ErrNotShowable)

	err = d.DecodeFrameWrapup(&FrameHeader{ShowExistingFrame: true, FrameToShowMapIdx: 1, DisplayFrameID: 3}, nil)
	assert.ErrorIs(t, err, ErrFrameIDMismatch)

	err = d.DecodeFrameWrapup(&FrameHeader{ShowExistingFrame: true, FrameToShowMapIdx: 8}, nil)
	assert.ErrorIs(t, err, ErrSlotIndex)
}

func TestSetupFrameErrors(t *testing.T) {
	d := NewDecoder(DefaultConfig())

	_, err := d.SetupFrame(interHeader(1, 1, [RefsPerFrame]int{}))
	assert.ErrorIs(t, err, ErrRefNotValid)

	_, err = d.SetupFrame(&FrameHeader{ShowExistingFrame: true})
	assert.ErrorIs(t, err, ErrShowExistingSetup)

	h := keyHeader()
	assert.ErrorIs(t, d.DecodeFrameWrapup(h, tileData(h, 0)), ErrNoFrameSetup)

	_, err = d.SetupFrame(h)
	require.NoError(t, err)
	assert.ErrorIs(t, d.DecodeFrameWrapup(h, nil), ErrMissingTileData)
	assert.ErrorIs(t, d.DecodeFrameWrapup(h, tileData(h, 0)), ErrNoFrameSetup)

	decode(t, d, h, tileData(h, 0))

	bad := interHeader(1, 1, [RefsPerFrame]int{0, 0, 0, 9, 0, 0, 0})
	_, err = d.SetupFrame(bad)
	assert.ErrorIs(t, err, ErrSlotIndex)

	primary := interHeader(1, 1, [RefsPerFrame]int{})
	primary.PrimaryRefFrame = 8
	_, err = d.SetupFrame(primary)
	assert.ErrorIs(t, err, ErrPrimaryRefFrame)

	short := interHeader(1, 1, [RefsPerFrame]int{})
	short.FrameRefsShortSignaling = true
	short.OrderHint = 0
	_, err = d.SetupFrame(short)
	assert.ErrorIs(t, err, ErrRefOrder)
}

func TestIntraOnlyCannotRefreshAll(t *testing.T) {
	d := NewDecoder(DefaultConfig())
	decode(t, d, keyHeader(), tileData(keyHeader(), 0))

	h := keyHeader()
	h.FrameType = IntraOnlyFrame
	h.OrderHint = 3
	_, err := d.SetupFrame(h)
	require.NoError(t, err)
	assert.ErrorIs(t, d.DecodeFrameWrapup(h, tileData(h, 5)), ErrIntraOnlyRefreshAll)

	slot, err := d.RefFrame(0)
	require.NoError(t, err)
	assert.Equal(t, KeyFrame, slot.FrameType)
}

func TestFrameIDs(t *testing.T) {
	config := DefaultConfig()
	config.FrameIDNumbersPresent = true
	config.FrameIDLength = 8
	config.DeltaFrameIDLength = 4
	d := NewDecoder(config)

	key := keyHeader()
	key.CurrentFrameID = 20
	decode(t, d, key, tileData(key, 0))

	h := interHeader(1, 0, [RefsPerFrame]int{})
	h.CurrentFrameID = 22
	h.DeltaFrameIDs = [RefsPerFrame]int{2, 2, 2, 2, 2, 2, 1}
	_, err := d.SetupFrame(h)
	assert.ErrorIs(t, err, ErrFrameIDMismatch)

	h.DeltaFrameIDs[6] = 2
	_, err = d.SetupFrame(h)
	require.NoError(t, err)

	far := interHeader(2, 0, [RefsPerFrame]int{})
	far.CurrentFrameID = 200
	_, err = d.SetupFrame(far)
	assert.ErrorIs(t, err, ErrRefNotValid)
	for i := 0; i < NumRefFrames; i++ {
		assert.False(t, d.RefValid(i))
	}
}

func TestErrorResilientOrderHints(t *testing.T) {
	d := NewDecoder(DefaultConfig())
	decode(t, d, keyHeader(), tileData(keyHeader(), 0))

	h := interHeader(6, 0, [RefsPerFrame]int{0, 1, 2, 3, 4, 5, 6})
	h.ErrorResilientMode = true
	h.RefOrderHints = []int{0, 0, 0, 5, 0, 0, 0, 0}
	_, err := d.SetupFrame(h)
	assert.ErrorIs(t, err, ErrRefNotValid)
	assert.False(t, d.RefValid(3))
	assert.True(t, d.RefValid(4))
}

func TestLoadPrevious(t *testing.T) {
	config := DefaultConfig()
	defaults := 0
	config.DefaultCDFs = func() ProbabilityModels {
		defaults++
		return ProbabilityModels{NonCoeff: CDFSet{"default": {{1}}}}
	}
	d := NewDecoder(config)

	key := keyHeader()
	key.LoopFilterDeltas.RefDeltas[2] = 5
	key.GlobalMotion[GoldenFrame][0] = 64
	key.Segmentation.FeatureEnabled[1][0] = true
	key.Segmentation.FeatureData[1][0] = -12
	td := tileData(key, 0)
	td.CDFs = ProbabilityModels{NonCoeff: CDFSet{"skip": {{100, 200, 0}}}}
	ctx := decode(t, d, key, td)
	assert.Equal(t, 1, defaults)
	assert.Equal(t, DefaultLoopFilterDeltas(), ctx.LoopFilterDeltas)
	assert.Equal(t, DefaultGlobalMotion(), ctx.PrevGlobalMotion)

	h := interHeader(1, 0, [RefsPerFrame]int{})
	h.PrimaryRefFrame = 0
	ctx, err := d.SetupFrame(h)
	require.NoError(t, err)
	assert.Equal(t, 1, defaults)
	assert.Equal(t, td.CDFs, ctx.ProbabilityModels)
	assert.Equal(t, 5, ctx.LoopFilterDeltas.RefDeltas[2])
	assert.Equal(t, 64, ctx.PrevGlobalMotion[GoldenFrame][0])
	assert.Equal(t, -12, ctx.Segmentation.FeatureData[1][0])

	ctx.ProbabilityModels.NonCoeff["skip"][0][0] = 1
	slot, err := d.RefFrame(0)
	require.NoError(t, err)
	assert.Equal(t, uint16(100), slot.CDFs.NonCoeff["skip"][0][0])

	resilient := interHeader(1, 0, [RefsPerFrame]int{})
	resilient.PrimaryRefFrame = 0
	resilient.ErrorResilientMode = true
	ctx, err = d.SetupFrame(resilient)
	require.NoError(t, err)
	assert.Equal(t, 2, defaults)
	assert.Equal(t, SegmentationParams{}, ctx.Segmentation)
}

func TestSegmentIDsCarryForward(t *testing.T) {
	d := NewDecoder(DefaultConfig())

	key := keyHeader()
	key.SegmentationEnabled = true
	key.SegmentationUpdateMap = true
	td := tileData(key, 0)
	td.SegmentIDs = util.Fill2D(key.MiRows(), key.MiCols(), 3)
	decode(t, d, key, td)

	h := interHeader(1, 1<<1, [RefsPerFrame]int{})
	h.PrimaryRefFrame = 0
	h.SegmentationEnabled = true
	ctx := decode(t, d, h, tileData(h, 0))
	assert.Equal(t, td.SegmentIDs, ctx.PrevSegmentIDs)

	slot, err := d.RefFrame(1)
	require.NoError(t, err)
	assert.Equal(t, util.Fill2D(h.MiRows(), h.MiCols(), 3), slot.SegmentIDs)

	off := interHeader(2, 0, [RefsPerFrame]int{})
	off.PrimaryRefFrame = 0
	ctx, err = d.SetupFrame(off)
	require.NoError(t, err)
	assert.Equal(t, util.Make2D[int](off.MiRows(), off.MiCols()), ctx.PrevSegmentIDs)
}

func grainParams(seed int) *FilmGrainParams {
	return &FilmGrainParams{
		ApplyGrain:     true,
		UpdateGrain:    true,
		GrainSeed:      seed,
		PointYValue:    []int{0, 128, 255},
		PointYScaling:  []int{20, 40, 60},
		PointCbValue:   []int{16, 240},
		PointCbScaling: []int{8, 8},
	}
}

func TestFilmGrain(t *testing.T) {
	var shown []*OutputFrame
	config := DefaultConfig()
	config.FilmGrainParamsPresent = true
	config.Output = collect(&shown)
	d := NewDecoder(config)

	key := keyHeader()
	key.FilmGrain = grainParams(10)
	decode(t, d, key, tileData(key, 0))
	require.Len(t, shown, 1)
	require.NotNil(t, shown[0].FilmGrain)
	assert.Equal(t, 10, shown[0].FilmGrain.GrainSeed)

	h := interHeader(1, 0, [RefsPerFrame]int{})
	h.FilmGrain = &FilmGrainParams{ApplyGrain: true, GrainSeed: 99, FilmGrainParamsRefIdx: 0}
	decode(t, d, h, tileData(h, 0))
	require.Len(t, shown, 2)
	loaded := shown[1].FilmGrain
	require.NotNil(t, loaded)
	assert.Equal(t, 99, loaded.GrainSeed)
	assert.Equal(t, []int{0, 128, 255}, loaded.PointYValue)
	assert.Equal(t, []int{16, 240}, loaded.PointCbValue)

	missing := interHeader(2, 0, [RefsPerFrame]int{1, 1, 1, 1, 1, 1, 1})
	missing.FilmGrain = &FilmGrainParams{ApplyGrain: true, FilmGrainParamsRefIdx: 0}
	_, err := d.SetupFrame(missing)
	assert.ErrorIs(t, err, ErrGrainRefIdx)

	unordered := interHeader(2, 0, [RefsPerFrame]int{})
	unordered.FilmGrain = grainParams(1)
	unordered.FilmGrain.PointYValue = []int{0, 128, 128}
	_, err = d.SetupFrame(unordered)
	assert.ErrorIs(t, err, ErrGrainPoints)
}

type recordingFilters struct {
	calls   []string
	widths  [3]int
	currPix int
	cdefPix int
}

func (r *recordingFilters) LoopFilter(f *Buffer, _ *FrameHeader) {
	r.calls = append(r.calls, "loop filter")
	f.Fill(f.Planes[0].At(0, 0) + 1)
}

func (r *recordingFilters) CDEF(f *Buffer, _ *FrameHeader) {
	r.calls = append(r.calls, "cdef")
	f.Fill(50)
}

func (r *recordingFilters) LoopRestoration(f, upscaledCdef, upscaledCurr *Buffer, _ *FrameHeader) {
	r.calls = append(r.calls, "loop restoration")
	r.widths = [3]int{f.Planes[0].Width, upscaledCdef.Planes[0].Width, upscaledCurr.Planes[0].Width}
	r.currPix = upscaledCurr.Planes[0].At(7, 7)
	r.cdefPix = upscaledCdef.Planes[0].At(7, 7)
	f.Fill(60)
}

func TestWrapupFilterChain(t *testing.T) {
	filters := &recordingFilters{}
	config := DefaultConfig()
	config.Filters = filters
	d := NewDecoder(config)

	key := keyHeader()
	decode(t, d, key, tileData(key, 100))
	assert.Equal(t, []string{"cdef", "loop restoration"}, filters.calls)
	assert.Equal(t, [3]int{testWidth, testWidth, testWidth}, filters.widths)
	assert.Equal(t, 100, filters.currPix)
	assert.Equal(t, 50, filters.cdefPix)

	slot, err := d.RefFrame(0)
	require.NoError(t, err)
	assert.Equal(t, 60, slot.Frame.Planes[0].At(0, 0))

	filters.calls = nil
	h := interHeader(1, 1, [RefsPerFrame]int{})
	h.LoopFilterLevel = [2]int{0, 4}
	decode(t, d, h, tileData(h, 100))
	assert.Equal(t, []string{"loop filter", "cdef", "loop restoration"}, filters.calls)
	assert.Equal(t, 101, filters.currPix)
}

func TestWrapupSuperres(t *testing.T) {
	filters := &recordingFilters{}
	var shown []*OutputFrame
	config := DefaultConfig()
	config.Filters = filters
	config.Output = collect(&shown)
	d := NewDecoder(config)

	key := keyHeader()
	key.UseSuperres = true
	key.UpscaledWidth = 2 * testWidth
	decode(t, d, key, tileData(key, 100))

	assert.Equal(t, [3]int{2 * testWidth, 2 * testWidth, 2 * testWidth}, filters.widths)
	assert.Equal(t, 100, filters.currPix)
	assert.Equal(t, 50, filters.cdefPix)

	slot, err := d.RefFrame(5)
	require.NoError(t, err)
	assert.Equal(t, 2*testWidth, slot.UpscaledWidth)
	assert.Equal(t, testWidth, slot.FrameWidth)
	assert.Equal(t, 2*testWidth, slot.Frame.Planes[0].Width)
	assert.Equal(t, testWidth, slot.Frame.Planes[1].Width)
	assert.Equal(t, key.MiCols(), slot.MiCols)

	require.Len(t, shown, 1)
	assert.Equal(t, 2*testWidth, shown[0].UpscaledWidth)
}

func TestOutputError(t *testing.T) {
	config := DefaultConfig()
	failed := assert.AnError
	config.Output = SinkFunc(func(*OutputFrame) error { return failed })
	d := NewDecoder(config)

	h := keyHeader()
	_, err := d.SetupFrame(h)
	require.NoError(t, err)
	assert.ErrorIs(t, d.DecodeFrameWrapup(h, tileData(h, 0)), failed)
	assert.True(t, d.RefValid(0))
}

func TestReadShowExisting(t *testing.T) {
	config := DefaultConfig()
	config.FrameIDNumbersPresent = true
	config.FrameIDLength = 4
	d := NewDecoder(config)

	var h FrameHeader
	require.NoError(t, d.ReadShowExisting(NewBitReader([]byte{0xD6}), &h))
	assert.True(t, h.ShowExistingFrame)
	assert.True(t, h.ShowFrame)
	assert.Equal(t, 5, h.FrameToShowMapIdx)
	assert.Equal(t, 6, h.DisplayFrameID)

	h = FrameHeader{}
	require.NoError(t, d.ReadShowExisting(NewBitReader([]byte{0x00}), &h))
	assert.False(t, h.ShowExistingFrame)

	err := d.ReadShowExisting(NewBitReader(nil), &h)
	assert.ErrorIs(t, err, ErrOutOfData)
}

func TestReadFrameRefs(t *testing.T) {
	tests := []struct {
		name     string
		config   func(*Config)
		data     []byte
		short    bool
		last     int
		gold     int
		refIdx   [RefsPerFrame]int
		deltaIDs [RefsPerFrame]int
	}{
		{
			name:  "short signaling",
			data:  []byte{0xBA},
			short: true,
			last:  3,
			gold:  5,
		},
		{
			name:   "explicit",
			data:   []byte{0x02, 0x9C, 0xB8},
			refIdx: [RefsPerFrame]int{0, 1, 2, 3, 4, 5, 6},
		},
		{
			name: "frame ids without order hints",
			config: func(c *Config) {
				c.EnableOrderHint = false
				c.FrameIDNumbersPresent = true
				c.DeltaFrameIDLength = 2
			},
			data:     []byte{0xEF, 0x7B, 0xDE, 0xF7, 0xA0},
			refIdx:   [RefsPerFrame]int{7, 7, 7, 7, 7, 7, 7},
			deltaIDs: [RefsPerFrame]int{2, 2, 2, 2, 2, 2, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			if tt.config != nil {
				tt.config(&config)
			}
			d := NewDecoder(config)

			var h FrameHeader
			require.NoError(t, d.ReadFrameRefs(NewBitReader(tt.data), &h))
			assert.Equal(t, tt.short, h.FrameRefsShortSignaling)
			assert.Equal(t, tt.last, h.LastFrameIdx)
			assert.Equal(t, tt.gold, h.GoldFrameIdx)
			assert.Equal(t, tt.refIdx, h.RefFrameIdx)
			assert.Equal(t, tt.deltaIDs, h.DeltaFrameIDs)
		})
	}

	d := NewDecoder(DefaultConfig())
	var h FrameHeader
	assert.ErrorIs(t, d.ReadFrameRefs(NewBitReader([]byte{0x00}), &h), ErrOutOfData)
}
