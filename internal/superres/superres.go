// Package superres implements the normative horizontal super-resolution
// upscaler.
package superres

import (
	"fmt"

	"github.com/m4tthewde/av1ref/internal/frame"
	"github.com/m4tthewde/av1ref/internal/util"
)

const (
	SuperresNum          = 8
	SuperresDenomMin     = 9
	SuperresDenomBits    = 3
	SuperresFilterBits   = 6
	SuperresFilterTaps   = 8
	SuperresFilterOffset = 3
	SuperresExtraBits    = 8
	SuperresScaleBits    = 14
	SuperresScaleMask    = 1<<SuperresScaleBits - 1

	filterBits = 7
)

// Params describes one superres invocation. FrameWidth is the coded
// (downscaled) luma width.
type Params struct {
	Enabled       bool
	FrameWidth    int
	FrameHeight   int
	UpscaledWidth int
}

// DownscaledWidth returns the coded width for an upscaled width and a
// superres denominator in [SuperresDenomMin, SuperresDenomMin+7].
func DownscaledWidth(upscaledWidth, denom int) int {
	return (upscaledWidth*SuperresNum + denom/2) / denom
}

// Upscale returns src widened to p.UpscaledWidth. When superres is off src
// itself is returned. The upscaled width must exceed the coded width.
func Upscale(src *frame.Buffer, p Params) *frame.Buffer {
	if !p.Enabled {
		return src
	}
	if p.UpscaledWidth <= p.FrameWidth {
		panic(fmt.Sprintf("superres: upscaled width %d does not exceed coded width %d", p.UpscaledWidth, p.FrameWidth))
	}

	out := &frame.Buffer{
		BitDepth:     src.BitDepth,
		SubsamplingX: src.SubsamplingX,
		SubsamplingY: src.SubsamplingY,
		Planes:       make([]frame.Plane, len(src.Planes)),
	}
	maxSample := src.MaxSample()

	for plane := range src.Planes {
		subX, subY := 0, 0
		if plane > 0 {
			subX, subY = src.SubsamplingX, src.SubsamplingY
		}
		downscaledPlaneW := util.Round2(p.FrameWidth, uint(subX))
		upscaledPlaneW := util.Round2(p.UpscaledWidth, uint(subX))
		planeH := util.Round2(p.FrameHeight, uint(subY))

		stepX := ((downscaledPlaneW << SuperresScaleBits) + upscaledPlaneW/2) / upscaledPlaneW
		err := upscaledPlaneW*stepX - (downscaledPlaneW << SuperresScaleBits)
		initialSubpelX := (-((upscaledPlaneW-downscaledPlaneW)<<(SuperresScaleBits-1))+upscaledPlaneW/2)/upscaledPlaneW +
			(1 << (SuperresExtraBits - 1)) - err/2
		initialSubpelX &= SuperresScaleMask
		maxX := downscaledPlaneW - 1

		in := &src.Planes[plane]
		dst := frame.NewPlane(upscaledPlaneW, planeH)
		for y := 0; y < planeH; y++ {
			for x := 0; x < upscaledPlaneW; x++ {
				srcX := -(1 << SuperresScaleBits) + initialSubpelX + x*stepX
				srcP := (srcX & SuperresScaleMask) >> SuperresExtraBits
				sum := 0
				for k := 0; k < SuperresFilterTaps; k++ {
					sampleX := util.Clip3(0, maxX, (srcX>>SuperresScaleBits)+(k-SuperresFilterOffset))
					sum += in.At(sampleX, y) * upscaleFilter[srcP][k]
				}
				dst.Set(x, y, util.Clip3(0, maxSample, util.Round2(sum, filterBits)))
			}
		}
		out.Planes[plane] = dst
	}
	return out
}
