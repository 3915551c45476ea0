package frame

import "github.com/m4tthewde/av1ref/internal/util"

// Plane is one color component. Samples are stored row-major with a stride
// equal to Width.
type Plane struct {
	Width  int
	Height int
	Pix    []uint16
}

func NewPlane(width, height int) Plane {
	return Plane{
		Width:  width,
		Height: height,
		Pix:    make([]uint16, width*height),
	}
}

func (p *Plane) At(x, y int) int {
	return int(p.Pix[y*p.Width+x])
}

func (p *Plane) Set(x, y, v int) {
	p.Pix[y*p.Width+x] = uint16(v)
}

// Buffer is a reconstructed picture: one luma plane and, unless monochrome,
// two chroma planes subsampled by SubsamplingX/SubsamplingY.
type Buffer struct {
	BitDepth     int
	SubsamplingX int
	SubsamplingY int
	Planes       []Plane
}

// NewBuffer allocates a zeroed picture of the given luma size.
func NewBuffer(width, height, bitDepth, subX, subY, numPlanes int) *Buffer {
	b := &Buffer{
		BitDepth:     bitDepth,
		SubsamplingX: subX,
		SubsamplingY: subY,
		Planes:       make([]Plane, numPlanes),
	}
	for i := range b.Planes {
		w, h := width, height
		if i > 0 {
			w = (width + subX) >> subX
			h = (height + subY) >> subY
		}
		b.Planes[i] = NewPlane(w, h)
	}
	return b
}

func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	out := &Buffer{
		BitDepth:     b.BitDepth,
		SubsamplingX: b.SubsamplingX,
		SubsamplingY: b.SubsamplingY,
	}
	if b.Planes != nil {
		out.Planes = make([]Plane, len(b.Planes))
	}
	for i, p := range b.Planes {
		out.Planes[i] = Plane{
			Width:  p.Width,
			Height: p.Height,
			Pix:    util.CloneSlice(p.Pix),
		}
	}
	return out
}

// Fill sets every sample of every plane to v.
func (b *Buffer) Fill(v int) {
	for i := range b.Planes {
		for j := range b.Planes[i].Pix {
			b.Planes[i].Pix[j] = uint16(v)
		}
	}
}

// MaxSample is the largest value representable at the buffer's bit depth.
func (b *Buffer) MaxSample() int {
	return 1<<b.BitDepth - 1
}
