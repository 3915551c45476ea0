// Package bits reads MSB-first fixed-width fields from a byte slice.
package bits

import "github.com/pkg/errors"

var ErrOutOfData = errors.New("bits: read past end of data")

type Reader struct {
	data     []byte
	bitIndex int
}

func NewReader(data []byte) *Reader {
	return &Reader{
		data:     data,
		bitIndex: 0,
	}
}

func (r *Reader) HasRemainingData() bool {
	return r.bitIndex < len(r.data)*8
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() int {
	return r.bitIndex
}

func (r *Reader) readBit() int {
	bit := int((r.data[r.bitIndex>>3] >> (8 - r.bitIndex%8 - 1)) & 1)
	r.bitIndex++
	return bit
}

// F reads an n-bit unsigned value, most significant bit first.
func (r *Reader) F(n int) (int, error) {
	if n < 0 || r.bitIndex+n > len(r.data)*8 {
		return 0, errors.Wrapf(ErrOutOfData, "f(%d) at bit %d", n, r.bitIndex)
	}

	x := 0
	for i := 0; i < n; i++ {
		x = 2*x + r.readBit()
	}

	return x, nil
}
