// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package pxa

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/icza/bitio"
)

// MaxReadBits is the largest number of bits that can be read by a single
// call to BitReader.ReadBits().
const MaxReadBits = 32

// BitReader is a sequential bit cursor over a byte buffer. Bits are
// consumed least significant bit first: bit n of the stream is bit (n % 8)
// of byte (n / 8).
type BitReader struct {
	r *bitio.Reader

	// absolute bit offset of the next bit to be read. the cursor never
	// rewinds
	cursor int

	// number of bits in the buffer
	size int
}

// NewBitReader is the preferred method of initialisation for the BitReader
// type. The payload is not retained.
func NewBitReader(payload []byte) *BitReader {
	// bitio reads the most significant bit of each byte first. reversing
	// the bit order of every byte means the stream comes out in the order
	// the format expects
	rev := make([]byte, len(payload))
	for i, b := range payload {
		rev[i] = bits.Reverse8(b)
	}

	return &BitReader{
		r:    bitio.NewReader(bytes.NewReader(rev)),
		size: len(payload) * 8,
	}
}

// Cursor returns the offset, in bits, of the next bit to be read.
func (br *BitReader) Cursor() int {
	return br.cursor
}

// Remaining returns the number of bits that have not yet been read.
func (br *BitReader) Remaining() int {
	return br.size - br.cursor
}

// ReadBit returns the next bit in the stream. The returned value is either 0
// or 1. Returns ErrTruncatedStream if there are no more bits.
func (br *BitReader) ReadBit() (uint8, error) {
	b, err := br.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: reading bit %d of %d", ErrTruncatedStream, br.cursor, br.size)
		}
		return 0, fmt.Errorf("pxa: reading bit %d: %w", br.cursor, err)
	}
	br.cursor++

	if b {
		return 1, nil
	}
	return 0, nil
}

// ReadBits reads n bits and returns them as an integer. The first bit read
// is the least significant bit of the result.
func (br *BitReader) ReadBits(n int) (uint32, error) {
	if n < 0 || n > MaxReadBits {
		return 0, fmt.Errorf("pxa: cannot read %d bits in one operation", n)
	}

	var v uint32
	for i := 0; i < n; i++ {
		b, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		v |= uint32(b) << i
	}

	return v, nil
}
