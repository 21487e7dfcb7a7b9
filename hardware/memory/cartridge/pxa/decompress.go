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

import "fmt"

const (
	// the shortest run a back-reference can copy
	minCopyLength = 3

	// a length part with this value is followed by another length part
	lengthContinue = 7

	// with a unary prefix of five or more the smallest possible index is
	// (31 << 4), which is beyond the end of the table
	maxUnary = 4
)

// offset widths selected by the back-reference prefix
const (
	offsetShort  = 5
	offsetMedium = 10
	offsetLong   = 15
)

// Decompress decodes the pxa bitstream in payload. Decoding stops when
// exactly length bytes have been produced.
//
// The payload is the compressed data only, without the block header. Use
// DecodeBlock() to decode a complete block.
func Decompress(payload []byte, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("pxa: invalid decompressed length (%d)", length)
	}

	br := NewBitReader(payload)
	mtf := NewMoveToFront()
	out := make([]byte, 0, length)

	for len(out) < length {
		ctrl, err := br.ReadBit()
		if err != nil {
			return nil, err
		}

		if ctrl == 1 {
			b, err := literal(br, mtf)
			if err != nil {
				return nil, err
			}
			out = append(out, b)
		} else {
			out, err = backReference(br, out, length)
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// literal decodes the index of a move-to-front entry and returns the byte
// value found there.
func literal(br *BitReader, mtf *MoveToFront) (uint8, error) {
	unary := 0
	for {
		b, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		if b == 0 {
			break
		}
		unary++
		if unary > maxUnary {
			return 0, fmt.Errorf("%w (unary prefix of %d at bit %d)", ErrIndexOutOfRange, unary, br.Cursor())
		}
	}

	v, err := br.ReadBits(4 + unary)
	if err != nil {
		return 0, err
	}

	idx := int(v) + (((1 << unary) - 1) << 4)
	return mtf.Symbol(idx)
}

// backReference decodes either a copy of earlier output or an escaped run of
// raw bytes and appends the result to out. Nothing is appended beyond the
// limit.
func backReference(br *BitReader, out []byte, limit int) ([]byte, error) {
	width := offsetLong

	b, err := br.ReadBit()
	if err != nil {
		return out, err
	}
	if b == 1 {
		b, err = br.ReadBit()
		if err != nil {
			return out, err
		}
		if b == 1 {
			width = offsetShort
		} else {
			width = offsetMedium
		}
	}

	o, err := br.ReadBits(width)
	if err != nil {
		return out, err
	}

	// raw bytes until a zero terminator. there is no way of encoding a zero
	// value in a raw run
	if width == offsetMedium && o == 0 {
		for {
			v, err := br.ReadBits(8)
			if err != nil {
				return out, err
			}
			if v == 0 {
				return out, nil
			}
			if len(out) < limit {
				out = append(out, uint8(v))
			}
		}
	}

	n := minCopyLength
	for {
		part, err := br.ReadBits(3)
		if err != nil {
			return out, err
		}
		n += int(part)
		if part != lengthContinue {
			break
		}
	}

	offset := int(o) + 1
	if offset > len(out) {
		return out, fmt.Errorf("%w: offset %d with %d bytes of output", ErrInvalidOffset, offset, len(out))
	}

	// copying one byte at a time means the source can overlap the bytes being
	// written
	for i := 0; i < n && len(out) < limit; i++ {
		out = append(out, out[len(out)-offset])
	}

	return out, nil
}
