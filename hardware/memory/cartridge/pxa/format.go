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
	"encoding/binary"
	"fmt"
)

// HeaderLen is the number of bytes in the block header: the magic bytes
// followed by two 16 bit length fields.
const HeaderLen = 8

// Magic identifies a pxa compressed block.
var Magic = []byte{0x00, 'p', 'x', 'a'}

// the header of the older compression format
var legacyMagic = []byte{':', 'c', ':', 0x00}

// Header is the parsed header of a compressed block.
type Header struct {
	// length of the code once decompressed
	DecompressedLen int

	// length of the block, including the header
	CompressedLen int
}

func (h Header) String() string {
	return fmt.Sprintf("pxa %d bytes (%d compressed)", h.DecompressedLen, h.CompressedLen)
}

// Payload returns the compressed bitstream described by the header. The block
// should be the same one passed to ParseHeader().
func (h Header) Payload(block []byte) []byte {
	return block[HeaderLen:h.CompressedLen]
}

// IsCompressed returns true if the block starts with the pxa magic bytes.
func IsCompressed(block []byte) bool {
	return bytes.HasPrefix(block, Magic)
}

// ParseHeader checks the magic bytes at the start of the block and returns
// the declared lengths.
func ParseHeader(block []byte) (Header, error) {
	if len(block) < len(Magic) {
		return Header{}, fmt.Errorf("%w: block of %d bytes has no header", ErrTruncatedStream, len(block))
	}

	if !IsCompressed(block) {
		if bytes.HasPrefix(block, legacyMagic) {
			return Header{}, fmt.Errorf("%w: legacy compression format", ErrUnsupportedFormat)
		}
		return Header{}, fmt.Errorf("%w: magic bytes are %q", ErrUnsupportedFormat, block[:len(Magic)])
	}

	if len(block) < HeaderLen {
		return Header{}, fmt.Errorf("%w: block of %d bytes has no header", ErrTruncatedStream, len(block))
	}

	h := Header{
		DecompressedLen: int(binary.BigEndian.Uint16(block[4:])),
		CompressedLen:   int(binary.BigEndian.Uint16(block[6:])),
	}

	if h.CompressedLen < HeaderLen {
		return Header{}, fmt.Errorf("%w: compressed length (%d) is shorter than the header", ErrTruncatedStream, h.CompressedLen)
	}

	if h.CompressedLen > len(block) {
		return Header{}, fmt.Errorf("%w: compressed length (%d) is longer than the block (%d)", ErrTruncatedStream, h.CompressedLen, len(block))
	}

	return h, nil
}

// DecodeBlock parses the header of a compressed block and decompresses the
// payload. The returned data is exactly Header.DecompressedLen bytes long.
func DecodeBlock(block []byte) ([]byte, Header, error) {
	h, err := ParseHeader(block)
	if err != nil {
		return nil, Header{}, err
	}

	code, err := Decompress(h.Payload(block), h.DecompressedLen)
	if err != nil {
		return nil, Header{}, err
	}

	return code, h, nil
}
