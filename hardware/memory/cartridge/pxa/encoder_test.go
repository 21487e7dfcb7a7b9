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

package pxa_test

import (
	"bytes"
	"encoding/binary"

	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/pxa"
)

// bitWriter builds pxa bitstreams for the tests. it knows just enough about
// the format to emit each kind of instruction
type bitWriter struct {
	data []byte
	n    int

	// mirror of the decoder's move-to-front table
	table []byte
}

func newBitWriter() *bitWriter {
	w := &bitWriter{table: make([]byte, pxa.TableSize)}
	for i := range w.table {
		w.table[i] = byte(i)
	}
	return w
}

func (w *bitWriter) bit(b int) {
	if w.n%8 == 0 {
		w.data = append(w.data, 0)
	}
	if b != 0 {
		w.data[w.n/8] |= 1 << (w.n % 8)
	}
	w.n++
}

func (w *bitWriter) bits(v uint32, n int) {
	for i := 0; i < n; i++ {
		w.bit(int(v>>i) & 1)
	}
}

// index emits a literal instruction for a raw table index. the mirror table
// is not updated
func (w *bitWriter) index(idx int) {
	w.bit(1)

	unary := 0
	base := 0
	for idx >= base+(1<<(4+unary)) {
		unary++
		base = ((1 << unary) - 1) << 4
	}

	for i := 0; i < unary; i++ {
		w.bit(1)
	}
	w.bit(0)
	w.bits(uint32(idx-base), 4+unary)
}

// literal emits the instruction for byte value b and moves it to the front
// of the mirror table
func (w *bitWriter) literal(b byte) {
	idx := bytes.IndexByte(w.table, b)
	w.index(idx)
	copy(w.table[1:idx+1], w.table[:idx])
	w.table[0] = b
}

func (w *bitWriter) literals(s string) {
	for i := 0; i < len(s); i++ {
		w.literal(s[i])
	}
}

// backref emits a copy instruction. the offset is 1-based
func (w *bitWriter) backref(offset int, length int) {
	w.bit(0)

	o := uint32(offset - 1)
	switch {
	case o < 1<<5:
		w.bit(1)
		w.bit(1)
		w.bits(o, 5)
	case o < 1<<10:
		w.bit(1)
		w.bit(0)
		w.bits(o, 10)
	default:
		w.bit(0)
		w.bits(o, 15)
	}

	rem := length - 3
	for rem >= 7 {
		w.bits(7, 3)
		rem -= 7
	}
	w.bits(uint32(rem), 3)
}

// raw emits an escaped run of bytes. the bytes must not contain zero
func (w *bitWriter) raw(s string) {
	w.bit(0)
	w.bit(1)
	w.bit(0)
	w.bits(0, 10)
	for i := 0; i < len(s); i++ {
		w.bits(uint32(s[i]), 8)
	}
	w.bits(0, 8)
}

// block wraps the bitstream in a pxa header
func (w *bitWriter) block(decompressedLen int) []byte {
	b := make([]byte, pxa.HeaderLen, pxa.HeaderLen+len(w.data))
	copy(b, pxa.Magic)
	binary.BigEndian.PutUint16(b[4:], uint16(decompressedLen))
	binary.BigEndian.PutUint16(b[6:], uint16(pxa.HeaderLen+len(w.data)))
	return append(b, w.data...)
}
