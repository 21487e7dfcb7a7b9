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
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/pxa"
	"github.com/jetsetilly/gopher8/test"
)

func TestBitOrder(t *testing.T) {
	// 0xb2 is 10110010. least significant bit first
	br := pxa.NewBitReader([]byte{0xb2})
	expected := []uint8{0, 1, 0, 0, 1, 1, 0, 1}
	for i, e := range expected {
		test.ExpectEquality(t, br.Cursor(), i)
		b, err := br.ReadBit()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, b, e, "bit", i)
	}

	test.ExpectEquality(t, br.Remaining(), 0)
	_, err := br.ReadBit()
	test.ExpectSuccess(t, errors.Is(err, pxa.ErrTruncatedStream))

	// the end of the stream is sticky and the cursor does not move
	_, err = br.ReadBit()
	test.ExpectSuccess(t, errors.Is(err, pxa.ErrTruncatedStream))
	test.ExpectEquality(t, br.Cursor(), 8)

	// an empty payload has no bits at all
	_, err = pxa.NewBitReader(nil).ReadBit()
	test.ExpectSuccess(t, errors.Is(err, pxa.ErrTruncatedStream))
}

func TestReadBits(t *testing.T) {
	br := pxa.NewBitReader([]byte{0xb2})
	v, err := br.ReadBits(4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x2))
	v, err = br.ReadBits(4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xb))

	br = pxa.NewBitReader([]byte{0xb2})
	v, err = br.ReadBits(8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xb2))

	// zero bits is a valid read and does not move the cursor
	v, err = br.ReadBits(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
	test.ExpectEquality(t, br.Cursor(), 8)
}

func TestReadBitsAcrossBytes(t *testing.T) {
	br := pxa.NewBitReader([]byte{0xf0, 0x0f, 0x78, 0x56, 0x34, 0x12})
	v, err := br.ReadBits(4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x0))

	v, err = br.ReadBits(8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xff))

	v, err = br.ReadBits(4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x0))

	v, err = br.ReadBits(32)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x12345678))
}

func TestReadBitsTruncated(t *testing.T) {
	br := pxa.NewBitReader([]byte{0xff})
	_, err := br.ReadBits(9)
	test.ExpectSuccess(t, errors.Is(err, pxa.ErrTruncatedStream))

	br = pxa.NewBitReader(nil)
	_, err = br.ReadBit()
	test.ExpectSuccess(t, errors.Is(err, pxa.ErrTruncatedStream))
}

func TestReadBitsRange(t *testing.T) {
	br := pxa.NewBitReader([]byte{0, 0, 0, 0, 0})
	_, err := br.ReadBits(33)
	test.ExpectFailure(t, err)
	_, err = br.ReadBits(-1)
	test.ExpectFailure(t, err)

	// failed calls do not consume anything
	test.ExpectEquality(t, br.Cursor(), 0)
}
