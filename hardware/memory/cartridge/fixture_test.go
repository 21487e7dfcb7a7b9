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

package cartridge_test

import (
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/pxa"
	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/stego"
	"github.com/jetsetilly/gopher8/test"
)

// storedBlock returns a pxa block holding the code as a single run of raw
// bytes. the code must not contain a zero byte
func storedBlock(code string) []byte {
	var payload []byte
	n := 0
	bit := func(b int) {
		if n%8 == 0 {
			payload = append(payload, 0)
		}
		payload[n/8] |= byte(b&1) << (n % 8)
		n++
	}
	bits := func(v int, w int) {
		for i := 0; i < w; i++ {
			bit(v >> i)
		}
	}

	// escape sequence for a raw run: control bit, offset width of ten bits
	// and an offset value of zero
	bits(0b010, 3)
	bits(0, 10)
	for i := 0; i < len(code); i++ {
		bits(int(code[i]), 8)
	}
	bits(0, 8)

	block := make([]byte, pxa.HeaderLen)
	copy(block, pxa.Magic)
	binary.BigEndian.PutUint16(block[4:], uint16(len(code)))
	binary.BigEndian.PutUint16(block[6:], uint16(pxa.HeaderLen+len(payload)))
	return append(block, payload...)
}

// cartImage returns a cartridge image with the data and code block embedded
func cartImage(t *testing.T, data []byte, block []byte) *image.NRGBA {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, stego.Width, stego.Height))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}

	stream := make([]byte, stego.BoundaryOffset, stego.BoundaryOffset+len(block))
	copy(stream, data)
	stream = append(stream, block...)
	test.DemandSuccess(t, stego.Embed(img, stream))

	return img
}

func writePNG(t *testing.T, fn string, img image.Image) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.DemandSuccess(t, png.Encode(f, img))
}

func testData() []byte {
	data := make([]byte, stego.BoundaryOffset)
	for i := range data {
		data[i] = uint8(i >> 8)
	}
	return data
}

func writeCart(t *testing.T, name string, code string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	writePNG(t, fn, cartImage(t, testData(), storedBlock(code)))
	return fn
}
