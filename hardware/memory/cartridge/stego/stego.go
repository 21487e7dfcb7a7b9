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

package stego

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/pxa"
)

// Dimensions of a cartridge image.
const (
	Width  = 160
	Height = 205
)

// MaxPixels is the maximum number of pixels that are visited.
const MaxPixels = 0x7fff

// BoundaryOffset is the offset in the stream at which the code block begins.
const BoundaryOffset = 0x4300

// pack the low two bits of each channel into a single byte
func pack(r, g, b, a uint8) uint8 {
	return (a&0x03)<<6 | (r&0x03)<<4 | (g&0x03)<<2 | b&0x03
}

// Extract the byte stream from the image. The length of the stream is the
// number of pixels in the image, up to MaxPixels.
func Extract(img image.Image) []byte {
	bounds := img.Bounds()
	n := min(bounds.Dx()*bounds.Dy(), MaxPixels)
	stream := make([]byte, 0, n)

	// the low bits must be taken from non-premultiplied values. images
	// decoded from a PNG with an alpha channel will usually be NRGBA and we
	// can read the pixels directly
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y && len(stream) < n; y++ {
			i := nrgba.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X && len(stream) < n; x++ {
				p := nrgba.Pix[i : i+4 : i+4]
				stream = append(stream, pack(p[0], p[1], p[2], p[3]))
				i += 4
			}
		}
		return stream
	}

	for y := bounds.Min.Y; y < bounds.Max.Y && len(stream) < n; y++ {
		for x := bounds.Min.X; x < bounds.Max.X && len(stream) < n; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			stream = append(stream, pack(c.R, c.G, c.B, c.A))
		}
	}

	return stream
}

// Decode a PNG image from the io.Reader and extract the byte stream from it.
// The decoded image is returned alongside the stream.
func Decode(r io.Reader) (image.Image, []byte, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, nil, fmt.Errorf("stego: %w", err)
	}
	return img, Extract(img), nil
}

// Split the stream at BoundaryOffset into the data block and the code block.
// A stream that is too short to contain a code block is not a cartridge.
func Split(stream []byte) (data []byte, code []byte, err error) {
	if len(stream) <= BoundaryOffset {
		return nil, nil, fmt.Errorf("%w: image holds %d bytes, expected more than %d",
			pxa.ErrUnsupportedFormat, len(stream), BoundaryOffset)
	}
	return stream[:BoundaryOffset:BoundaryOffset], stream[BoundaryOffset:], nil
}

// Embed writes the stream into the low bits of the image's pixels, leaving
// the upper six bits of each channel untouched. Pixels beyond the end of the
// stream are not changed. It is an error for the stream to be longer than the
// image can hold.
func Embed(img *image.NRGBA, stream []byte) error {
	bounds := img.Bounds()
	capacity := min(bounds.Dx()*bounds.Dy(), MaxPixels)
	if len(stream) > capacity {
		return fmt.Errorf("stego: stream of %d bytes does not fit in image of %d pixels", len(stream), capacity)
	}

	for n, v := range stream {
		x := bounds.Min.X + n%bounds.Dx()
		y := bounds.Min.Y + n/bounds.Dx()
		i := img.PixOffset(x, y)
		p := img.Pix[i : i+4 : i+4]
		p[0] = p[0]&0xfc | (v>>4)&0x03
		p[1] = p[1]&0xfc | (v>>2)&0x03
		p[2] = p[2]&0xfc | v&0x03
		p[3] = p[3]&0xfc | (v>>6)&0x03
	}

	return nil
}
