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

// Package label extracts the label from a cartridge image. The label is a
// 128x128 screenshot of the cartridge that is drawn on the image, over the
// top of the encoded cartridge data.
package label

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/gift"
)

// The position and size of the label in a cartridge image.
var Bounds = image.Rect(16, 24, 16+Size, 24+Size)

// Size is the width and height of the label in pixels.
const Size = 128

// MaxScale is the largest scaling factor accepted by Extract().
const MaxScale = 16

// Extract the label from the cartridge image. The label is scaled by the
// integer scaling factor using nearest neighbour resampling so that the
// pixels of the label remain sharp.
func Extract(img image.Image, scale int) (*image.NRGBA, error) {
	if scale < 1 || scale > MaxScale {
		return nil, fmt.Errorf("label: scale must be between 1 and %d", MaxScale)
	}

	// the label position is relative to the image origin
	r := Bounds.Add(img.Bounds().Min)
	if !r.In(img.Bounds()) {
		return nil, fmt.Errorf("label: image (%v) is too small to contain a label", img.Bounds())
	}

	g := gift.New(
		gift.Crop(r),
		gift.Resize(Size*scale, Size*scale, gift.NearestNeighborResampling),
	)

	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	return dst, nil
}

// WritePNG encodes the image to the io.Writer as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	err := png.Encode(w, img)
	if err != nil {
		return fmt.Errorf("label: %w", err)
	}
	return nil
}
