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

package cartridge

import (
	"bytes"
	"fmt"
	"image"

	"github.com/jetsetilly/gopher8/archivefs"
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/pxa"
	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/stego"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/logger"
)

// Cartridge is a decoded cartridge image.
type Cartridge struct {
	Filename string
	Hash     string

	img    image.Image
	header pxa.Header

	data []byte
	code []byte
}

// NewCartridge loads the cartridge specified by the loader and decodes it. The
// loader is loaded if it has not been already.
func NewCartridge(cl *cartridgeloader.Loader) (*Cartridge, error) {
	// loading an archive selects the cartridge inside it. the extension of
	// the selected file can then be checked
	if archivefs.IsArchive(cl.Filename) {
		err := cl.Load()
		if err != nil {
			return nil, fmt.Errorf("cartridge: %w", err)
		}
	}

	if cl.IsText() {
		return nil, fmt.Errorf("%w: plain text cartridge (%s)", pxa.ErrUnsupportedFormat, cl.ShortName())
	}
	if !cl.IsImage() {
		return nil, fmt.Errorf("%w: unrecognised file extension (%s)", pxa.ErrUnsupportedFormat, cl.Filename)
	}

	err := cl.Load()
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	img, stream, err := stego.Decode(bytes.NewReader(cl.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cartridgeloader.ErrIO, err)
	}

	cart, err := fromStream(img, stream)
	if err != nil {
		return nil, err
	}

	cart.Filename = cl.Filename
	cart.Hash = cl.Hash

	logger.Logf(logger.Allow, "cartridge", "%s: %s", cl.ShortName(), cart.header)

	return cart, nil
}

// FromImage decodes the cartridge in an image that has already been decoded.
// The Filename and Hash fields of the returned Cartridge will be empty.
func FromImage(img image.Image) (*Cartridge, error) {
	return fromStream(img, stego.Extract(img))
}

func fromStream(img image.Image, stream []byte) (*Cartridge, error) {
	data, block, err := stego.Split(stream)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	code, header, err := pxa.DecodeBlock(block)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	return &Cartridge{
		img:    img,
		header: header,
		data:   data,
		code:   code,
	}, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s (%s)", cart.Filename, cart.header)
}

// Data returns the data block. It is always 0x4300 bytes long. The returned
// slice should be treated as read only.
func (cart *Cartridge) Data() []byte {
	return cart.data
}

// Code returns the decompressed program source. The returned slice should be
// treated as read only.
func (cart *Cartridge) Code() []byte {
	return cart.code
}

// Header returns the header of the compressed code block.
func (cart *Cartridge) Header() pxa.Header {
	return cart.header
}

// Image returns the image the cartridge was decoded from.
func (cart *Cartridge) Image() image.Image {
	return cart.img
}

// the part of the data block for the memory area. the data block is a copy
// of the start of memory so memorymap addresses are offsets into the data
func (cart *Cartridge) region(origin int, memtop int) []byte {
	return cart.data[origin : memtop+1 : memtop+1]
}

// Gfx returns the sprite sheet, including the half that is shared with the
// map.
func (cart *Cartridge) Gfx() []byte {
	return cart.region(memorymap.OriginSpriteSheet, memorymap.MemtopSharedSprite)
}

// MapLower returns the first 32 rows of the map. The remaining rows are in the
// second half of the sprite sheet.
func (cart *Cartridge) MapLower() []byte {
	return cart.region(memorymap.OriginMap, memorymap.MemtopMap)
}

// Flags returns the sprite flags.
func (cart *Cartridge) Flags() []byte {
	return cart.region(memorymap.OriginFlags, memorymap.MemtopFlags)
}

// Music returns the music patterns.
func (cart *Cartridge) Music() []byte {
	return cart.region(memorymap.OriginMusic, memorymap.MemtopMusic)
}

// SFX returns the sound effects.
func (cart *Cartridge) SFX() []byte {
	return cart.region(memorymap.OriginSFX, memorymap.MemtopSFX)
}
