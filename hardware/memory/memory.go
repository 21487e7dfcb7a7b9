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

package memory

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Sentinel errors returned by the memory package.
var (
	ErrAddress  = errors.New("memory: address out of range")
	ErrCapacity = errors.New("memory: cartridge data too large")
)

// Dimensions of the sprite sheet and the map, in pixels and tiles.
const (
	SpriteSize    = 8
	SpritesPerRow = 16
	NumSprites    = 256
	MapWidth      = 128
	MapHeight     = 64
)

// Memory is the entire address space.
type Memory struct {
	mem [memorymap.Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

func checkRange(addr int, length int) error {
	if addr < 0 || length < 0 || addr+length > memorymap.Size {
		return fmt.Errorf("%w: %#04x (length %d)", ErrAddress, addr, length)
	}
	return nil
}

// Initialise copies the cartridge data into memory, starting at address zero.
// The data must fit in the cartridge area of memory.
func (mem *Memory) Initialise(data []byte) error {
	if len(data) > memorymap.CartridgeSize {
		return fmt.Errorf("%w: %d bytes is more than %d", ErrCapacity, len(data), memorymap.CartridgeSize)
	}
	copy(mem.mem[memorymap.OriginSpriteSheet:], data)
	return nil
}

// Read a single byte.
func (mem *Memory) Read(addr int) (uint8, error) {
	if err := checkRange(addr, 1); err != nil {
		return 0, err
	}
	return mem.mem[addr], nil
}

// Write a single byte.
func (mem *Memory) Write(addr int, val uint8) error {
	if err := checkRange(addr, 1); err != nil {
		return err
	}
	mem.mem[addr] = val
	return nil
}

// Set length bytes starting at addr to val.
func (mem *Memory) Set(addr int, val uint8, length int) error {
	if err := checkRange(addr, length); err != nil {
		return err
	}
	r := mem.mem[addr : addr+length]
	for i := range r {
		r[i] = val
	}
	return nil
}

// Copy length bytes from src to dst. The ranges may overlap, in which case the
// result is as if the source range was first copied to a temporary buffer.
func (mem *Memory) Copy(dst int, src int, length int) error {
	if err := checkRange(src, length); err != nil {
		return err
	}
	if err := checkRange(dst, length); err != nil {
		return err
	}
	copy(mem.mem[dst:dst+length], mem.mem[src:src+length])
	return nil
}

// SpriteRows returns the pixel rows of the numbered sprite. Each row is 4
// bytes long (two pixels per byte) and the rows are one sprite sheet row, 64
// bytes, apart.
func (mem *Memory) SpriteRows(n int) ([SpriteSize][]byte, error) {
	var rows [SpriteSize][]byte
	if n < 0 || n >= NumSprites {
		return rows, fmt.Errorf("memory: sprite %d out of range", n)
	}

	const rowWidth = SpriteSize / 2
	const sheetWidth = rowWidth * SpritesPerRow

	addr := sheetWidth*SpriteSize*(n/SpritesPerRow) + rowWidth*(n%SpritesPerRow)
	for i := range rows {
		a := addr + i*sheetWidth
		rows[i] = mem.mem[a : a+rowWidth : a+rowWidth]
	}

	return rows, nil
}

// MapTile returns the sprite number at map coordinates x and y. The lower 32
// rows of the map share memory with the sprite sheet.
func (mem *Memory) MapTile(x int, y int) (uint8, error) {
	if x < 0 || x >= MapWidth || y < 0 || y >= MapHeight {
		return 0, fmt.Errorf("memory: map tile (%d, %d) out of range", x, y)
	}
	offset := y*MapWidth + x
	if y < MapHeight/2 {
		return mem.mem[memorymap.OriginMap+offset], nil
	}
	return mem.mem[memorymap.OriginSharedSprite+offset-MapWidth*MapHeight/2], nil
}

// Area returns the memory for the area. The returned slice refers to the
// underlying memory and should be treated as read only.
func (mem *Memory) Area(area memorymap.Area) []byte {
	origin, memtop := memorymap.Range(area)
	if origin < 0 {
		return nil
	}
	return mem.mem[origin : memtop+1 : memtop+1]
}

// Screen returns the screen memory.
func (mem *Memory) Screen() []byte {
	return mem.Area(memorymap.Screen)
}
