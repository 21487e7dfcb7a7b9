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

// Package memorymap describes the layout of the 64k address space of the
// fantasy console. Each area of memory has an origin and a memtop constant.
// Memtop is inclusive, so the size of an area is (memtop - origin + 1).
//
// The first 0x4300 bytes of memory are initialised from the cartridge data
// block. Of note, the lower half of the map and the upper half of the sprite
// sheet share the same memory (the SharedSprite area).
//
// The Summary() function produces a table of all areas, which is useful for
// reference.
package memorymap
