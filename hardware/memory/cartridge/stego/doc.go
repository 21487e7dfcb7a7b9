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

// Package stego extracts the byte stream hidden in the pixels of a cartridge
// image.
//
// Each pixel carries one byte in the two least significant bits of each of
// its four channels. The byte is packed with alpha in the most significant
// position:
//
//	a&3<<6 | r&3<<4 | g&3<<2 | b&3
//
// Pixels are visited in row-major order. The first BoundaryOffset bytes of
// the stream are the cartridge's data block (graphics, map, flags, sound) and
// the remainder is the code block, which will usually be compressed in the
// pxa format.
package stego
