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

// Package pxa decodes the compressed code block of a cartridge. The format
// takes its name from the magic bytes at the start of the block:
//
//	0x00 'p' 'x' 'a'
//
// which are followed by two big-endian 16 bit values: the length of the
// decompressed code and the total length of the block (including the eight
// byte header). The remainder of the block is a bitstream, read least
// significant bit first, made up of two kinds of instruction.
//
// A literal instruction (control bit 1) names an entry in a move-to-front
// table of all 256 byte values. The entry is emitted and then moved to the
// front of the table, so recently used symbols can be named with fewer bits.
//
// A back-reference instruction (control bit 0) copies a run of previously
// decoded bytes. The run may overlap the bytes being written, which is how
// long repetitions are encoded. A back-reference with a ten bit offset of
// zero is an escape for a run of raw 8 bit values terminated by a zero
// byte.
//
// Older cartridges used a different compression scheme (with the header
// ":c:\x00"). That scheme is not supported and is reported as
// ErrUnsupportedFormat.
//
// The package only decodes. There is no compressor.
package pxa
