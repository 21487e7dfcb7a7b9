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

// Package memory implements the 64k address space of the fantasy console. The
// layout of the address space is described by the memorymap package.
//
// Memory is initialised from the data block of a cartridge with the
// Initialise() function. The remaining operations are the ones that a script
// engine binds to: reading and writing single bytes, filling a range with a
// value and copying a range. All operations are bounds checked and return
// ErrAddress for any access outside of the address space.
//
// Memory is not safe for concurrent use.
package memory
