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

// Package cartridge decodes cartridge images. A cartridge image is a PNG file
// with the cartridge stored in the low bits of each pixel (see the stego
// package). The stream is made up of a data block, which initialises the first
// part of memory, and a code block, which is the program source compressed
// in the pxa format (see the pxa package).
//
// A cartridge is created with NewCartridge() from a cartridgeloader.Loader,
// or from an image that has already been decoded with FromImage(). Either
// the whole cartridge is decoded successfully or an error is returned. A
// Cartridge is never partially decoded.
//
// Plain text cartridges and cartridges with code compressed in the legacy
// format are not supported. Attempting to load one will result in an error
// that wraps pxa.ErrUnsupportedFormat.
//
// Once created a Cartridge does not change and it is safe to share between
// goroutines.
package cartridge
