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

package pxa

import "errors"

// Sentinel errors returned by the package. Errors are wrapped with
// additional detail so they should be tested with errors.Is().
var (
	// the block does not start with the pxa magic bytes. this includes
	// cartridges in the legacy compression format
	ErrUnsupportedFormat = errors.New("pxa: unsupported format")

	// the bitstream (or the block header) ended before the declared
	// decompressed length was reached
	ErrTruncatedStream = errors.New("pxa: truncated stream")

	// a back-reference points to before the start of the output
	ErrInvalidOffset = errors.New("pxa: invalid offset")

	// a literal instruction names a move-to-front entry beyond the end of
	// the table
	ErrIndexOutOfRange = errors.New("pxa: move-to-front index out of range")
)
