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

package test

import "strings"

// CompareWriter is an implementation of the io.Writer interface. It should be
// used to capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear string empties the write buffer.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
}

// Compare buffered output with predefined/example string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

// Contains returns true if the buffered output contains the string.
func (cw *CompareWriter) Contains(s string) bool {
	return strings.Contains(string(cw.buffer), s)
}

// String implements the fmt.Stringer interface.
func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}
