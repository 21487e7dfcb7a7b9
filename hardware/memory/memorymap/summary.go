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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory,
// in address order. Useful for reference.
func Summary() string {
	s := strings.Builder{}
	for area := Undefined + 1; area <= Extended; area++ {
		origin, memtop := Range(area)
		fmt.Fprintf(&s, "%04x -> %04x\t%s\n", origin, memtop, area)
	}
	return s.String()
}
