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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/test"
)

const validMemMap = `0000 -> 0fff	Sprite Sheet
1000 -> 1fff	Shared Sprite/Map
2000 -> 2fff	Map
3000 -> 30ff	Sprite Flags
3100 -> 31ff	Music
3200 -> 42ff	SFX
4300 -> 55ff	Work RAM
5600 -> 5dff	Custom Font
5e00 -> 5eff	Cart Data
5f00 -> 5f3f	Draw State
5f40 -> 5f7f	Hardware State
5f80 -> 5fff	GPIO
6000 -> 7fff	Screen
8000 -> ffff	Extended RAM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

// every address belongs to exactly one area and the areas are contiguous
func TestContiguous(t *testing.T) {
	next := 0
	for area := memorymap.SpriteSheet; area <= memorymap.Extended; area++ {
		origin, memtop := memorymap.Range(area)
		test.ExpectEquality(t, origin, next, area)
		test.ExpectEquality(t, memorymap.MapAddress(origin), area)
		test.ExpectEquality(t, memorymap.MapAddress(memtop), area)
		next = memtop + 1
	}
	test.ExpectEquality(t, next, memorymap.Size)
}

func TestMapAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.MapAddress(-1), memorymap.Undefined)
	test.ExpectEquality(t, memorymap.MapAddress(0x0000), memorymap.SpriteSheet)
	test.ExpectEquality(t, memorymap.MapAddress(0x42ff), memorymap.SFX)
	test.ExpectEquality(t, memorymap.MapAddress(0x4300), memorymap.WorkRAM)
	test.ExpectEquality(t, memorymap.MapAddress(0xffff), memorymap.Extended)
	test.ExpectEquality(t, memorymap.MapAddress(0x10000), memorymap.Undefined)
	test.ExpectSuccess(t, memorymap.IsArea(0x6000, memorymap.Screen))
	test.ExpectEquality(t, memorymap.CartridgeSize, 0x4300)
}

func TestRange(t *testing.T) {
	o, m := memorymap.Range(memorymap.Flags)
	test.ExpectEquality(t, o, 0x3000)
	test.ExpectEquality(t, m, 0x30ff)

	o, m = memorymap.Range(memorymap.Undefined)
	test.ExpectEquality(t, o, -1)
	test.ExpectEquality(t, m, -1)
}
