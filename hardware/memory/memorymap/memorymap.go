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

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case SpriteSheet:
		return "Sprite Sheet"
	case SharedSprite:
		return "Shared Sprite/Map"
	case Map:
		return "Map"
	case Flags:
		return "Sprite Flags"
	case Music:
		return "Music"
	case SFX:
		return "SFX"
	case WorkRAM:
		return "Work RAM"
	case Font:
		return "Custom Font"
	case CartData:
		return "Cart Data"
	case DrawState:
		return "Draw State"
	case HardwareState:
		return "Hardware State"
	case GPIO:
		return "GPIO"
	case Screen:
		return "Screen"
	case Extended:
		return "Extended RAM"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	SpriteSheet
	SharedSprite
	Map
	Flags
	Music
	SFX
	WorkRAM
	Font
	CartData
	DrawState
	HardwareState
	GPIO
	Screen
	Extended
)

// The origin and memory top for each area of memory.
const (
	OriginSpriteSheet   = 0x0000
	MemtopSpriteSheet   = 0x0fff
	OriginSharedSprite  = 0x1000
	MemtopSharedSprite  = 0x1fff
	OriginMap           = 0x2000
	MemtopMap           = 0x2fff
	OriginFlags         = 0x3000
	MemtopFlags         = 0x30ff
	OriginMusic         = 0x3100
	MemtopMusic         = 0x31ff
	OriginSFX           = 0x3200
	MemtopSFX           = 0x42ff
	OriginWorkRAM       = 0x4300
	MemtopWorkRAM       = 0x55ff
	OriginFont          = 0x5600
	MemtopFont          = 0x5dff
	OriginCartData      = 0x5e00
	MemtopCartData      = 0x5eff
	OriginDrawState     = 0x5f00
	MemtopDrawState     = 0x5f3f
	OriginHardwareState = 0x5f40
	MemtopHardwareState = 0x5f7f
	OriginGPIO          = 0x5f80
	MemtopGPIO          = 0x5fff
	OriginScreen        = 0x6000
	MemtopScreen        = 0x7fff
	OriginExtended      = 0x8000
	MemtopExtended      = 0xffff
)

// Memtop is the top most address of memory.
const Memtop = MemtopExtended

// Size of the address space.
const Size = Memtop + 1

// MemtopCartridge is the top most address that is initialised from the
// cartridge data block.
const MemtopCartridge = MemtopSFX

// CartridgeSize is the number of bytes initialised from the cartridge.
const CartridgeSize = MemtopCartridge + 1

var areas = [...]struct {
	origin int
	memtop int
	area   Area
}{
	{OriginSpriteSheet, MemtopSpriteSheet, SpriteSheet},
	{OriginSharedSprite, MemtopSharedSprite, SharedSprite},
	{OriginMap, MemtopMap, Map},
	{OriginFlags, MemtopFlags, Flags},
	{OriginMusic, MemtopMusic, Music},
	{OriginSFX, MemtopSFX, SFX},
	{OriginWorkRAM, MemtopWorkRAM, WorkRAM},
	{OriginFont, MemtopFont, Font},
	{OriginCartData, MemtopCartData, CartData},
	{OriginDrawState, MemtopDrawState, DrawState},
	{OriginHardwareState, MemtopHardwareState, HardwareState},
	{OriginGPIO, MemtopGPIO, GPIO},
	{OriginScreen, MemtopScreen, Screen},
	{OriginExtended, MemtopExtended, Extended},
}

// MapAddress returns the area the address falls within. Addresses outside of
// the address space return the Undefined area.
func MapAddress(address int) Area {
	for _, a := range areas {
		if address >= a.origin && address <= a.memtop {
			return a.area
		}
	}
	return Undefined
}

// Range returns the origin and memtop of the area. The Undefined area returns
// -1 for both values.
func Range(area Area) (origin int, memtop int) {
	for _, a := range areas {
		if a.area == area {
			return a.origin, a.memtop
		}
	}
	return -1, -1
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address int, area Area) bool {
	return MapAddress(address) == area
}
