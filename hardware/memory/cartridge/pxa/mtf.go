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

import "fmt"

// TableSize is the number of entries in the move-to-front table. Every
// possible byte value appears exactly once.
const TableSize = 256

// MoveToFront is the adaptive symbol table used by literal instructions.
type MoveToFront struct {
	table [TableSize]uint8
}

// NewMoveToFront returns a table initialised to the identity permutation.
func NewMoveToFront() *MoveToFront {
	mtf := &MoveToFront{}
	for i := range mtf.table {
		mtf.table[i] = uint8(i)
	}
	return mtf
}

// Symbol returns the byte value at index and moves it to the front of the
// table. Entries previously in front of index shift back by one position.
func (mtf *MoveToFront) Symbol(index int) (uint8, error) {
	if index < 0 || index >= TableSize {
		return 0, fmt.Errorf("%w (%d)", ErrIndexOutOfRange, index)
	}

	b := mtf.table[index]
	copy(mtf.table[1:index+1], mtf.table[:index])
	mtf.table[0] = b

	return b, nil
}

// Table returns a copy of the current state of the table.
func (mtf *MoveToFront) Table() [TableSize]uint8 {
	return mtf.table
}
