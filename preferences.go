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

package main

import (
	"github.com/jetsetilly/gopher8/label"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

const prefsFile = "preferences"

// preferences that change the default value of mode flags.
type preferences struct {
	dsk *prefs.Disk

	// compress extracted files with zstd
	zstd prefs.Bool

	// scaling factor of extracted labels
	scale prefs.Int
}

func newPreferences() (*preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	p := &preferences{}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.scale.SetRange(1, label.MaxScale)

	err = p.dsk.Add("export.zstd", &p.zstd)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("label.scale", &p.scale)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Reset()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}
