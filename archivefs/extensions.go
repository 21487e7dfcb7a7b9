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

package archivefs

import (
	"path/filepath"
	"slices"
	"strings"
)

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

// IsArchive returns true if the filename has the extension of a supported
// archive type.
func IsArchive(filename string) bool {
	return slices.Contains(ArchiveExtensions[:], strings.ToUpper(filepath.Ext(filename)))
}

// TrimArchiveExt removes the file extension of any supported archive type from
// the end of the string.
func TrimArchiveExt(s string) string {
	if IsArchive(s) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}
