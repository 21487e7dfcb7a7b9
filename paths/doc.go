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

// Package paths contains functions to prepare paths to gopher8 resources.
//
// The ResourcePath() function returns the path to a resource, prepended with
// the appropriate config directory. For example, the following will return
// the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() is simple: if the directory ".gopher8" is
// present in the program's current directory then that is the base path that
// will used. If it is not present then the user's config directory is used.
// The package uses os.UserConfigDir() from go standard library for this.
//
// In the example above, on a modern Linux system, the path returned will be:
//
//	/home/user/.config/gopher8/preferences
//
// The directory part of the resource path is created if it does not exist.
package paths
