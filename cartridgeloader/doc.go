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

// Package cartridgeloader is used to specify the cartridge file that is to be
// decoded and to read the raw bytes of that file.
//
// The Load() function handles loading of data from different sources.
// Currently local files, files inside a zip archive and data over HTTP are
// supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "carts/celeste.p8.png",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// A Loader pointing at a zip archive, rather than a file inside the archive,
// will load the cartridge image in the root of the archive. If there is more
// than one image in the root then the load will fail.
package cartridgeloader
