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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail:
//
//	logger.Log(logger.Allow, "cartridge", "code block is 15615 bytes")
//
// The tag is usually the name of the package making the log. The detail can
// be a string, an error, a fmt.Stringer or any other value that can be
// printed with the %v verb.
//
// The Permission argument allows a caller to suppress logging in some
// contexts. Most callers will use logger.Allow.
//
// The log is bounded. When it is full the oldest entries are dropped. An
// entry that is identical to the previous entry is not added again; instead
// the repeat count of the previous entry is incremented.
package logger
