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

// Package script prepares the source code of a cartridge for execution.
//
// Cartridge source is often written in a dialect that a standard script engine
// will not accept. Before execution the source is passed through a Rewriter,
// which translates it. The translation itself is performed by an external
// program and is outside the scope of this package. The Command type runs
// such a program, sending the source to its stdin and reading the translated
// source from its stdout.
package script
