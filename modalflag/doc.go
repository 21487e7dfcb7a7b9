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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest, it can be used as a replacement for the flag package, with
// some differences. Most importantly, the Parse() function returns a
// ParseResult which should be checked:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	log := md.AddBool("log", false, "echo log to stdout")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return
//	case modalflag.ParseError:
//		fmt.Printf("* %s\n", err)
//		return
//	}
//
// Modes are added with AddSubModes(). The first mode in the list is the
// default mode and is selected when the first argument after the flags is
// not one of the listed modes:
//
//	md.AddSubModes("INFO", "CODE", "EXTRACT", "LABEL", "PERFORMANCE")
//
// After a successful Parse(), Mode() returns the selected mode. Each mode can
// then call NewMode() to define its own flags before calling Parse() again:
//
//	switch md.Mode() {
//	case "EXTRACT":
//		md.NewMode()
//		dir := md.AddString("dir", "", "output directory")
//		p, err := md.Parse()
//		...
//	}
//
// Mode comparisons are case insensitive so "gopher8 extract cart.p8.png" and
// "gopher8 EXTRACT cart.p8.png" are equivalent. Path() returns every mode
// selected so far, separated by a forward slash.
//
// Help is handled automatically when the -help or -h flag is given. The help
// message lists the flags for the current mode and any sub-modes. Additional
// text can be supplied with AdditionalHelp().
package modalflag
