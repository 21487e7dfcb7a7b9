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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test
// to continue. The Demand functions report with t.Fatalf() and end the test
// immediately. Use a Demand function when the rest of the test depends on
// the value being correct, for example when a constructor must succeed.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. A
// nil value is considered a success, because a nil error means the function
// being tested succeeded.
//
// Optional tags can be supplied to every function. They are printed before
// the failure message and are useful when the test is inside a loop.
//
// The CompareWriter type implements io.Writer and can be used to capture
// output for comparison.
package test
