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

package performance_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/test"
)

func TestCheckArguments(t *testing.T) {
	cw := &test.CompareWriter{}
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.p8.png"))

	_, err := performance.Check(cw, performance.ProfileNone, &cl, "not a duration")
	test.ExpectFailure(t, err)

	_, err = performance.Check(cw, performance.ProfileNone, &cl, "-1s")
	test.ExpectFailure(t, err)

	// the cartridge does not exist
	_, err = performance.Check(cw, performance.ProfileNone, &cl, "10ms")
	test.ExpectSuccess(t, errors.Is(err, cartridgeloader.ErrIO))
	test.ExpectSuccess(t, cw.Compare(""))
}

func TestResults(t *testing.T) {
	var r performance.Results
	test.ExpectEquality(t, r.String(), "no results")
}
