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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestFromBuildInfo(t *testing.T) {
	v, r := fromBuildInfo(nil, false)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	info := &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	v, r = fromBuildInfo(info, true)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123+dirty")

	info.Main.Version = "v1.2.0"
	info.Settings[2].Value = "false"
	v, r = fromBuildInfo(info, true)
	test.ExpectEquality(t, v, "v1.2.0")
	test.ExpectEquality(t, r, "abc123")
}
