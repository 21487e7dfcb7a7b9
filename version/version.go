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

// Package version reports the version of the application. The version is
// taken from the number variable, which is set at link time by the makefile:
//
//	-ldflags "-X github.com/jetsetilly/gopher8/version.number=v0.1.0"
//
// Otherwise the version is taken from the module information embedded in the
// binary by the go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// The name to use when referring to the application
const ApplicationName = "Gopher8"

// if number is empty then the project was probably not built using the makefile
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is a
// numbered release version.
//
// If the version string is "unreleased" then the project has been built from
// a repository without a version number. If the version string is "local"
// then there is no version number and no vcs information. This can happen
// when compiling/running with "go run ."
//
// If the source has been modified but has not been committed then the
// revision string will be suffixed with "+dirty"
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary of the version information.
func String() string {
	if number != "" && version == number {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	version, revision = fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool
	var mainVersion string

	if ok {
		mainVersion = info.Main.Version
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case mainVersion != "" && mainVersion != "(devel)" && !strings.HasPrefix(mainVersion, "v0.0.0-"):
		// installed with "go install module@version"
		return mainVersion, rev
	case vcs:
		return "unreleased", rev
	}

	return "local", rev
}
