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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the default output from the flag package so that it can
// be amended before being shown to the user.
type helpWriter struct {
	buffer strings.Builder
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}

// Clear contents of output buffer.
func (hw *helpWriter) Clear() {
	hw.buffer.Reset()
}

// Help writes the amended help message to output. The banner is the mode path
// and will be empty for the top level mode.
func (hw *helpWriter) Help(output io.Writer, banner string, subModes []string, additionalHelp string) {
	s := hw.buffer.String()

	// there is no flag information and no sub-modes
	if s == "Usage:\n" && len(subModes) == 0 {
		if banner != "" {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	// the first line is the banner line of the flag package
	first, rest, _ := strings.Cut(s, "\n")
	if banner != "" {
		fmt.Fprintf(output, "%s for %s mode\n", first, banner)
	} else {
		fmt.Fprintln(output, first)
	}
	io.WriteString(output, rest)

	if len(subModes) > 0 {
		// separate the flag information from the sub-mode information
		if rest != "" {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
