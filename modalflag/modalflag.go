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
	"errors"
	"flag"
	"io"
	"os"
	"slices"
	"strings"
	"time"
)

// separates the modes returned by Path()
const pathSeparator = "/"

// Modes parses a command line one mode at a time. Each mode has its own set
// of flags and, optionally, a list of sub-modes that may follow the flags.
type Modes struct {
	// help messages are written to Output. a nil value means os.Stdout
	Output io.Writer

	// reset by NewArgs() and NewMode()
	parsed bool
	flags  *flag.FlagSet

	// the complete argument list and the index of the first argument that
	// has not been consumed by a previous mode
	args []string
	next int

	// sub-modes accepted by the current mode. the first entry is the
	// default
	subModes []string

	// modes selected so far, in order. survives calls to NewMode()
	path []string

	// text appended to the help message of the current mode
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode or the empty string if no
// mode has been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode joined with a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSeparator)
}

// NewArgs starts parsing a new argument list. Previously selected modes are
// kept.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.NewMode()
}

// NewMode clears the flags and sub-modes so that the remaining arguments can
// be parsed for a new mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp sets text to be shown after the list of flags in the help
// message of the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed is true if Parse() has been called for the current mode, whether or
// not it succeeded.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. if sub-modes were added then Mode() is the
	// selected sub-mode
	ParseContinue ParseResult = iota

	// the help message has been written to Output
	ParseHelp

	// parsing failed. the error is returned alongside
	ParseError
)

// Parse the flags of the current mode and select a sub-mode if any have been
// added. Callers should switch on the result:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	output := md.Output
	if output == nil {
		output = os.Stdout
	}

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.next:])
	if errors.Is(err, flag.ErrHelp) {
		hw.Help(output, md.Path(), md.subModes, md.additionalHelp)
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// an unrecognised flag is left for the default sub-mode to parse
	if err != nil {
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	md.selectSubMode()

	return ParseContinue, nil
}

// selectSubMode adds the sub-mode named by the first argument after the flags
// to the path, or the default sub-mode if the argument is not a sub-mode. the
// flags and any named sub-mode are consumed
func (md *Modes) selectSubMode() {
	md.next = len(md.args) - md.flags.NArg()

	mode := strings.ToUpper(md.flags.Arg(0))
	if slices.Contains(md.subModes, mode) {
		md.next++
	} else {
		mode = md.subModes[0]
	}

	md.path = append(md.path, mode)
}

// RemainingArgs returns the arguments that were not consumed by Parse() as
// flags or as a sub-mode.
func (md *Modes) RemainingArgs() []string {
	if len(md.subModes) > 0 {
		return md.args[md.next:]
	}
	return md.flags.Args()
}

// GetArg returns the remaining argument at index i or the empty string if
// there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to the current mode. The first sub-mode added is the default.
// Sub-mode names are not case sensitive.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddDefaultSubMode adds a sub-mode to the front of the list, making it the
// default.
func (md *Modes) AddDefaultSubMode(subMode string) {
	md.subModes = slices.Insert(md.subModes, 0, strings.ToUpper(subMode))
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn with the name of every flag that was set on the command
// line, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
