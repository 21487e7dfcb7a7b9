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

package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/logger"
)

// CodeSource is implemented by any type that can supply source code. The
// cartridge.Cartridge type is the usual implementation.
type CodeSource interface {
	Code() []byte
}

// Rewriter implementations translate source code.
type Rewriter interface {
	Rewrite(code []byte) ([]byte, error)
}

// RewriterFunc allows a function to be used as a Rewriter.
type RewriterFunc func(code []byte) ([]byte, error)

// Rewrite implements the Rewriter interface.
func (f RewriterFunc) Rewrite(code []byte) ([]byte, error) {
	return f(code)
}

// Passthrough is a Rewriter that returns a copy of the source unchanged.
var Passthrough Rewriter = RewriterFunc(func(code []byte) ([]byte, error) {
	return bytes.Clone(code), nil
})

// Command is a Rewriter that runs an external program.
type Command struct {
	Name string
	Args []string

	// the program is killed if it runs for longer than the timeout. a value
	// of zero means no timeout
	Timeout time.Duration
}

// ParseCommand splits a command line into a Command. Arguments are separated
// by whitespace. There is no support for quoting.
func ParseCommand(s string) (Command, error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return Command{}, errors.New("script: empty command")
	}
	return Command{Name: f[0], Args: f[1:]}, nil
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Rewrite implements the Rewriter interface.
func (c Command) Rewrite(code []byte) ([]byte, error) {
	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = bytes.NewReader(code)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("script: %s: %w: %s", c.Name, err, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("script: %s: %w", c.Name, err)
	}

	return stdout.Bytes(), nil
}

// Source returns the source code of the CodeSource after it has been passed
// through the Rewriter. A nil Rewriter is the same as Passthrough.
func Source(src CodeSource, rw Rewriter) ([]byte, error) {
	if rw == nil {
		rw = Passthrough
	}

	code, err := rw.Rewrite(src.Code())
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "script", "rewritten source is %d bytes (was %d)", len(code), len(src.Code()))

	return code, nil
}
