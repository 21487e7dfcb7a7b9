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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"
)

// Profile specifies which profiling (if any) should be performed.
type Profile int

// Valid Profile values.
const (
	ProfileNone  Profile = 0x00
	ProfileCPU   Profile = 0x01
	ProfileMem   Profile = 0x02
	ProfileTrace Profile = 0x04
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}

	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// ParseProfileString converts a string to a Profile value. The string is a
// comma separated list of profile names: "cpu", "mem", "trace", "all" or
// "none".
func ParseProfileString(profile string) (Profile, error) {
	result := ProfileNone

	for _, p := range strings.Split(profile, ",") {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "", "none":
		case "cpu":
			result |= ProfileCPU
		case "mem":
			result |= ProfileMem
		case "trace":
			result |= ProfileTrace
		case "all":
			result |= ProfileAll
		default:
			return ProfileNone, fmt.Errorf("performance: unknown profile type (%s)", p)
		}
	}

	return result, nil
}

// RunProfiler runs supplied function "through" the requested Profile types.
// Profile files are created in the current directory with the filenameHeader
// as a prefix.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = fmt.Errorf("performance: %w", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = fmt.Errorf("performance: %w", err)
			}
		}()

		if err := trace.Start(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = fmt.Errorf("performance: %w", err)
			}
		}()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	}

	return nil
}
