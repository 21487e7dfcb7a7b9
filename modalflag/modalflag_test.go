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

package modalflag_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-log", "extract", "-dir", "out", "cart.p8.png"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("INFO", "EXTRACT")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "EXTRACT")

	md.NewMode()
	dir := md.AddString("dir", "", "output directory")
	zstd := md.AddBool("zstd", false, "compress")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *dir, "out")
	test.ExpectEquality(t, *zstd, false)
	test.ExpectEquality(t, md.Path(), "EXTRACT")
	test.ExpectEquality(t, md.GetArg(0), "cart.p8.png")

	var visited []string
	md.Visit(func(flag string) {
		visited = append(visited, flag)
	})
	test.ExpectEquality(t, len(visited), 1)
	test.ExpectEquality(t, visited[0], "dir")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"cart.p8.png"})
	md.AddSubModes("CODE", "LABEL")
	md.AddDefaultSubMode("INFO")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "INFO")
	test.ExpectEquality(t, md.GetArg(0), "cart.p8.png")
}

func TestFlagTypes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-scale", "4", "-duration", "2s"})
	scale := md.AddInt("scale", 1, "label scale")
	duration := md.AddDuration("duration", time.Second, "duration")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *scale, 4)
	test.ExpectEquality(t, *duration, 2*time.Second)
}

func TestNoHelpAvailable(t *testing.T) {
	cw := &test.CompareWriter{}

	md := modalflag.Modes{Output: cw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, cw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	cw := &test.CompareWriter{}

	md := modalflag.Modes{Output: cw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectSuccess(t, cw.Compare(expectedHelp))
}

func TestHelpModes(t *testing.T) {
	cw := &test.CompareWriter{}

	md := modalflag.Modes{Output: cw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, cw.Compare(expectedHelp))
}

func TestHelpFlagsAndModes(t *testing.T) {
	cw := &test.CompareWriter{}

	md := modalflag.Modes{Output: cw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, cw.Compare(expectedHelp))
}

func TestAdditionalHelp(t *testing.T) {
	cw := &test.CompareWriter{}

	md := modalflag.Modes{Output: cw}
	md.NewArgs([]string{"LABEL", "-help"})
	md.AddSubModes("INFO", "LABEL")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	md.NewMode()
	md.AddInt("scale", 1, "scale")
	md.AdditionalHelp("the label is cropped from the cartridge image")

	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, cw.Contains("Usage: for LABEL mode\n"))
	test.ExpectSuccess(t, cw.Contains("\nthe label is cropped from the cartridge image\n"))
}
