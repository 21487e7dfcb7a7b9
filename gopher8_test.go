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

package main

import (
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/export"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/pxa"
	"github.com/jetsetilly/gopher8/hardware/memory/cartridge/stego"
	"github.com/jetsetilly/gopher8/test"
)

// change to a temporary directory with a local resource directory. returns
// the name of the temporary directory
func localResources(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".gopher8"), 0o700))
	test.DemandSuccess(t, os.Chdir(dir))

	t.Cleanup(func() {
		os.Chdir(wd)
	})

	return dir
}

// writeCart creates a cartridge image in the directory. the code is stored as
// a single raw run in the compressed block and must not contain a zero byte
func writeCart(t *testing.T, dir string, code string) string {
	t.Helper()

	var payload []byte
	n := 0
	bits := func(v int, w int) {
		for i := 0; i < w; i++ {
			if n%8 == 0 {
				payload = append(payload, 0)
			}
			payload[n/8] |= byte((v>>i)&1) << (n % 8)
			n++
		}
	}
	bits(0b010, 3)
	bits(0, 10)
	for i := 0; i < len(code); i++ {
		bits(int(code[i]), 8)
	}
	bits(0, 8)

	stream := make([]byte, stego.BoundaryOffset+pxa.HeaderLen)
	stream[0] = 0x11
	copy(stream[stego.BoundaryOffset:], pxa.Magic)
	binary.BigEndian.PutUint16(stream[stego.BoundaryOffset+4:], uint16(len(code)))
	binary.BigEndian.PutUint16(stream[stego.BoundaryOffset+6:], uint16(pxa.HeaderLen+len(payload)))
	stream = append(stream, payload...)

	img := image.NewNRGBA(image.Rect(0, 0, stego.Width, stego.Height))
	test.DemandSuccess(t, stego.Embed(img, stream))

	fn := filepath.Join(dir, "test.p8.png")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.DemandSuccess(t, png.Encode(f, img))

	return fn
}

func TestHelp(t *testing.T) {
	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"-help"}), exitSuccess)
	test.ExpectSuccess(t, cw.Contains("available sub-modes: INFO, CODE, EXTRACT, LABEL, PERFORMANCE, PREFS, VERSION\n"))
}

func TestParseError(t *testing.T) {
	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"info", "-nosuchflag"}), exitModeError)
	test.ExpectSuccess(t, cw.Contains("* error in INFO mode: "))
}

func TestVersion(t *testing.T) {
	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"version"}), exitSuccess)
	test.ExpectSuccess(t, cw.Contains("Gopher8 "))
}

func TestMissingCartridge(t *testing.T) {
	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"info"}), exitModeError)
	test.ExpectSuccess(t, cw.Compare("* error in INFO mode: cartridge required for INFO mode\n"))

	cw.Clear()
	test.ExpectEquality(t, launch(cw, []string{"code", "a.p8.png", "b.p8.png"}), exitModeError)
	test.ExpectSuccess(t, cw.Compare("* error in CODE mode: too many arguments for CODE mode\n"))
}

func TestInfo(t *testing.T) {
	dir := localResources(t)
	fn := writeCart(t, dir, "print(1)")

	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"info", fn}), exitSuccess)
	test.ExpectSuccess(t, cw.Contains("code: pxa 8 bytes"))
	test.ExpectSuccess(t, cw.Contains("data: 17152 bytes\n"))

	// only the first byte of the data is set
	test.ExpectSuccess(t, cw.Contains("sprites: 1 of 256 in use\n"))
	test.ExpectSuccess(t, cw.Contains("map: 0 of 8192 tiles in use\n"))
}

func TestCode(t *testing.T) {
	dir := localResources(t)
	fn := writeCart(t, dir, "print(\"hello\")")

	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"code", fn}), exitSuccess)
	test.ExpectSuccess(t, cw.Compare("print(\"hello\")"))

	out := filepath.Join(dir, "code.lua")
	cw.Clear()
	test.ExpectEquality(t, launch(cw, []string{"code", "-o", out, fn}), exitSuccess)
	test.ExpectSuccess(t, cw.Compare(""))

	b, err := os.ReadFile(out)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "print(\"hello\")")
}

func TestExtract(t *testing.T) {
	dir := localResources(t)
	fn := writeCart(t, dir, "cls()")
	out := filepath.Join(dir, "out")

	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"extract", "-dir", out, fn}), exitSuccess)
	test.ExpectSuccess(t, cw.Contains(filepath.Join(out, "test.lua")))

	b, err := export.ReadFile(filepath.Join(out, "test.lua"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "cls()")

	// compression is enabled by the session preferences
	cw.Clear()
	test.ExpectEquality(t, launch(cw, []string{"-prefs", "export.zstd::true", "extract", "-dir", out, fn}), exitSuccess)
	test.ExpectSuccess(t, cw.Contains(filepath.Join(out, "test.gfx.zst")))

	b, err = export.ReadFile(filepath.Join(out, "test.gfx.zst"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(b), stego.BoundaryOffset)
	test.ExpectEquality(t, b[0], uint8(0x11))
}

func TestLabel(t *testing.T) {
	dir := localResources(t)
	fn := writeCart(t, dir, "cls()")
	out := filepath.Join(dir, "label.png")

	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"label", "-scale", "2", "-o", out, fn}), exitSuccess)
	test.ExpectSuccess(t, cw.Compare(out+"\n"))

	f, err := os.Open(out)
	test.DemandSuccess(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, 256)
	test.ExpectEquality(t, cfg.Height, 256)

	cw.Clear()
	test.ExpectEquality(t, launch(cw, []string{"label", "-scale", "0", "-o", out, fn}), exitModeError)
}

func TestPrefs(t *testing.T) {
	localResources(t)

	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"prefs"}), exitSuccess)
	test.ExpectSuccess(t, cw.Compare("export.zstd :: false\nlabel.scale :: 1\n"))

	cw.Clear()
	test.ExpectEquality(t, launch(cw, []string{"-prefs", "label.scale::4", "prefs", "-save"}), exitSuccess)
	test.ExpectSuccess(t, cw.Contains("label.scale :: 4\n"))

	// the saved value is used when there are no session preferences
	cw.Clear()
	test.ExpectEquality(t, launch(cw, []string{"prefs"}), exitSuccess)
	test.ExpectSuccess(t, cw.Compare("export.zstd :: false\nlabel.scale :: 4\n"))

	// out of range values are an error
	cw.Clear()
	test.ExpectEquality(t, launch(cw, []string{"-prefs", "label.scale::99", "prefs"}), exitModeError)
}

func TestPerformance(t *testing.T) {
	dir := localResources(t)
	fn := writeCart(t, dir, "cls()")

	cw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(cw, []string{"performance", "-duration", "20ms", fn}), exitSuccess)
	test.ExpectSuccess(t, cw.Contains("decodes/sec"))

	cw.Clear()
	test.ExpectEquality(t, launch(cw, []string{"performance", "-profile", "disk", fn}), exitModeError)
}

func TestSpritesInUse(t *testing.T) {
	mem := memory.NewMemory()

	n, err := spritesInUse(mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	// a pixel in the second row of sprite 0
	test.DemandSuccess(t, mem.Write(64, 0x11))
	n, err = spritesInUse(mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)

	// a pixel in the last row of sprite 255
	test.DemandSuccess(t, mem.Write(0x1fff, 0x01))
	n, err = spritesInUse(mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
}
