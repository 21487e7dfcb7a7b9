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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/export"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/label"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/script"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// exit codes returned by launch()
const (
	exitSuccess    = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. the return value
// is the exit code of the program.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "CODE", "EXTRACT", "LABEL", "PERFORMANCE", "PREFS", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")
	sessionPrefs := md.AddString("prefs", "", "preferences for this session (eg. \"label.scale::4; export.zstd::true\")")

	var sv *bool
	if statsview.Available() {
		sv = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if sv != nil && *sv {
		stop := statsview.Launch(output)
		defer stop()
	}

	prefs.PushCommandLineStack(*sessionPrefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "gopher8", "unused preferences: %s", unused)
		}
	}()

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "CODE":
		err = code(md)
	case "EXTRACT":
		err = extract(md)
	case "LABEL":
		err = extractLabel(md)
	case "PERFORMANCE":
		err = perform(md)
	case "PREFS":
		err = showPrefs(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitSuccess
}

// loadCartridge is used by every mode that requires a single cartridge
// argument.
func loadCartridge(md *modalflag.Modes) (*cartridgeloader.Loader, *cartridge.Cartridge, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	cart, err := cartridge.NewCartridge(&cl)
	if err != nil {
		return nil, nil, err
	}

	return &cl, cart, nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	memmap := md.AddBool("memmap", false, "include memory map summary")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cl, cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	mem := memory.NewMemory()
	err = mem.Initialise(cart.Data())
	if err != nil {
		return err
	}

	sprites, err := spritesInUse(mem)
	if err != nil {
		return err
	}

	var tiles int
	for y := range memory.MapHeight {
		for x := range memory.MapWidth {
			t, err := mem.MapTile(x, y)
			if err != nil {
				return err
			}
			if t != 0 {
				tiles++
			}
		}
	}

	w := md.Output
	fmt.Fprintf(w, "filename: %s\n", cl.Filename)
	fmt.Fprintf(w, "hash: %s\n", cl.Hash)
	fmt.Fprintf(w, "code: %s\n", cart.Header())
	fmt.Fprintf(w, "data: %d bytes\n", len(cart.Data()))
	fmt.Fprintf(w, "sprites: %d of %d in use\n", sprites, memory.NumSprites)
	fmt.Fprintf(w, "map: %d of %d tiles in use\n", tiles, memory.MapWidth*memory.MapHeight)
	fmt.Fprintf(w, "music: %d bytes\n", len(cart.Music()))
	fmt.Fprintf(w, "sfx: %d bytes\n", len(cart.SFX()))

	if *memmap {
		fmt.Fprintln(w)
		io.WriteString(w, memorymap.Summary())
	}

	return nil
}

// spritesInUse counts the sprites with at least one pixel that is not zero
func spritesInUse(mem *memory.Memory) (int, error) {
	var n int
	for s := range memory.NumSprites {
		rows, err := mem.SpriteRows(s)
		if err != nil {
			return 0, err
		}
		if slices.ContainsFunc(rows[:], func(r []byte) bool {
			return slices.ContainsFunc(r, func(b byte) bool { return b != 0 })
		}) {
			n++
		}
	}
	return n, nil
}

func code(md *modalflag.Modes) error {
	md.NewMode()

	rewrite := md.AddString("rewrite", "", "program to pass the code through before output")
	out := md.AddString("o", "", "write code to file instead of stdout")

	md.AdditionalHelp("The rewrite program receives the code on stdin and should write the\n" +
		"rewritten code to stdout. Arguments are separated by spaces.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	var rw script.Rewriter
	if *rewrite != "" {
		rw, err = script.ParseCommand(*rewrite)
		if err != nil {
			return err
		}
	}

	src, err := script.Source(cart, rw)
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = md.Output.Write(src)
		return err
	}

	return os.WriteFile(*out, src, 0o644)
}

func extract(md *modalflag.Modes) error {
	md.NewMode()

	p, err := newPreferences()
	if err != nil {
		return err
	}

	dir := md.AddString("dir", ".", "output directory")
	zstd := md.AddBool("zstd", p.zstd.Get().(bool), "compress extracted files")

	r, err := md.Parse()
	if err != nil || r != modalflag.ParseContinue {
		return err
	}

	cl, cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	files, err := export.Cartridge(*dir, cl.ShortName(), cart, *zstd)
	if err != nil {
		return err
	}

	for _, fn := range files {
		fmt.Fprintln(md.Output, fn)
	}

	return nil
}

func extractLabel(md *modalflag.Modes) error {
	md.NewMode()

	p, err := newPreferences()
	if err != nil {
		return err
	}

	scale := md.AddInt("scale", p.scale.Get().(int), fmt.Sprintf("scaling factor of label (1 to %d)", label.MaxScale))
	out := md.AddString("o", "", "output filename (default is a unique filename in the current directory)")

	r, err := md.Parse()
	if err != nil || r != modalflag.ParseContinue {
		return err
	}

	cl, cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	img, err := label.Extract(cart.Image(), *scale)
	if err != nil {
		return err
	}

	fn := *out
	if fn == "" {
		fn = paths.UniqueFilename("label", cl.ShortName()) + ".png"
	}

	f, err := os.Create(fn)
	if err != nil {
		return err
	}

	err = label.WritePNG(f, img)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	fmt.Fprintln(md.Output, fn)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profiling reports: cpu, mem, trace, all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	_, err = performance.Check(md.Output, prf, &cl, *duration)
	return err
}

func showPrefs(md *modalflag.Modes) error {
	md.NewMode()

	save := md.AddBool("save", false, "save preferences to disk")

	md.AdditionalHelp("Preferences given with the -prefs flag are saved with the -save flag.")

	r, err := md.Parse()
	if err != nil || r != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	p, err := newPreferences()
	if err != nil {
		return err
	}

	if *save {
		err = p.dsk.Save()
		if err != nil {
			return err
		}
		pth, _ := filepath.Abs(p.dsk.Path())
		fmt.Fprintf(md.Output, "saved to %s\n", pth)
	}

	io.WriteString(md.Output, p.dsk.String())

	return nil
}
