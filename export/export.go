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

// Package export writes the contents of a cartridge to separate files. The
// source code is written to a file with the .lua extension and the data block
// to a file with the .gfx extension.
//
// Files can optionally be compressed with zstd, in which case the .zst
// extension is added to the filename. The ReadFile() function reads either
// form.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/klauspost/compress/zstd"
)

// Source is implemented by any type that can supply the code and data of a
// cartridge. The cartridge.Cartridge type is the usual implementation.
type Source interface {
	Code() []byte
	Data() []byte
}

// File extensions used by the package.
const (
	CodeExtension = ".lua"
	DataExtension = ".gfx"
	ZstdExtension = ".zst"
)

// Cartridge writes the code and data of the cartridge to the directory. The
// name is used as the base of each filename. The filenames of the written
// files are returned.
func Cartridge(dir string, name string, cart Source, compress bool) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("export: empty name")
	}

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	var written []string

	for _, f := range []struct {
		ext  string
		data []byte
	}{
		{ext: CodeExtension, data: cart.Code()},
		{ext: DataExtension, data: cart.Data()},
	} {
		fn := filepath.Join(dir, name+f.ext)
		if compress {
			fn += ZstdExtension
		}

		err = writeFile(fn, f.data, compress)
		if err != nil {
			return written, err
		}
		written = append(written, fn)

		logger.Logf(logger.Allow, "export", "%s (%d bytes)", fn, len(f.data))
	}

	return written, nil
}

func writeFile(fn string, data []byte, compress bool) (rerr error) {
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("export: %w", err)
		}
	}()

	if !compress {
		_, err = f.Write(data)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		return nil
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	_, err = enc.Write(data)
	if err != nil {
		enc.Close()
		return fmt.Errorf("export: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

// ReadFile reads a file written by Cartridge(). Files with the .zst extension
// are decompressed.
func ReadFile(fn string) ([]byte, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	var r io.Reader = f

	if strings.EqualFold(filepath.Ext(fn), ZstdExtension) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	return data, nil
}
