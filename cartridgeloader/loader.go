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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher8/archivefs"
	"github.com/jetsetilly/gopher8/logger"
)

// ErrIO is wrapped by any error caused by a failure to read the cartridge
// data from its source.
var ErrIO = errors.New("cartridgeloader: io error")

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package. The longest extensions are listed first.
var FileExtensions = [...]string{".P8.PNG", ".PNG", ".P8"}

// Loader is used to specify the cartridge to use when creating a new
// cartridge.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// Extension returns the recognised file extension of the Filename, in upper
// case. Returns the empty string if the extension is not recognised.
func (cl Loader) Extension() string {
	fn := strings.ToUpper(cl.Filename)
	for _, ext := range FileExtensions {
		if strings.HasSuffix(fn, ext) {
			return ext
		}
	}
	return ""
}

// IsImage returns true if the Filename indicates a cartridge image.
func (cl Loader) IsImage() bool {
	return strings.HasSuffix(cl.Extension(), ".PNG")
}

// IsText returns true if the Filename indicates a plain text cartridge.
func (cl Loader) IsText() bool {
	return cl.Extension() == ".P8"
}

// ShortName returns a shortened version of the CartridgeLoader filename. The
// path and the file extension are removed.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	if ext := cl.Extension(); ext != "" {
		return shortCartName[:len(shortCartName)-len(ext)]
	}
	return strings.TrimSuffix(shortCartName, filepath.Ext(shortCartName))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP(S) and local
// files. Local files can be inside a zip archive.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		data, err = loadHTTP(cl.Filename)
		if err != nil {
			return err
		}

	case "file", "":
		fn := cl.Filename
		if u != nil && u.Scheme == "file" {
			fn = u.Path
		}

		fn, err = selectFromArchive(fn)
		if err != nil {
			return err
		}

		data, err = archivefs.ReadFile(fn)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}

		// the filename is now the actual file that was loaded
		cl.Filename = fn

	default:
		// a single letter scheme is probably a windows drive letter
		if len(scheme) == 1 {
			data, err = archivefs.ReadFile(cl.Filename)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrIO, err)
			}
			break
		}
		return fmt.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}

	if len(data) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrIO, cl.Filename)
	}

	// generate hash and check for consistency
	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return fmt.Errorf("cartridgeloader: unexpected hash value (%s)", hash)
	}

	cl.Hash = hash
	cl.Data = data

	logger.Logf(logger.Allow, "cartridgeloader", "loaded %s (%d bytes)", cl.ShortName(), len(cl.Data))

	return nil
}

func loadHTTP(filename string) ([]byte, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrIO, filename, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return data, nil
}

// if filename is a zip archive then return the path to the cartridge in the
// root of the archive. any other filename is returned unchanged
func selectFromArchive(filename string) (string, error) {
	var afs archivefs.Path
	defer afs.Close()

	err := afs.Set(filename)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	if !afs.InArchive() || !afs.IsDir() {
		return filename, nil
	}

	nodes, err := afs.List()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	nodes = slices.DeleteFunc(nodes, func(n archivefs.Node) bool {
		return n.IsDir || !NewLoader(n.Name).IsImage()
	})

	switch len(nodes) {
	case 0:
		return "", fmt.Errorf("cartridgeloader: no cartridge image in %s", afs.Base())
	case 1:
		return filepath.Join(afs.String(), nodes[0].Name), nil
	}

	return "", fmt.Errorf("cartridgeloader: %d cartridge images in %s", len(nodes), afs.Base())
}
