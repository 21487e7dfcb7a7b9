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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Node is an entry in a directory listing.
type Node struct {
	Name string

	// directories and archives both have IsDir set
	IsDir     bool
	IsArchive bool
}

func (n Node) String() string {
	return n.Name
}

// Path is a location in the file system that may lead into a zip archive. The
// zero value is an empty path. Close() must be called when the Path is
// finished with.
type Path struct {
	current string
	isDir   bool

	// the open archive when the path leads into one
	zf *zip.ReadCloser

	// location within the archive, split into directory and file. always
	// uses forward slashes. inZipFile is empty when the location is a
	// directory
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// Dir returns the directory of the current path, or the current path itself
// if it is a directory.
func (afs Path) Dir() string {
	if afs.isDir {
		return afs.current
	}
	return filepath.Dir(afs.current)
}

// IsDir is true if the current path is a directory or the root of an
// archive.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive is true if the current path leads into an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open the file at the current path. The size of the file is returned with
// the io.ReadSeeker. Files in an archive are read into memory.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, fmt.Errorf("archivefs: open: %s is a directory", afs.current)
	}
	if afs.zf != nil {
		return afs.openArchive()
	}
	return afs.openDisk()
}

func (afs Path) openArchive() (io.ReadSeeker, int, error) {
	f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	return bytes.NewReader(b), len(b), nil
}

func (afs Path) openDisk() (io.ReadSeeker, int, error) {
	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	return f, int(fi.Size()), nil
}

// Close the archive, if any, and empty the path.
func (afs *Path) Close() {
	if afs.zf != nil {
		afs.zf.Close()
	}
	*afs = Path{}
}

// List the entries of the directory at the current path. If the path is a
// file then the entries of the directory containing the file are listed. The
// entries are ordered by Sort().
func (afs *Path) List() ([]Node, error) {
	var nodes []Node
	var err error

	if afs.zf != nil {
		nodes, err = afs.listArchive()
	} else {
		nodes, err = afs.listDisk()
	}
	if err != nil {
		return nil, fmt.Errorf("archivefs: list: %w", err)
	}

	Sort(nodes)

	return nodes, nil
}

func (afs *Path) listArchive() ([]Node, error) {
	dir := afs.inZipPath
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(afs.zf, dir)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(entries))
	for _, e := range entries {
		nodes = append(nodes, Node{Name: e.Name(), IsDir: e.IsDir()})
	}

	return nodes, nil
}

func (afs *Path) listDisk() ([]Node, error) {
	dir := afs.Dir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	nodes := make([]Node, 0, len(entries))
	for _, e := range entries {
		// stat follows symbolic links to directories
		fi, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}

		isArchive := !fi.IsDir() && IsArchive(e.Name())
		nodes = append(nodes, Node{
			Name:      e.Name(),
			IsDir:     fi.IsDir() || isArchive,
			IsArchive: isArchive,
		})
	}

	return nodes, nil
}

// Set the current path. Once a component of the path is found to be a zip
// archive the remaining components are looked for inside that archive.
//
// Any existing path is closed first. The Path is left closed on error.
func (afs *Path) Set(pth string) error {
	afs.Close()

	parts := strings.Split(filepath.Clean(pth), string(filepath.Separator))

	// an absolute path splits with an empty first part
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}

	var current string
	for _, p := range parts {
		current = filepath.Join(current, p)

		var err error
		if afs.zf != nil {
			err = afs.stepArchive(p)
		} else {
			err = afs.stepDisk(current)
		}
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}
	}

	afs.current = filepath.Clean(current)

	return nil
}

// move the location inside the archive down by one component
func (afs *Path) stepArchive(component string) error {
	p := path.Join(afs.inZipPath, afs.inZipFile, component)

	fi, err := fs.Stat(afs.zf, p)
	if err != nil {
		return err
	}

	afs.isDir = fi.IsDir()
	if afs.isDir {
		afs.inZipPath = p
		afs.inZipFile = ""
		return nil
	}

	afs.inZipPath = path.Dir(p)
	if afs.inZipPath == "." {
		afs.inZipPath = ""
	}
	afs.inZipFile = component

	return nil
}

// check the path on disk. a file that is a zip archive is opened and treated
// as a directory
func (afs *Path) stepDisk(current string) error {
	fi, err := os.Stat(current)
	if err != nil {
		return err
	}

	afs.isDir = fi.IsDir()
	if afs.isDir {
		return nil
	}

	afs.zf, err = zip.OpenReader(current)
	if err == nil {
		afs.isDir = true
		return nil
	}
	afs.zf = nil

	// a file that is not an archive is acceptable
	if errors.Is(err, zip.ErrFormat) {
		return nil
	}

	return err
}
