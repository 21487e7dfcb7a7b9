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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written to the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates the key and the value on each line of a preferences file.
const prefsSeparator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, prefsSeparator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, errors.New("prefs: no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, prefsSeparator) || strings.ContainsAny(key, "\n;") {
		return fmt.Errorf("prefs: illegal key (%q)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already in use (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preferences to their default values.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read the preferences file into a map of strings. a missing file is not an
// error and results in an empty map
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate. a file without it was not
	// written by this package
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: %s is not a preferences file", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), prefsSeparator)
		if ok {
			data[strings.TrimSpace(k)] = v
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return data, nil
}

// Save current preference values to disk. Values in the preferences file
// that are not part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, prefsSeparator, data[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack (see
// PushCommandLineStack()) take priority over values in the file.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
			continue
		}

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}
