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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// the base directory when running from a development directory
const localResourcePath = ".gopher8"

// the directory in the user's config directory
const gopherConfigDir = "gopher8"

// ResourcePath returns the path to the resource. The subPth is the directory
// and will be created if necessary. The file is not checked for existence.
//
// Either argument can be empty. If both are empty then the base path is
// returned.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(pth, file), nil
}

func getBasePath() (string, error) {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, gopherConfigDir), nil
}
