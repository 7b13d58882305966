// This file is part of Tasedit.
//
// Tasedit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tasedit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tasedit.  If not, see <https://www.gnu.org/licenses/>.

// Package paths should be used whenever a request to the filesystem is made
// for a configuration file. The ResourcePath() function modifies the supplied
// resource string such that it is prepended with the appropriate config
// directory.
//
// If a directory called ".tasedit" exists in the current working directory
// then that directory is used. Otherwise the "tasedit" directory in the user's
// configuration directory (as reported by os.UserConfigDir()) is used.
package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".tasedit"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the configuration directory. The directory part of
// the resource is created if it does not exist.
func ResourcePath(path string, file string) (string, error) {
	base, err := getBasePath(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	base := baseResourcePath
	if _, err := os.Stat(baseResourcePath); err != nil {
		cfg, err := os.UserConfigDir()
		if err == nil {
			base = filepath.Join(cfg, baseResourcePath[1:])
		}
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
