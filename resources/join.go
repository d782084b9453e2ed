// This file is part of Helios.
//
// Helios is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Helios is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Helios.  If not, see <https://www.gnu.org/licenses/>.

package resources

import (
	"os"
	"path/filepath"
)

// the name of the resource directory. used as-is when it exists in the
// current directory, otherwise prepended with the user's config directory.
const baseResourceDir = ".helios"

// JoinPath prepends the supplied path with an OS specific base path and
// creates all folders necessary to reach the end of the path. It does not
// otherwise touch or create the file.
//
// If a directory named .helios exists in the current working directory then
// that is used as the base path. This is a convenience for development. In
// all other cases the base path is rooted in the user's configuration
// directory, eg. /home/user/.config/helios
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(basePath(), filepath.Join(path...))

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

func basePath() string {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir
	}

	config, err := os.UserConfigDir()
	if err != nil {
		return baseResourceDir
	}

	return filepath.Join(config, baseResourceDir[1:])
}
