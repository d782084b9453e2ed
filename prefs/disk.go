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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/logger"
)

// DefaultPrefsFile is the default filename of the preferences file, relative
// to the resources base path.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line in a saved prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a saved prefs file.
const keySep = " :: "

// DuplicateKey is returned by Disk.Add() when the key has already been added.
const DuplicateKey = "prefs: duplicate key (%s)"

// Disk represents preference values as stored on disk. Each preference value
// is registered against a key with the Add() function.
//
// Several Disk instances can point to the same file, each handling a
// different set of keys. Keys not recognised by an instance are retained on
// Save() rather than lost.
type Disk struct {
	path    string
	entries map[string]pref

	// key/value pairs loaded from the file but not registered with this
	// instance. written back verbatim on Save().
	orphans map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		orphans: make(map[string]string),
	}, nil
}

// Add the pref value to the list of values to save/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	delete(dsk.orphans, key)
	return nil
}

// HasEntry returns true if the named key has been registered with Add().
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Load prefs from the disk file. Keys in the file that have not been
// registered with this instance are remembered and written back on Save().
//
// A missing prefs file is not an error. The registered values are simply
// left at their current settings.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf("prefs: load: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate || strings.TrimSpace(line) == "" {
			continue
		}

		kv := strings.SplitN(line, keySep, 2)
		if len(kv) != 2 {
			logger.Logf(logger.Allow, "prefs", "skipping malformed line in %s", dsk.path)
			continue
		}

		if p, ok := dsk.entries[kv[0]]; ok {
			if err := p.Set(kv[1]); err != nil {
				return curated.Errorf("prefs: load: %v", err)
			}
		} else {
			dsk.orphans[kv[0]] = kv[1]
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: load: %v", err)
	}

	return nil
}

// Save current preference values to the disk file.
func (dsk *Disk) Save() error {
	keys := make([]string, 0, len(dsk.entries)+len(dsk.orphans))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	for k := range dsk.orphans {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: save: %v", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, WarningBoilerPlate); err != nil {
		return curated.Errorf("prefs: save: %v", err)
	}

	for _, k := range keys {
		var v string
		if p, ok := dsk.entries[k]; ok {
			v = p.String()
		} else {
			v = dsk.orphans[k]
		}
		if _, err := fmt.Fprintf(f, "%s%s%s\n", k, keySep, v); err != nil {
			return curated.Errorf("prefs: save: %v", err)
		}
	}

	return nil
}
