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

package romloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heliosemu/helios/assembler"
	"github.com/heliosemu/helios/curated"
)

// DefaultOrigin is the address raw images are loaded at. raw files carry no
// origin of their own so they are placed clear of the zero page and the
// stack page.
const DefaultOrigin = uint16(0x0200)

// UnrecognisedExtension is returned by NewLoader() when the file type cannot
// be inferred from the filename.
const UnrecognisedExtension = "romloader: unrecognised file extension (%s)"

// FileExtensions is the list of file extensions that can be loaded into the
// emulated machine.
var FileExtensions = [...]string{".bin", ".rom", ".asm", ".s"}

// Loader is used to specify the program to be attached to the machine.
//
// It should be initialised with the NewLoader() function.
type Loader struct {
	// filename of the program being loaded
	Filename string

	// expected hash of the loaded image. empty string means the hash is not
	// validated. after a successful Load() the field holds the SHA-1 hash of
	// the image that was loaded
	Hash string

	// whether the file is assembly source rather than a raw image
	IsSource bool

	// origin and image, valid after Load()
	Origin uint16
	Data   []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The file type is inferred from the filename extension. See the
// FileExtensions variable for the recognised extensions.
func NewLoader(filename string) (Loader, error) {
	ld := Loader{Filename: filename}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".bin", ".rom":
		// raw image
	case ".asm", ".s":
		ld.IsSource = true
	default:
		return Loader{}, curated.Errorf(UnrecognisedExtension, filename)
	}

	return ld, nil
}

// ShortName returns a shortened version of the loader filename.
func (ld Loader) ShortName() string {
	shortFilename := filepath.Base(ld.Filename)
	shortFilename = strings.TrimSuffix(shortFilename, filepath.Ext(ld.Filename))
	return shortFilename
}

// HasLoaded returns true if Load() has been called and an image is in place.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program image into memory. Raw images are read as they are and
// assigned the default origin. Assembly sources are assembled and take their
// origin from the source.
//
// Subsequent calls to Load() return the image from the first call.
func (ld *Loader) Load() (uint16, []byte, error) {
	if ld.HasLoaded() {
		return ld.Origin, ld.Data, nil
	}

	d, err := os.ReadFile(ld.Filename)
	if err != nil {
		return 0, nil, curated.Errorf("romloader: %v", err)
	}

	if ld.IsSource {
		prg, err := assembler.Assemble(bytes.NewReader(d))
		if err != nil {
			return 0, nil, err
		}
		ld.Origin = prg.Origin
		ld.Data = prg.Bytes
	} else {
		ld.Origin = DefaultOrigin
		ld.Data = d
	}

	// check that the hash matches the expected hash, if there is one
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return 0, nil, curated.Errorf("romloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return ld.Origin, ld.Data, nil
}
