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

package romloader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/romloader"
	"github.com/heliosemu/helios/test"
)

// write a file to a temporary directory, returning the full path.
func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestRawImage(t *testing.T) {
	img := []byte{0xa9, 0x07, 0x85, 0xf0, 0xff}
	fn := writeFile(t, "demo.bin", img)

	ld, err := romloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.IsSource, false)
	test.ExpectEquality(t, ld.HasLoaded(), false)

	origin, data, err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, origin, romloader.DefaultOrigin)
	test.ExpectEquality(t, len(data), len(img))
	for i := range img {
		test.ExpectEquality(t, data[i], img[i])
	}

	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(img)))
}

func TestAssemblySource(t *testing.T) {
	fn := writeFile(t, "demo.asm", []byte(`
	.org $0200
	lda #$07
	sta $f0
	hlt
`))

	ld, err := romloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.IsSource, true)

	origin, data, err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, origin, uint16(0x0200))

	asm := []byte{0xa9, 0x07, 0x85, 0xf0, 0xff}
	test.DemandEquality(t, len(data), len(asm))
	for i := range asm {
		test.ExpectEquality(t, data[i], asm[i])
	}

	// the hash is of the assembled image, not of the source text
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(asm)))
}

func TestAssemblyError(t *testing.T) {
	fn := writeFile(t, "broken.asm", []byte("lda #$100\n"))

	ld, err := romloader.NewLoader(fn)
	test.DemandSuccess(t, err)

	_, _, err = ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ld.HasLoaded(), false)
}

func TestLoadIsCached(t *testing.T) {
	img := []byte{0xff}
	fn := writeFile(t, "demo.rom", img)

	ld, err := romloader.NewLoader(fn)
	test.DemandSuccess(t, err)

	_, _, err = ld.Load()
	test.DemandSuccess(t, err)

	// removing the file proves that the second load is served from the
	// loader and not from disk
	test.DemandSuccess(t, os.Remove(fn))

	origin, data, err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, origin, romloader.DefaultOrigin)
	test.DemandEquality(t, len(data), 1)
	test.ExpectEquality(t, data[0], uint8(0xff))
}

func TestFileExtensions(t *testing.T) {
	// extension matching is case insensitive
	ld, err := romloader.NewLoader("DEMO.BIN")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.IsSource, false)

	ld, err = romloader.NewLoader("demo.S")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ld.IsSource, true)

	_, err = romloader.NewLoader("demo.txt")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romloader.UnrecognisedExtension))
}

func TestMissingFile(t *testing.T) {
	ld, err := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	test.DemandSuccess(t, err)

	_, _, err = ld.Load()
	test.ExpectFailure(t, err)
}

func TestHashValidation(t *testing.T) {
	img := []byte{0xa9, 0x07, 0xff}
	fn := writeFile(t, "demo.bin", img)

	// a correct expected hash loads without complaint
	ld, err := romloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(img))
	_, _, err = ld.Load()
	test.ExpectSuccess(t, err)

	// a wrong expected hash refuses the image
	ld, err = romloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	ld.Hash = "0000000000000000000000000000000000000000"
	_, _, err = ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ld.HasLoaded(), false)
}

func TestShortName(t *testing.T) {
	ld, err := romloader.NewLoader(filepath.Join("roms", "demo.bin"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.ShortName(), "demo")
}
