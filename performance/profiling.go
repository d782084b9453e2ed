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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/heliosemu/helios/curated"
)

// Profile is used to specify the type of profiles to be generated by
// RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined with bitwise-or.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << (iota - 1)
	ProfileMem
	ProfileAll = ProfileCPU | ProfileMem
)

// ParseProfileString converts a comma separated list of profile names into
// a Profile value. Recognised names are NONE, CPU, MEM and ALL
// (case-insensitive).
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone

	for _, t := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "NONE":
			// NONE in a list of other values is not an error, just pointless
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "ALL":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("profile: unrecognised profile (%s)", t)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function, generating the requested profile
// types. Profiles are written to the current directory, named after the tag.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", tag))
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()

	if profile&ProfileMem == ProfileMem {
		f, merr := os.Create(fmt.Sprintf("%s_mem.profile", tag))
		if merr != nil {
			return curated.Errorf("profile: %v", merr)
		}
		defer f.Close()

		runtime.GC()
		merr = pprof.WriteHeapProfile(f)
		if merr != nil {
			return curated.Errorf("profile: %v", merr)
		}
	}

	return err
}
