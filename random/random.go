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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of time used to vary random numbers as the emulation
// progresses. Implemented by the console.
type Clock interface {
	Cycles() int64
}

// Random is a random number generator that is sensitive to time within the
// emulation rather than wall-clock time. Two instances at the same point of
// execution produce the same values when ZeroSeed is set, which is what
// regression tests want.
type Random struct {
	clock Clock

	// use a zero base seed rather than the random base seed. random numbers
	// become predictable and repeatable.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// The clock can be attached later if it does not exist yet.
func NewRandom() *Random {
	return &Random{}
}

// AttachClock connects the emulation's clock to the random number source.
func (rnd *Random) AttachClock(clock Clock) {
	rnd.clock = clock
}

// new RNG from the standard library.
func (rnd *Random) rand() *rand.Rand {
	var cycles int64
	if rnd.clock != nil {
		cycles = rnd.clock.Cycles()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(cycles))
	}
	return rand.New(rand.NewSource(baseSeed + cycles))
}

// Intn returns a random integer in the range 0 to n.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
