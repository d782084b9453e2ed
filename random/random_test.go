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

package random_test

import (
	"testing"

	"github.com/heliosemu/helios/random"
	"github.com/heliosemu/helios/test"
)

type stubClock struct {
	cycles int64
}

func (c *stubClock) Cycles() int64 {
	return c.cycles
}

func TestZeroSeed(t *testing.T) {
	clock := &stubClock{}

	a := random.NewRandom()
	a.AttachClock(clock)
	a.ZeroSeed = true

	b := random.NewRandom()
	b.AttachClock(clock)
	b.ZeroSeed = true

	// zero seeded generators attached to the same clock produce the same
	// sequence
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, a.Intn(1000), b.Intn(1000))
		clock.cycles++
	}
}

func TestNoClock(t *testing.T) {
	a := random.NewRandom()

	// a generator without a clock must still work
	v := a.Intn(10)
	test.ExpectSuccess(t, v >= 0 && v < 10)
}
