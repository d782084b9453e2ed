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

package memory_test

import (
	"testing"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/hardware/memory"
	"github.com/heliosemu/helios/hardware/memory/memorymap"
	"github.com/heliosemu/helios/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewBus()

	// never-written addresses read as zero
	d, err := mem.Read(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0)

	d, err = mem.Read(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0)

	test.ExpectSuccess(t, mem.Write(0x0010, 0xab))
	d, err = mem.Read(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0xab)

	// writes are visible across the whole address space, including the
	// observed areas
	test.ExpectSuccess(t, mem.Write(0xf123, 0x05))
	d, err = mem.Read(0xf123)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, 0x05)
}

func TestVectors(t *testing.T) {
	mem := memory.NewBus()

	test.ExpectSuccess(t, mem.Write(memorymap.AddrReset, 0x00))
	test.ExpectSuccess(t, mem.Write(memorymap.AddrReset+1, 0x02))
	test.ExpectEquality(t, mem.ReadVector(memorymap.AddrReset), 0x0200)
}

func TestLoadProgram(t *testing.T) {
	mem := memory.NewBus()

	err := mem.LoadProgram(0x0200, []uint8{0xa9, 0xff, 0xea})
	test.ExpectSuccess(t, err)

	d, _ := mem.Read(0x0200)
	test.ExpectEquality(t, d, 0xa9)
	d, _ = mem.Read(0x0201)
	test.ExpectEquality(t, d, 0xff)
	d, _ = mem.Read(0x0202)
	test.ExpectEquality(t, d, 0xea)

	// an image that runs off the top of memory is rejected
	err = mem.LoadProgram(0xffff, []uint8{0x00, 0x00})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))

	// an image that exactly touches the top of memory is fine
	err = mem.LoadProgram(0xfffe, []uint8{0x00, 0x02})
	test.ExpectSuccess(t, err)
}

func TestEventRing(t *testing.T) {
	mem := memory.NewBus()

	test.ExpectEquality(t, mem.EventCursor(), 0)

	test.ExpectSuccess(t, mem.WriteEvent(0x45))
	test.ExpectEquality(t, mem.EventCursor(), 1)

	d, next := mem.ReadEvent(0)
	test.ExpectEquality(t, d, 0x45)
	test.ExpectEquality(t, next, 1)

	// the event landed at the start of the audio area
	d, _ = mem.Read(memorymap.OriginAudio)
	test.ExpectEquality(t, d, 0x45)
}

func TestEventRingWrap(t *testing.T) {
	mem := memory.NewBus()

	// fill every slot of the ring and then one more
	for i := 0; i < memorymap.AudioRingSize; i++ {
		test.ExpectSuccess(t, mem.WriteEvent(uint8(i)))
	}
	test.ExpectEquality(t, mem.EventCursor(), 0)

	test.ExpectSuccess(t, mem.WriteEvent(0xaa))
	test.ExpectEquality(t, mem.EventCursor(), 1)

	// the oldest slot has been overwritten
	d, _ := mem.ReadEvent(0)
	test.ExpectEquality(t, d, 0xaa)

	// the ring never touches the vector words
	test.ExpectEquality(t, mem.ReadVector(memorymap.AddrReset), 0)
	test.ExpectEquality(t, mem.ReadVector(memorymap.AddrIRQ), 0)
}

type monitor struct {
	writes int
	last   uint16
}

func (m *monitor) VideoWrite(address uint16, data uint8) {
	m.writes++
	m.last = address
}

func TestVideoMonitor(t *testing.T) {
	mem := memory.NewBus()
	mon := &monitor{}
	mem.AttachVideo(mon)

	// general area writes are not forwarded
	test.ExpectSuccess(t, mem.Write(0x1000, 0x01))
	test.ExpectEquality(t, mon.writes, 0)

	// video area writes are
	test.ExpectSuccess(t, mem.Write(0xf000, 0x03))
	test.ExpectEquality(t, mon.writes, 1)
	test.ExpectEquality(t, mon.last, 0xf000)

	test.ExpectSuccess(t, mem.Write(0xfbff, 0x07))
	test.ExpectEquality(t, mon.writes, 2)
	test.ExpectEquality(t, mon.last, 0xfbff)

	// audio area writes are not forwarded to the video monitor
	test.ExpectSuccess(t, mem.Write(0xfc00, 0x01))
	test.ExpectEquality(t, mon.writes, 2)
}
