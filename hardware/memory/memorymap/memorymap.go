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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case General:
		return "General"
	case Video:
		return "Video"
	case Audio:
		return "Audio"
	}

	return "undefined"
}

// The different memory areas in the machine.
const (
	Undefined Area = iota
	General
	Video
	Audio
)

// The origin and memory top for each area of memory. The areas sit in a
// single flat address space. No address is invalid and no area is ever
// remapped; the areas differ only in which part of the machine observes
// them.
//
// Implementations of the memory areas may need to drag an address down into
// the range of an array. This is done with (address^origin) rather than
// subtraction.
const (
	OriginGeneral = uint16(0x0000)
	MemtopGeneral = uint16(0xefff)
	OriginVideo   = uint16(0xf000)
	MemtopVideo   = uint16(0xfbff)
	OriginAudio   = uint16(0xfc00)
	MemtopAudio   = uint16(0xffff)
)

// Memtop is the top most address of memory in the machine.
const Memtop = uint16(0xffff)

// The two reserved vector addresses at the very top of the address space.
// Both are 16-bit little-endian words. The reset vector seeds the program
// counter at power-on. The IRQ vector is reserved but not acted on.
const (
	AddrReset = uint16(0xfffc)
	AddrIRQ   = uint16(0xfffe)
)

// The stack occupies a single page of the general area. The stack pointer
// provides the low byte of the address.
const OriginStack = uint16(0x0100)

// The number of slots in the audio event ring. The ring begins at
// OriginAudio and deliberately stops short of the vector addresses, which
// share the audio area but are never written by the ring cursor.
const AudioRingSize = int(AddrReset - OriginAudio)

// The size in bytes of the video area. Half of the area is being displayed
// while the other half is being written.
const VideoSize = int(MemtopVideo - OriginVideo + 1)

// MapArea returns the memory area the address falls within. Every address
// maps to an area; there is no undefined gap in the address space.
func MapArea(address uint16) Area {
	if address <= MemtopGeneral {
		return General
	}
	if address <= MemtopVideo {
		return Video
	}
	return Audio
}
