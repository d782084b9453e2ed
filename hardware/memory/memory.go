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

package memory

import (
	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/hardware/memory/memorymap"
)

// sentinel error returned by LoadProgram when the image does not fit.
const ProgramTooLarge = "memory: program image of %d bytes does not fit at origin 0x%04x"

// VideoMonitor is implemented by whatever wants to observe writes into the
// video area as they happen. In practice this is the display engine.
type VideoMonitor interface {
	VideoWrite(address uint16, data uint8)
}

// Bus is the machine's 64KiB address space. All areas of the memory map live
// in the one flat array; the video and audio areas are ordinary memory that
// other parts of the machine observe.
//
// The Bus cannot fail. Read and Write return errors only to satisfy the
// cpubus.Memory interface.
type Bus struct {
	ram [0x10000]uint8

	// the producer cursor for the audio event ring. the next WriteEvent()
	// lands at this offset from the top of the audio area.
	ringCursor int

	video VideoMonitor
}

// NewBus is the preferred method of initialisation for the Bus type. Memory
// is zeroed.
func NewBus() *Bus {
	return &Bus{}
}

// AttachVideo connects a video monitor to the bus. Only one monitor can be
// attached at a time.
func (mem *Bus) AttachVideo(video VideoMonitor) {
	mem.video = video
}

// Clear zeroes all of memory and rewinds the audio ring cursor.
func (mem *Bus) Clear() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	mem.ringCursor = 0
}

// Reset the bus for a new run of the loaded program. Memory contents are
// left alone, only the ring cursor rewinds.
func (mem *Bus) Reset() {
	mem.ringCursor = 0
}

// Read implements the cpubus.Memory interface. Every address is readable;
// never-written addresses read as zero.
func (mem *Bus) Read(address uint16) (uint8, error) {
	return mem.ram[address], nil
}

// Write implements the cpubus.Memory interface. Every address is writable.
// Writes into the video area are forwarded to the attached video monitor.
func (mem *Bus) Write(address uint16, data uint8) error {
	mem.ram[address] = data

	if mem.video != nil && memorymap.MapArea(address) == memorymap.Video {
		mem.video.VideoWrite(address, data)
	}

	return nil
}

// WriteEvent implements the cpubus.Memory interface. The event byte is
// written to the next slot of the audio ring and the producer cursor
// advances. When the ring is full the oldest slot is overwritten; slot loss
// is accepted and is not an error.
func (mem *Bus) WriteEvent(data uint8) error {
	mem.ram[memorymap.OriginAudio+uint16(mem.ringCursor)] = data
	mem.ringCursor = (mem.ringCursor + 1) % memorymap.AudioRingSize
	return nil
}

// EventCursor returns the producer cursor for the audio event ring. The
// consumer chases this value.
func (mem *Bus) EventCursor() int {
	return mem.ringCursor
}

// ReadEvent returns the event byte at the given ring offset along with the
// offset of the following slot.
func (mem *Bus) ReadEvent(cursor int) (uint8, int) {
	cursor = cursor % memorymap.AudioRingSize
	return mem.ram[memorymap.OriginAudio+uint16(cursor)], (cursor + 1) % memorymap.AudioRingSize
}

// ReadVector reads the 16-bit little-endian word at the given address.
// Intended for the reset and IRQ vectors but works anywhere.
func (mem *Bus) ReadVector(address uint16) uint16 {
	lo := uint16(mem.ram[address])
	hi := uint16(mem.ram[address+1])
	return (hi << 8) | lo
}

// LoadProgram copies a program image into memory at the stated origin. The
// image must fit below the top of memory.
//
// The video monitor is not notified of image bytes that land in the video
// area. Loading is not drawing; the display engine starts from a clean state
// on the reset that follows a load.
func (mem *Bus) LoadProgram(origin uint16, data []uint8) error {
	if len(data) > 0x10000-int(origin) {
		return curated.Errorf(ProgramTooLarge, len(data), origin)
	}

	copy(mem.ram[origin:int(origin)+len(data)], data)

	return nil
}
