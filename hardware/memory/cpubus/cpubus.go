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

// Package cpubus defines the operations for the memory system when accessed
// from the CPU. Keeping the interface in its own package means the CPU does
// not need to know anything about the concrete memory implementation, which
// is convenient for testing the CPU against mock memory.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Every address is readable and writable; implementations never fail from a
// bad address. The error returns exist for implementations that sit on
// fallible plumbing.
//
// WriteEvent() appends a sound event to the audio ring, advancing the ring
// cursor. It is the port used by the SND instruction. Plain Write() calls
// into the audio area are legal but do not move the cursor.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	WriteEvent(data uint8) error
}
