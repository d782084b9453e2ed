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

package disassembly

import (
	"fmt"
	"io"

	"github.com/heliosemu/helios/hardware/cpu/execution"
	"github.com/heliosemu/helios/hardware/cpu/instructions"
	"github.com/heliosemu/helios/hardware/memory/cpubus"
)

// Disassembly is the decoding of a sequence of bytes into a list of entries.
type Disassembly struct {
	Entries []Entry
}

// Write the disassembly listing, one line per entry.
func (dsm *Disassembly) Write(w io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}

// decode one instruction. the read function returns the byte at an address
// and false once the decode has moved outside the caller's range. the second
// return value is the number of bytes consumed, which is never zero.
func decode(defs []*instructions.Definition, addr uint16, read func(uint16) (uint8, bool)) (Entry, int) {
	opcode, ok := read(addr)
	if !ok {
		// the caller makes sure the first byte is in range
		panic("decode called with no bytes available")
	}

	result := execution.Result{
		Address:   addr,
		Defn:      defs[opcode],
		ByteCount: 1,
		Final:     true,
	}

	if result.Defn == nil {
		e := FormatResult(result)

		// a data entry has no definition to take the bytecode from
		e.Bytecode = fmt.Sprintf("%02x", opcode)
		return e, 1
	}

	// operand bytes assemble least significant byte first
	for i := 1; i < result.Defn.Bytes; i++ {
		v, ok := read(addr + uint16(i))
		if !ok {
			result.Final = false
			break
		}
		result.InstructionData |= uint16(v) << (8 * (i - 1))
		result.ByteCount++
	}

	return FormatResult(result), result.ByteCount
}

// FromProgram decodes a static program image loaded at the origin address.
// never returns an error of any kind. bytes that do not correspond to an
// instruction appear as data entries.
func FromProgram(origin uint16, data []uint8) *Disassembly {
	dsm := &Disassembly{}
	defs := instructions.GetDefinitions()

	read := func(address uint16) (uint8, bool) {
		idx := int(address) - int(origin)
		if idx < 0 || idx >= len(data) {
			return 0, false
		}
		return data[idx], true
	}

	i := 0
	for i < len(data) {
		e, consumed := decode(defs, origin+uint16(i), read)
		dsm.Entries = append(dsm.Entries, e)
		i += consumed
	}

	return dsm
}

// FromBus decodes numInstructions instructions from live machine memory,
// starting at the origin address. entries for data bytes count as an
// instruction for this purpose.
func FromBus(mem cpubus.Memory, origin uint16, numInstructions int) (*Disassembly, error) {
	dsm := &Disassembly{}
	defs := instructions.GetDefinitions()

	// a failed read reports success to the decoder and the entry built from
	// it is discarded below. the bus in this machine cannot fail a read but
	// the interface allows for implementations that can
	var readErr error
	read := func(address uint16) (uint8, bool) {
		v, err := mem.Read(address)
		if err != nil {
			readErr = err
			return 0, true
		}
		return v, true
	}

	addr := origin
	for n := 0; n < numInstructions; n++ {
		e, consumed := decode(defs, addr, read)
		if readErr != nil {
			return nil, readErr
		}
		dsm.Entries = append(dsm.Entries, e)
		addr += uint16(consumed)
	}

	return dsm, nil
}
