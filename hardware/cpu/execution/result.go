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

package execution

import (
	"github.com/heliosemu/helios/hardware/cpu/instructions"
)

// Result records the details of the most recently executed instruction. The
// information is principally for the benefit of disassemblers and debuggers.
type Result struct {
	// the address the instruction was read from
	Address uint16

	// a nil Defn means the opcode at Address has no entry in the instruction
	// table. the other fields are meaningless in that case
	Defn *instructions.Definition

	// the operand of the instruction, if any. single byte operands occupy
	// the low byte of the field
	InstructionData uint16

	// the number of cycles the instruction has consumed so far. by the time
	// the result is Final this will equal Defn.Cycles
	Cycles int

	// the number of bytes read during decoding, including the opcode itself
	ByteCount int

	// error string. filled in when execution fails part way through an
	// instruction
	Error string

	// whether execution of the instruction has completed
	Final bool
}

// Reset nullifies all fields of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.Cycles = 0
	r.ByteCount = 0
	r.Error = ""
	r.Final = false
}
