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

package instructions_test

import (
	"testing"

	"github.com/heliosemu/helios/hardware/cpu/instructions"
	"github.com/heliosemu/helios/test"
)

func TestTableCompleteness(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	ct := 0
	for _, d := range defs {
		if d != nil {
			ct++
		}
	}
	test.ExpectEquality(t, ct, 43)
}

func TestDefinitionConsistency(t *testing.T) {
	for op, d := range instructions.GetDefinitions() {
		if d == nil {
			continue
		}

		test.ExpectEquality(t, d.OpCode, uint8(op), d.Mnemonic)
		test.ExpectEquality(t, d.Bytes, 1+d.AddressingMode.OperandBytes(), d.Mnemonic)
		test.ExpectSuccess(t, d.Cycles > 0, d.Mnemonic)
	}
}

func TestWellKnownOpcodes(t *testing.T) {
	defs := instructions.GetDefinitions()

	test.ExpectEquality(t, defs[0xa9].Mnemonic, "LDA")
	test.ExpectEquality(t, defs[0xa9].AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defs[0xa9].Bytes, 2)

	test.ExpectEquality(t, defs[0x8d].Mnemonic, "STA")
	test.ExpectEquality(t, defs[0x8d].AddressingMode, instructions.Absolute)
	test.ExpectEquality(t, defs[0x8d].Bytes, 3)

	// CPX and CPY read their comparison value from the zero page
	test.ExpectEquality(t, defs[0xe0].Mnemonic, "CPX")
	test.ExpectEquality(t, defs[0xe0].AddressingMode, instructions.ZeroPage)
	test.ExpectEquality(t, defs[0xc0].Mnemonic, "CPY")
	test.ExpectEquality(t, defs[0xc0].AddressingMode, instructions.ZeroPage)

	// conditional jumps carry a full 16-bit target
	test.ExpectEquality(t, defs[0xf0].Mnemonic, "BEQ")
	test.ExpectEquality(t, defs[0xf0].Bytes, 3)
	test.ExpectSuccess(t, defs[0xf0].IsBranch())
	test.ExpectSuccess(t, !defs[0x4c].IsBranch())

	// the custom instructions
	test.ExpectEquality(t, defs[0xff].Mnemonic, "HLT")
	test.ExpectEquality(t, defs[0xde].Mnemonic, "DBG")
	test.ExpectEquality(t, defs[0xde].AddressingMode, instructions.Absolute)
	test.ExpectEquality(t, defs[0x42].Mnemonic, "SND")
	test.ExpectEquality(t, defs[0x42].AddressingMode, instructions.Immediate)

	// 0x02 is the canonical example of an undefined opcode
	test.ExpectSuccess(t, defs[0x02] == nil)
}
