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

package instructions

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. Undefined opcodes are nil.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	add := func(opcode uint8, mnemonic string, mode AddressingMode, cycles int, effect EffectCategory) {
		defs[opcode] = &Definition{
			OpCode:         opcode,
			Mnemonic:       mnemonic,
			Bytes:          1 + mode.OperandBytes(),
			Cycles:         cycles,
			AddressingMode: mode,
			Effect:         effect,
		}
	}

	// loads
	add(0xa9, "LDA", Immediate, 2, Read)
	add(0xa5, "LDA", ZeroPage, 3, Read)
	add(0xb5, "LDA", ZeroPageIndexedX, 4, Read)
	add(0xad, "LDA", Absolute, 4, Read)
	add(0xa2, "LDX", Immediate, 2, Read)
	add(0xa0, "LDY", Immediate, 2, Read)

	// stores
	add(0x85, "STA", ZeroPage, 3, Write)
	add(0x95, "STA", ZeroPageIndexedX, 4, Write)
	add(0x8d, "STA", Absolute, 4, Write)
	add(0x86, "STX", ZeroPage, 3, Write)
	add(0x84, "STY", ZeroPage, 3, Write)

	// register transfers
	add(0xaa, "TAX", Implied, 2, Read)
	add(0xa8, "TAY", Implied, 2, Read)
	add(0x8a, "TXA", Implied, 2, Read)
	add(0x98, "TYA", Implied, 2, Read)

	// arithmetic and logic
	add(0x69, "ADC", Immediate, 2, Read)
	add(0xe9, "SBC", Immediate, 2, Read)
	add(0x29, "AND", Immediate, 2, Read)
	add(0x09, "ORA", Immediate, 2, Read)
	add(0x49, "EOR", Immediate, 2, Read)

	// increment/decrement of memory
	add(0xe6, "INC", ZeroPage, 5, RMW)
	add(0xc6, "DEC", ZeroPage, 5, RMW)

	// increment/decrement of registers
	add(0xe8, "INX", Implied, 2, Read)
	add(0xc8, "INY", Implied, 2, Read)
	add(0xca, "DEX", Implied, 2, Read)
	add(0x88, "DEY", Implied, 2, Read)

	// comparisons
	add(0xc9, "CMP", Immediate, 2, Read)
	add(0xe0, "CPX", ZeroPage, 3, Read)
	add(0xc0, "CPY", ZeroPage, 3, Read)

	// flow
	add(0x4c, "JMP", Absolute, 3, Flow)
	add(0x20, "JSR", Absolute, 6, Subroutine)
	add(0x60, "RTS", Implied, 6, Subroutine)

	// conditional jumps. the target is an absolute address, not a relative
	// offset
	add(0xf0, "BEQ", Absolute, 3, Branch)
	add(0xd0, "BNE", Absolute, 3, Branch)
	add(0xb0, "BCS", Absolute, 3, Branch)
	add(0x90, "BCC", Absolute, 3, Branch)
	add(0x30, "BMI", Absolute, 3, Branch)
	add(0x10, "BPL", Absolute, 3, Branch)

	// control. BRK performs no interrupt sequence in this machine so it is
	// costed the same as NOP
	add(0xea, "NOP", Implied, 2, Control)
	add(0x00, "BRK", Implied, 2, Control)
	add(0xff, "HLT", Implied, 2, Control)

	// custom instructions
	add(0xde, "DBG", Absolute, 4, Diagnostic)
	add(0x42, "SND", Immediate, 2, Sound)

	return defs
}
