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

import "fmt"

// AddressingMode describes the method by which an instruction's operand
// byte(s) are interpreted.
type AddressingMode int

// List of supported addressing modes. Relative and the indirect modes of the
// wider 6502 family are deliberately absent.
const (
	Implied AddressingMode = iota
	Immediate
	ZeroPage         // zpg
	ZeroPageIndexedX // zpg,X
	Absolute         // abs
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case Absolute:
		return "Absolute"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of operand bytes that follow the opcode
// for the addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied:
		return 0
	case Immediate, ZeroPage, ZeroPageIndexedX:
		return 1
	case Absolute:
		return 2
	}
	return 0
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following categories have a variable effect on the program
	// counter.

	// Flow is the unconditional JMP. Branch is the conditional jumps, which
	// in this machine take an absolute target rather than a relative offset.
	Flow
	Branch
	Subroutine

	// NOP, BRK and HLT.
	Control

	// the custom instructions. Sound is SND, Diagnostic is DBG.
	Sound
	Diagnostic
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Branch:
		return "Branch"
	case Subroutine:
		return "Subroutine"
	case Control:
		return "Control"
	case Sound:
		return "Sound"
	case Diagnostic:
		return "Diagnostic"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
// Definitions are built once and never mutated.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s/%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if the instruction is a conditional jump.
func (defn Definition) IsBranch() bool {
	return defn.Effect == Branch
}
