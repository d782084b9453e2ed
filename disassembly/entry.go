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
	"strings"

	"github.com/heliosemu/helios/hardware/cpu/execution"
	"github.com/heliosemu/helios/hardware/cpu/instructions"
)

// Entry is a disassembled instruction. the string fields are the display
// forms of the information in the Result field.
type Entry struct {
	Result execution.Result

	Address  string
	Bytecode string
	Mnemonic string
	Operand  string
}

// String returns the Entry as a single line suitable for a listing.
func (e Entry) String() string {
	return strings.TrimRight(fmt.Sprintf("%s  %-8s  %s %s", e.Address, e.Bytecode, e.Mnemonic, e.Operand), " ")
}

// FormatResult converts an execution result into its display form. the
// result does not need to have come from a real execution, the decode
// functions in this package synthesise results from static bytes, but it
// must be internally consistent. a nil definition produces a data entry with
// the mnemonic ???.
func FormatResult(result execution.Result) Entry {
	e := Entry{
		Result:  result,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	if result.Defn == nil {
		e.Mnemonic = "???"
		return e
	}

	e.Mnemonic = result.Defn.Mnemonic

	// bytecode and operand are built according to the number of bytes the
	// definition expects and the number actually read. a shortfall can only
	// happen when the decode ran off the end of an image, in which instance
	// the missing bytes are shown as ??
	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			operand := result.InstructionData
			e.Operand = fmt.Sprintf("$%04x", operand)
			e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.Defn.OpCode, operand&0x00ff, (operand&0xff00)>>8)
		case 2:
			operand := result.InstructionData
			e.Operand = fmt.Sprintf("$??%02x", operand)
			e.Bytecode = fmt.Sprintf("%02x %02x ??", result.Defn.OpCode, operand&0x00ff)
		case 1:
			e.Operand = "$????"
			e.Bytecode = fmt.Sprintf("%02x ?? ??", result.Defn.OpCode)
		}
	case 2:
		switch result.ByteCount {
		case 2:
			operand := result.InstructionData
			e.Operand = fmt.Sprintf("$%02x", operand)
			e.Bytecode = fmt.Sprintf("%02x %02x", result.Defn.OpCode, operand&0x00ff)
		case 1:
			e.Operand = "$??"
			e.Bytecode = fmt.Sprintf("%02x ??", result.Defn.OpCode)
		}
	case 1:
		e.Bytecode = fmt.Sprintf("%02x", result.Defn.OpCode)
	}

	e.Operand = addrModeDecoration(e.Operand, result.Defn.AddressingMode)

	return e
}

// add decoration to the operand string according to the addressing mode.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	switch mode {
	case instructions.Immediate:
		return fmt.Sprintf("#%s", operand)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s,X", operand)
	}
	return operand
}
