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

package cpu

import (
	"fmt"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/hardware/cpu/execution"
	"github.com/heliosemu/helios/hardware/cpu/instructions"
	"github.com/heliosemu/helios/hardware/cpu/registers"
	"github.com/heliosemu/helios/hardware/instance"
	"github.com/heliosemu/helios/hardware/memory/cpubus"
	"github.com/heliosemu/helios/logger"
)

// State records the operating state of the CPU. the Halted and Crashed
// states are terminal and only a Reset() will return the CPU to Running.
type State int

// List of operating states.
const (
	Running State = iota
	Halted
	Crashed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Crashed:
		return "crashed"
	}
	return "unknown"
}

// Diagnostics is the sink for values read by the DBG instruction.
type Diagnostics interface {
	Diagnostic(address uint16, value uint8)
}

// Sentinal error returned by ExecuteInstruction() when the opcode read from
// the program counter has no entry in the instruction table.
const UnknownOpcode = "cpu: unknown opcode (%#02x) at (0x%04x)"

// Sentinal error returned by ExecuteInstruction() for instruction
// definitions with an addressing mode the CPU does not know how to resolve.
const UnsupportedAddressingMode = "cpu: unsupported addressing mode for %s"

// CPU implements the processor at the heart of the machine. Register logic
// is implemented by the types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// cycleCallback is called once for every cycle consumed during
	// execution, allowing the rest of the machine to keep pace with the CPU
	cycleCallback func() error

	// the operating state of the CPU. see State() function
	state State

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset. we use this fact to help us decide
	// whether the CPU has just been reset (see HasReset() function)
	LastResult execution.Result

	// Interrupted indicates that the CPU has been put into a state outside
	// of its normal operation. When true work may be done on the CPU that
	// would otherwise be considered an error. Resets to false on every call
	// to ExecuteInstruction()
	Interrupted bool

	// diag receives the values read by the DBG instruction. a nil sink
	// means DBG output is discarded
	diag Diagnostics
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU should be Reset() before first use.
//
// A nil instance is tolerated and results in a CPU that always initialises
// to a deterministic state.
func NewCPU(instance *instance.Instance, mem cpubus.Memory) *CPU {
	return &CPU{
		instance:     instance,
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new Memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// AttachDiagnostics connects a sink for the DBG instruction. A nil sink
// means DBG output is discarded.
func (mc *CPU) AttachDiagnostics(diag Diagnostics) {
	mc.diag = diag
}

func (mc *CPU) String() string {
	// A, X, Y and SP include their own labels in their string output
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
}

// State returns the current operating state of the CPU.
func (mc *CPU) State() State {
	return mc.state
}

// Reset reinitialises all registers and returns the CPU to the Running
// state. Does not load PC with the reset vector. Use
// cpu.LoadPCIndirect(memorymap.AddrReset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Interrupted = true
	mc.state = Running

	// checking for instance == nil because it's possible for NewCPU to be
	// called with a nil instance (test packages)
	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		mc.A.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.X.Load(uint8(mc.instance.Random.Intn(0x100)))
		mc.Y.Load(uint8(mc.instance.Random.Intn(0x100)))
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}

	// the program counter and stack pointer are never randomised. programs
	// rely on the stack descending from the top of the stack page and on
	// execution starting at the reset vector
	mc.PC.Load(0)
	mc.SP.Load(0xff)

	mc.Status.Reset()
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()

	mc.cycleCallback = nil
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && mc.LastResult.Defn == nil
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf("cpu: load PC indirect invalid mid-instruction")
	}

	// read 16 bit address from specified indirect address

	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		return err
	}

	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		return err
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf("cpu: load PC invalid mid-instruction")
	}

	mc.PC.Load(directAddress)

	return nil
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// read8BitZeroPage returns 8bit value from the specified zero-page address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8BitZeroPage(address uint8) (uint8, error) {
	val, err := mc.mem.Read(uint16(address))
	if err != nil {
		return 0, err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// write8Bit writes 8 bits to the specified address. there are no side
// effects on the state of the CPU which means that *cycleCallback must be
// called by the calling function as appropriate*.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit returns 16bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case newOpcode:
		// look up definition
		mc.LastResult.Defn = mc.instructions[v]

		// a missing definition is fatal to the machine
		if mc.LastResult.Defn == nil {
			return curated.Errorf(UnknownOpcode, v, mc.PC.Address()-1)
		}

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	return nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field, once before each call to cycleCallback
func (mc *CPU) read16BitPC() error {
	lo, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	// update instruction data with partial operand
	mc.LastResult.InstructionData = uint16(lo)

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	hi, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	// update instruction data with complete operand
	mc.LastResult.InstructionData = (uint16(hi) << 8) | uint16(lo)

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	return nil
}

// branch sets the PC to the target address if the flag is true. branches in
// this machine are conditional jumps with an absolute target, so a taken
// branch consumes no additional cycles.
func (mc *CPU) branch(flag bool, address uint16) {
	if flag {
		mc.PC.Load(address)
	}
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps the CPU forward one instruction. The basic
// process when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. execute the instruction on the data, updating registers and flags
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run, thereby allowing the rest of the machine
// to operate: the console uses this to keep the audio and video engines in
// step with the CPU.
//
// The cycleCallback argument should *never* be nil. Use the
// NilCycleCallback() function in this package if you want a nil effect.
//
// If the CPU is in the Halted or Crashed state the function does nothing and
// returns no error. The terminal states are sticky and are only cleared by
// Reset().
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	// do nothing if the CPU is no longer running
	if mc.state != Running {
		return nil
	}

	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if !mc.LastResult.Final && !mc.Interrupted {
		return curated.Errorf("cpu: starting a new instruction is invalid mid-instruction")
	}

	// reset Interrupted flag
	mc.Interrupted = false

	// update cycle callback
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	var err error

	// read next instruction (end cycle part of read8BitPC)
	// +1 cycle
	err = mc.read8BitPC(newOpcode)
	if err != nil {
		// even when there is an error we need to update some LastResult
		// field values before returning the error. the calling function
		// might still want to make use of LastResult and there's no reason
		// to disagree (see disassembly package for an example of this)

		// the number of bytes read is by definition one
		mc.LastResult.ByteCount = 1

		// this is the final byte of the instruction
		mc.LastResult.Final = true

		// an opcode without an entry in the instruction table crashes the
		// machine
		if curated.Is(err, UnknownOpcode) {
			mc.state = Crashed
		}

		return err
	}

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is read from the program for immediate mode and from memory for
	// the other modes. note that for instructions which are
	// read-modify-write, the value will change during execution and be used
	// to write back to memory
	var value uint8

	// whether the data-read should be a zero page read or not
	var zeroPage bool

	defn := mc.LastResult.Defn

	// get address to use when reading/writing from/to memory (note that in
	// the case of immediate addressing, we are actually getting the value to
	// use in the instruction, not the address)
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes. however, the next
		// byte is read but the PC is not incremented
		// +1 cycle
		_, err = mc.read8Bit(mc.PC.Address())
		if err != nil {
			return err
		}

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		// therefore, we don't set the address and we read the value through
		// the PC
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.ZeroPage:
		zeroPage = true

		// while we must treat the value as an address (ie. as uint16) we
		// actually only read an 8 bit value so we store the value as uint8
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.ZeroPageIndexedX:
		zeroPage = true

		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// phantom read from base address before index adjustment
		// +1 cycle
		_, err = mc.read8Bit(mc.LastResult.InstructionData)
		if err != nil {
			return err
		}

		// index adjustment uses 8bit addition. the indexed address never
		// extends past the zero page
		indirectAddress := uint8(mc.LastResult.InstructionData)
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.X.Value(), false)
		address = mc.acc8.Address()

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			err := mc.read16BitPC()
			if err != nil {
				return err
			}
			address = mc.LastResult.InstructionData
		}

		// else... for JSR, addresses are read slightly differently so we
		// defer this part of the operation to the operator switch below

	default:
		mc.state = Crashed
		return curated.Errorf(UnsupportedAddressingMode, defn.Mnemonic)
	}

	// read value from memory using address found in AddressingMode switch
	// above only when:
	// a) addressing mode is not 'implied' or 'immediate'
	//	- for immediate modes, we already have the value in lieu of an address
	//  - for implied modes, we don't need a value
	// b) instruction is 'Read', 'Diagnostic' or 'RMW'
	//  - for write modes, we only use the address to write a value we already have
	//  - for flow modes, the use of the address is very specific
	if !(defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate) {
		if defn.Effect == instructions.Read || defn.Effect == instructions.Diagnostic {
			// +1 cycle
			if zeroPage {
				value, err = mc.read8BitZeroPage(uint8(address))
			} else {
				value, err = mc.read8Bit(address)
			}
			if err != nil {
				return err
			}
		} else if defn.Effect == instructions.RMW {
			// +1 cycle
			if zeroPage {
				value, err = mc.read8BitZeroPage(uint8(address))
			} else {
				value, err = mc.read8Bit(address)
			}
			if err != nil {
				return err
			}

			// phantom write
			// +1 cycle
			err = mc.write8Bit(address, value)
			if err != nil {
				return err
			}

			mc.LastResult.Cycles++
			err = mc.cycleCallback()
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on the mnemonic
	switch defn.Mnemonic {
	case "NOP":
		// does nothing

	case "BRK":
		// a non-fatal no-op in this machine. there is no interrupt sequence
		// to dispatch

	case "HLT":
		mc.state = Halted
		logger.Logf(mc.instance, "CPU", "HLT instruction (0x%04x)", mc.LastResult.Address)

	case "LDA":
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "LDX":
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "LDY":
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case "STA":
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "STX":
		// +1 cycle
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "STY":
		// +1 cycle
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "TAX":
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "TAY":
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case "TXA":
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "TYA":
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "ADC":
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "SBC":
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "AND":
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "ORA":
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "EOR":
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "INC":
		r := mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case "DEC":
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case "INX":
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "INY":
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case "DEX":
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "DEY":
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case "CMP":
		r := mc.acc8
		r.Load(mc.A.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case "CPX":
		r := mc.acc8
		r.Load(mc.X.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case "CPY":
		r := mc.acc8
		r.Load(mc.Y.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case "JMP":
		mc.PC.Load(address)

	case "BEQ":
		mc.branch(mc.Status.Zero, address)

	case "BNE":
		mc.branch(!mc.Status.Zero, address)

	case "BCS":
		mc.branch(mc.Status.Carry, address)

	case "BCC":
		mc.branch(!mc.Status.Carry, address)

	case "BMI":
		mc.branch(mc.Status.Sign, address)

	case "BPL":
		mc.branch(!mc.Status.Sign, address)

	case "JSR":
		// +2 cycles
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		err = mc.read8BitPC(hiNibble)
		if err != nil {
			return err
		}

		// the PC is now pointing at the instruction after the JSR. that is
		// the address that RTS will return to, so that is the address we
		// push onto the stack, high byte first

		// internal cycle before the stack operation begins
		// +1 cycle
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// push MSB of PC onto stack, and decrement SP
		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()>>8))
		if err != nil {
			return err
		}
		mc.SP.Add(0xff, false)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// push LSB of PC onto stack, and decrement SP
		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()))
		if err != nil {
			return err
		}
		mc.SP.Add(0xff, false)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// perform jump
		address = mc.LastResult.InstructionData
		mc.PC.Load(address)

	case "RTS":
		// internal cycle before the stack operation begins
		// +1 cycle
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// increment SP and pop LSB of the return address
		// +1 cycle
		mc.SP.Add(1, false)
		var lo uint8
		lo, err = mc.read8Bit(mc.SP.Address())
		if err != nil {
			return err
		}

		// increment SP and pop MSB of the return address
		// +1 cycle
		mc.SP.Add(1, false)
		var hi uint8
		hi, err = mc.read8Bit(mc.SP.Address())
		if err != nil {
			return err
		}

		// the popped address is the address of the instruction after the
		// JSR. unlike some machines of this lineage, no adjustment is
		// required
		mc.PC.Load((uint16(hi) << 8) | uint16(lo))

		// +1 cycle
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "DBG":
		// the value has already been read from the operand address. emit it
		// to the diagnostic sink. no register, flag or bus effect
		if mc.diag != nil {
			mc.diag.Diagnostic(address, value)
		}

	case "SND":
		// queue the event byte in the audio region of memory. no register
		// or flag effect
		err = mc.mem.WriteEvent(value)
		if err != nil {
			return err
		}

	default:
		return curated.Errorf("cpu: unknown mnemonic (%s)", defn.Mnemonic)
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		err = mc.write8Bit(address, value)
		if err != nil {
			return err
		}

		// +1 cycle
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}
	}

	// finalise result
	if mc.LastResult.Defn != nil {
		mc.LastResult.Final = true
	}

	// validity check. there's no need to enable unless you've just added a
	// new opcode and want to check the validity of the definition.
	// err = mc.LastResult.IsValid()
	// if err != nil {
	// 	return err
	// }

	return nil
}
