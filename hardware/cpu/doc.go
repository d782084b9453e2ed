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

// Package cpu emulates the processor at the heart of the Helios machine.
// Like the 8-bit processors it is modelled on, the CPU executes instructions
// according to the single byte value read from the address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table. The instruction definition for that opcode is then used
// to move execution of the program forward.
//
// Instances of the CPU type require an implementation of cpubus.Memory as
// the second argument to NewCPU(). The Memory interface defines the memory
// operations required by the CPU. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction.
//
// Let's assume mem is an instance of the Memory interface loaded with a
// valid program.
//
//	mc := cpu.NewCPU(nil, mem)
//	mc.Reset()
//	mc.LoadPCIndirect(memorymap.AddrReset)
//
//	numCycles := 0
//	numInstructions := 0
//
//	for mc.State() == cpu.Running {
//		mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		numInstructions++
//	}
//
// The above program does nothing interesting except to show how
// ExecuteInstruction() can be used to pump information to a callback
// function. The console emulation uses this to keep the audio and video
// engines in step with the CPU clock. See the hardware package for details.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for
// more information. Very useful for debuggers.
package cpu
