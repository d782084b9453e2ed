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

package debugger_test

import (
	"crypto/sha1"
	"fmt"
)

func (trm *mockTerm) testHelp() {
	trm.sndInput("HELP")
	trm.cmpOutput("AUDIO DISASM HALT HELP LOG MEM POKE QUIT REGS RESET RUN STEP VIDEO VIZ")

	trm.sndInput("HELP STEP")
	trm.cmpOutput("STEP: Step the machine forward. STEP [count]. an empty line also steps")

	// command matching is case insensitive
	trm.sndInput("help regs")
	trm.cmpOutput("REGS: Display the CPU registers and the machine cycle count")

	trm.sndInput("HELP FOO")
	trm.cmpOutput("no help for FOO")
}

func (trm *mockTerm) testUnknownCommand() {
	// the command is reported as it was typed, not in its normalised form
	trm.sndInput("foo")
	trm.cmpOutput("debugger: no such command (foo). try HELP")
}

func (trm *mockTerm) testRegisters() {
	trm.sndInput("REGS")
	trm.cmpOutput(
		"PC=0x0000 A=0x0 X=0x0 Y=0x0 SP=0xff SR=sv----zc",
		"cycles=0 state=running",
	)
}

func (trm *mockTerm) testStep() {
	// with nothing attached the machine reads BRK instructions from empty
	// memory
	trm.sndInput("STEP")
	trm.cmpOutput("$0000  00        BRK")

	// an empty line also steps
	trm.sndInput("")
	trm.cmpOutput("$0001  00        BRK")

	trm.sndInput("STEP x")
	trm.cmpOutput("debugger: STEP count must be a positive number (x)")

	trm.sndInput("STEP 0")
	trm.cmpOutput("debugger: STEP count must be a positive number (0)")
}

func (trm *mockTerm) testMemory() {
	trm.sndInput("POKE $80 $ff")
	trm.cmpOutput("$0080 = 0xff")

	// the $ prefix, the 0x prefix and plain decimal all describe the same
	// address
	trm.sndInput("MEM $80")
	trm.cmpOutput("$0080 = 0xff (255)")

	trm.sndInput("MEM 0x80")
	trm.cmpOutput("$0080 = 0xff (255)")

	trm.sndInput("MEM 128")
	trm.cmpOutput("$0080 = 0xff (255)")

	// counts larger than one show a grid
	trm.sndInput("MEM $80 4")
	trm.cmpOutput("$0080  ff 00 00 00")

	trm.sndInput("POKE $80")
	trm.cmpOutput("debugger: wrong number of arguments for POKE. try HELP POKE")

	trm.sndInput("POKE zz 1")
	trm.cmpOutput("debugger: not a valid number (zz)")

	// values must fit in a byte
	trm.sndInput("POKE $80 256")
	trm.cmpOutput("debugger: not a valid number (256)")
}

func (trm *mockTerm) testEngines() {
	trm.sndInput("AUDIO")
	trm.cmpOutput("ch0: sine (off)  ch1: square (off)  ch2: triangle (off)  ch3: noise (off)")

	trm.sndInput("VIDEO")
	trm.cmpOutput("frame 0  writing half A")
}

func (trm *mockTerm) testControlAtPrompt() {
	trm.sndInput("HALT")
	trm.cmpOutput("machine is not running")

	trm.sndInput("DISASM")
	trm.cmpOutput("debugger: no program attached")
}

func (trm *mockTerm) testViz(vizFile string) {
	trm.sndInput("VIZ " + vizFile)
	trm.cmpOutput("machine graph written to " + vizFile)

	// overwriting an existing file asks for confirmation. anything other
	// than an explicit yes is a no
	trm.sndInput("VIZ " + vizFile)
	trm.sndInput("n")
	trm.cmpOutput(vizFile + " not written")

	trm.sndInput("VIZ " + vizFile)
	trm.sndInput("y")
	trm.cmpOutput("machine graph written to " + vizFile)
}

func (trm *mockTerm) testAttach() {
	hash := fmt.Sprintf("%x", sha1.Sum(testProgram))

	trm.sndInput("REGS")
	trm.cmpOutput(
		fmt.Sprintf("program attached (%s)", hash),
		"PC=0x0200 A=0x0 X=0x0 Y=0x0 SP=0xff SR=sv----zc",
		"cycles=0 state=running",
	)
}

func (trm *mockTerm) testDisasm() {
	trm.sndInput("DISASM")
	trm.cmpOutput(
		"$0200  a9 2c     LDA #$2c",
		"$0202  aa        TAX",
		"$0203  8d 00 03  STA $0300",
		"$0206  de 00 03  DBG $0300",
		"$0209  ff        HLT",
	)
}

func (trm *mockTerm) testStepProgram() {
	trm.sndInput("STEP")
	trm.cmpOutput("$0200  a9 2c     LDA #$2c")

	trm.sndInput("")
	trm.cmpOutput("$0202  aa        TAX")

	// the DBG instruction reports through the terminal as it executes
	trm.sndInput("STEP 2")
	trm.cmpOutput(
		"$0203  8d 00 03  STA $0300",
		"DBG $0300 = 0x2c (44)",
		"$0206  de 00 03  DBG $0300",
	)

	trm.sndInput("STEP")
	trm.cmpOutput("$0209  ff        HLT")

	// stepping beyond the HLT instruction is refused
	trm.sndInput("STEP")
	trm.cmpOutput("machine has halted. use RESET to restart it")
}

func (trm *mockTerm) testLog() {
	trm.sndInput("LOG")
	trm.cmpOutput("CPU: HLT instruction (0x0209)")
}

func (trm *mockTerm) testRegistersAtHalt() {
	trm.sndInput("REGS")
	trm.cmpOutput(
		"PC=0x020a A=0x2c X=0x2c Y=0x0 SP=0xff SR=sv----zc",
		"cycles=14 state=halted",
	)
}

func (trm *mockTerm) testReset() {
	trm.sndInput("RUN")
	trm.cmpOutput("machine has halted. use RESET to restart it")

	trm.sndInput("RESET")
	trm.cmpOutput("machine reset")

	// registers are reinitialised but memory is preserved
	trm.sndInput("REGS")
	trm.cmpOutput(
		"PC=0x0200 A=0x0 X=0x0 Y=0x0 SP=0xff SR=sv----zc",
		"cycles=0 state=running",
	)

	trm.sndInput("MEM $0300")
	trm.cmpOutput("$0300 = 0x2c (44)")
}

func (trm *mockTerm) testRun() {
	trm.sndInput("RUN")
	trm.cmpOutput(
		"DBG $0300 = 0x2c (44)",
		"machine has halted",
	)
}
