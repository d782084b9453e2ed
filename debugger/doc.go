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

// Package debugger is a terminal frontend for stepping through programs
// running on the emulated machine.
//
// The debugger is driven through an implementation of the Terminal interface,
// defined in the terminal sub-package. The prompt shows a static decode of
// the instruction about to be executed and an empty input line steps the
// machine, so leaning on the return key walks through a program one
// instruction at a time.
//
// The command set is flat and is described by the HELP command. Output from
// the DBG instruction is printed to the terminal as it happens, including
// while the machine is running freely after the RUN command. A running
// machine returns control to the prompt when the program halts or crashes the
// CPU, or when the user interrupts it.
package debugger
