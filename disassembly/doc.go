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

// Package disassembly decodes byte sequences back into instructions.
//
// decoding is linear and table driven. a byte with no entry in the
// instruction table is presented as data rather than stopping the decode, so
// regions of a program that hold values rather than code simply appear as
// unknown rows in the listing.
//
// FromProgram() decodes a static image and is used by the disassemble
// command line mode. FromBus() decodes from live machine memory and serves
// the debugger. FormatResult() converts a single execution result into its
// display form and is how the debugger echoes the last stepped instruction.
package disassembly
