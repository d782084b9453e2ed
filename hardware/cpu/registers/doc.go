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

// Package registers implements the four types of register found in the CPU:
// the general purpose 8 bit register, used for the accumulator and the two
// index registers; the 16 bit program counter; the stack pointer; and the
// status register.
//
// The general purpose register implements the arithmetic and logical
// operations required by the instruction set. operations that affect the
// carry and overflow flags return the new flag states, leaving it to the CPU
// to decide what to do with them.
package registers
