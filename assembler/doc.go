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

// Package assembler implements the two pass compiler for the machine's
// assembly language. source text is parsed once into a list of statements;
// the first pass walks the list collecting label addresses and the second
// pass emits the byte image.
//
// the grammar is line oriented. a line holds at most one of: a label
// definition; a directive; an instruction. comments are introduced with a
// semi-colon and run to the end of the line.
//
//	; count upwards forever
//		.org $1000
//	start:
//		lda #$00
//	loop:
//		adc #$01
//		sta $f0
//		jmp loop
//		.org $fffc
//		.word start
//
// operand syntax selects the addressing mode: #$nn for immediate values, $nn
// for zero page, $nn,X for indexed zero page and $nnnn (or a bare label name)
// for absolute addresses. numeric literals can be hexadecimal ($), binary (%)
// or decimal in any operand position. hexadecimal literals of one or two
// digits select zero page addressing and longer literals are absolute, while
// decimal and binary literals select by value. mnemonics are case
// insensitive. labels are not.
//
// the .org directive moves the address counter and .word emits a literal or
// resolved label as a little-endian word without an opcode. placing the reset
// vector, as in the example above, is the expected use.
//
// Assemble() returns a Program, the load image for the machine. the image
// spans the lowest emitted address to the highest. unwritten gaps inside the
// span read as zero and later writes to an address win.
//
// compilation stops at the first error. errors are curated, match one of the
// patterns defined in this package and carry the one-indexed source line
// number.
package assembler
