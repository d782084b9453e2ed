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

package assembler_test

import (
	"strings"
	"testing"

	"github.com/heliosemu/helios/assembler"
	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/test"
)

func assemble(t *testing.T, source string) *assembler.Program {
	t.Helper()
	prg, err := assembler.Assemble(strings.NewReader(source))
	test.DemandSuccess(t, err)
	return prg
}

func expectBytes(t *testing.T, got []uint8, want []uint8) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("byte count: got %d, wanted %d", len(got), len(want))
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d: got %#02x, wanted %#02x", i, got[i], want[i])
			return
		}
	}
}

func TestAssemble(t *testing.T) {
	prg := assemble(t, `; count upwards forever
	.org $1000
start:
	lda #$00
loop:
	adc #$01
	sta $f0
	jmp loop
	.org $fffc
	.word start
`)

	test.ExpectEquality(t, prg.Origin, uint16(0x1000))

	// the image spans the program code through to the reset vector
	test.ExpectEquality(t, len(prg.Bytes), 0xfffd-0x1000+1)

	expectBytes(t, prg.Bytes[:9], []uint8{
		0xa9, 0x00, // lda #$00
		0x69, 0x01, // adc #$01
		0x85, 0xf0, // sta $f0
		0x4c, 0x02, 0x10, // jmp loop
	})

	// the gap between the code and the vector is zero filled
	test.ExpectEquality(t, prg.Bytes[9], uint8(0x00))
	test.ExpectEquality(t, prg.Bytes[0x8000], uint8(0x00))

	// reset vector points back at the start label
	expectBytes(t, prg.Bytes[len(prg.Bytes)-2:], []uint8{0x00, 0x10})

	// one entry per emitting line
	test.ExpectEquality(t, len(prg.Entries), 5)
	test.ExpectEquality(t, prg.Entries[0].Address, uint16(0x1000))
	test.ExpectEquality(t, prg.Entries[0].Line, 4)
	test.ExpectEquality(t, prg.Entries[3].Address, uint16(0x1006))
	test.ExpectEquality(t, prg.Entries[4].Address, uint16(0xfffc))
	test.ExpectEquality(t, prg.Entries[4].Line, 10)
}

func TestForwardReference(t *testing.T) {
	prg := assemble(t, `	.org $0200
	jsr sub
	hlt
sub:
	rts
`)

	test.ExpectEquality(t, prg.Origin, uint16(0x0200))
	expectBytes(t, prg.Bytes, []uint8{
		0x20, 0x04, 0x02, // jsr sub
		0xff, // hlt
		0x60, // rts
	})
}

func TestLiteralForms(t *testing.T) {
	prg := assemble(t, `	.org $0080
	lda #%00000101
	lda #10
	ldx #$ff
	lda $0a
	lda 10
	lda $ff
	lda $00ff
	sta 768
`)

	test.ExpectEquality(t, prg.Origin, uint16(0x0080))
	expectBytes(t, prg.Bytes, []uint8{
		0xa9, 0x05, // lda #%00000101
		0xa9, 0x0a, // lda #10
		0xa2, 0xff, // ldx #$ff
		0xa5, 0x0a, // lda $0a
		0xa5, 0x0a, // lda 10 (decimal in zero page range)
		0xa5, 0xff, // lda $ff (two hex digits is zero page)
		0xad, 0xff, 0x00, // lda $00ff (four hex digits is absolute)
		0x8d, 0x00, 0x03, // sta 768 (decimal beyond a byte is absolute)
	})
}

func TestIndexedOperands(t *testing.T) {
	// whitespace inside an operand is insignificant and the index register
	// suffix is case insensitive
	prg := assemble(t, `	lda $80,x
	sta $90 , X
`)

	// without a .org directive the address counter starts at zero
	test.ExpectEquality(t, prg.Origin, uint16(0x0000))
	expectBytes(t, prg.Bytes, []uint8{
		0xb5, 0x80, // lda $80,x
		0x95, 0x90, // sta $90,x
	})
}

func TestLabelCase(t *testing.T) {
	// mnemonics are case insensitive
	prg := assemble(t, `Loop:
	LdA #$01
	jMp Loop
`)
	expectBytes(t, prg.Bytes, []uint8{
		0xa9, 0x01,
		0x4c, 0x00, 0x00,
	})

	// labels are case sensitive
	prg, err := assembler.Assemble(strings.NewReader("loop:\n\tjmp LOOP"))
	test.ExpectSuccess(t, curated.Is(err, assembler.UndefinedLabel))
	if prg != nil {
		t.Errorf("failed assembly must not return a program")
	}
}

func TestVectorOnly(t *testing.T) {
	prg := assemble(t, `	.org $fffc
	.word $1234
`)

	test.ExpectEquality(t, prg.Origin, uint16(0xfffc))
	expectBytes(t, prg.Bytes, []uint8{0x34, 0x12})
}

func TestLaterWritesWin(t *testing.T) {
	prg := assemble(t, `	.org $0100
	.word $aabb
	.org $0100
	.word $ccdd
`)

	test.ExpectEquality(t, prg.Origin, uint16(0x0100))
	expectBytes(t, prg.Bytes, []uint8{0xdd, 0xcc})
}

func TestEmptySource(t *testing.T) {
	prg := assemble(t, "")
	test.ExpectEquality(t, len(prg.Bytes), 0)
	test.ExpectEquality(t, len(prg.Entries), 0)

	prg = assemble(t, "; comments only\n\n\t; and blank lines\n")
	test.ExpectEquality(t, len(prg.Bytes), 0)
}

func TestListing(t *testing.T) {
	prg := assemble(t, `	.org $0200
	lda #$7f ; load the largest positive value
`)

	test.ExpectEquality(t, len(prg.Entries), 1)
	e := prg.Entries[0]
	test.ExpectEquality(t, e.Address, uint16(0x0200))
	test.ExpectEquality(t, e.Line, 2)
	test.ExpectEquality(t, e.String(), "0x0200  a9 7f     lda #$7f ; load the largest positive value")
}

func TestAssemblyErrors(t *testing.T) {
	tests := []struct {
		source  string
		pattern string
	}{
		{"loop:\nloop:", assembler.DuplicateLabel},
		{"jmp nowhere", assembler.UndefinedLabel},
		{".word nowhere", assembler.UndefinedLabel},
		{".data $00", assembler.UnknownDirective},
		{"foo #$00", assembler.UnknownInstruction},

		// LDX only supports immediate operands
		{"ldx $05", assembler.AddressingModeNotSupported},

		// modes from the wider 6502 family that this machine does not have
		{"sta $1000,x", assembler.AddressingModeNotSupported},
		{"jmp ($1000)", assembler.AddressingModeNotSupported},
		{"lda $10,y", assembler.AddressingModeNotSupported},
		{"sta buffer,x", assembler.AddressingModeNotSupported},

		{"lda #$1ff", assembler.OperandOutOfRange},
		{"lda #256", assembler.OperandOutOfRange},
		{".org $12345", assembler.OperandOutOfRange},
		{".word $10000", assembler.OperandOutOfRange},

		{"lda #", assembler.SyntaxError},
		{"lda $", assembler.SyntaxError},
		{"lda 12abc", assembler.SyntaxError},
		{"lda $10,q", assembler.SyntaxError},
		{"loop: lda #$00", assembler.SyntaxError},
		{"9lives:", assembler.SyntaxError},
		{":", assembler.SyntaxError},
		{".org", assembler.SyntaxError},
		{".word", assembler.SyntaxError},
	}

	for _, tc := range tests {
		prg, err := assembler.Assemble(strings.NewReader(tc.source))
		if !curated.Is(err, tc.pattern) {
			t.Errorf("%q: expected error pattern not returned (%v)", tc.source, err)
		}
		if prg != nil {
			t.Errorf("%q: failed assembly must not return a program", tc.source)
		}
	}
}
