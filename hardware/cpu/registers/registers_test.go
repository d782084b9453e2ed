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

package registers_test

import (
	"testing"

	"github.com/heliosemu/helios/hardware/cpu/registers"
	"github.com/heliosemu/helios/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectSuccess(t, !r.IsNegative())
	test.ExpectEquality(t, r.Label(), "A")

	r.Load(0x80)
	test.ExpectSuccess(t, !r.IsZero())
	test.ExpectSuccess(t, r.IsNegative())
	test.ExpectEquality(t, r.Value(), uint8(0x80))
	test.ExpectEquality(t, r.Address(), uint16(0x0080))
	test.ExpectEquality(t, r.String(), "A=0x80")
}

func TestRegisterArithmetic(t *testing.T) {
	r := registers.NewRegister(0, "A")

	// addition without carry
	r.Load(0x10)
	carry, overflow := r.Add(0x01, false)
	test.ExpectSuccess(t, !carry)
	test.ExpectSuccess(t, !overflow)
	test.ExpectEquality(t, r.Value(), uint8(0x11))

	// addition with carry-in
	r.Load(0x10)
	carry, overflow = r.Add(0x01, true)
	test.ExpectSuccess(t, !carry)
	test.ExpectSuccess(t, !overflow)
	test.ExpectEquality(t, r.Value(), uint8(0x12))

	// unsigned wrap around sets carry
	r.Load(0xff)
	carry, overflow = r.Add(0x01, false)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, !overflow)
	test.ExpectSuccess(t, r.IsZero())

	// two positive numbers that sum to a negative result overflows
	r.Load(0x50)
	carry, overflow = r.Add(0x50, false)
	test.ExpectSuccess(t, !carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectEquality(t, r.Value(), uint8(0xa0))

	// two negative numbers that sum to a positive result overflows
	r.Load(0xd0)
	carry, overflow = r.Add(0x90, false)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectEquality(t, r.Value(), uint8(0x60))
}

func TestRegisterSubtraction(t *testing.T) {
	r := registers.NewRegister(0, "A")

	// subtraction with carry set (ie. no borrow)
	r.Load(0x50)
	carry, overflow := r.Subtract(0x30, true)
	test.ExpectSuccess(t, carry)
	test.ExpectSuccess(t, !overflow)
	test.ExpectEquality(t, r.Value(), uint8(0x20))

	// subtraction that requires a borrow clears carry
	r.Load(0x30)
	carry, overflow = r.Subtract(0x50, true)
	test.ExpectSuccess(t, !carry)
	test.ExpectSuccess(t, !overflow)
	test.ExpectEquality(t, r.Value(), uint8(0xe0))

	// subtraction with carry clear borrows one
	r.Load(0x50)
	carry, _ = r.Subtract(0x30, false)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r.Value(), uint8(0x1f))
}

func TestRegisterLogicalOperators(t *testing.T) {
	r := registers.NewRegister(0xf0, "A")

	r.AND(0x3c)
	test.ExpectEquality(t, r.Value(), uint8(0x30))

	r.ORA(0x03)
	test.ExpectEquality(t, r.Value(), uint8(0x33))

	r.EOR(0xff)
	test.ExpectEquality(t, r.Value(), uint8(0xcc))
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x0600)
	test.ExpectEquality(t, pc.Address(), uint16(0x0600))
	test.ExpectEquality(t, pc.String(), "0x0600")

	carry := pc.Add(3)
	test.ExpectSuccess(t, !carry)
	test.ExpectEquality(t, pc.Address(), uint16(0x0603))

	// program counter wraps around the address space
	pc.Load(0xffff)
	carry = pc.Add(1)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, pc.Address(), uint16(0x0000))
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))
	test.ExpectEquality(t, sp.Value(), uint8(0xff))

	// pushing decrements the stack pointer
	sp.Add(0xff, false)
	test.ExpectEquality(t, sp.Address(), uint16(0x01fe))

	// stack pointer wraps inside the stack page
	sp.Load(0x00)
	sp.Add(0xff, false)
	test.ExpectEquality(t, sp.Address(), uint16(0x01ff))
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), uint8(0x00))
	test.ExpectEquality(t, sr.String(), "sv----zc")

	sr.Sign = true
	sr.Carry = true
	test.ExpectEquality(t, sr.Value(), uint8(0x81))
	test.ExpectEquality(t, sr.String(), "Sv----zC")

	// unused bits are discarded on load
	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0xc3))
	test.ExpectSuccess(t, sr.Sign)
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectSuccess(t, sr.Carry)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0x00))
}
