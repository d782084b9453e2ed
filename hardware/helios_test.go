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

package hardware_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/debugger/govern"
	"github.com/heliosemu/helios/hardware"
	"github.com/heliosemu/helios/hardware/cpu"
	"github.com/heliosemu/helios/hardware/instance"
	"github.com/heliosemu/helios/hardware/memory/memorymap"
	"github.com/heliosemu/helios/hardware/preferences"
	"github.com/heliosemu/helios/random"
	"github.com/heliosemu/helios/romloader"
	"github.com/heliosemu/helios/test"
)

func newTestHelios(t *testing.T) *hardware.Helios {
	t.Helper()

	prefs := &preferences.Preferences{}
	prefs.SetDefaults()

	ins := &instance.Instance{
		Label:  instance.Testing,
		Random: random.NewRandom(),
		Prefs:  prefs,
	}

	hel, err := hardware.NewHelios(ins)
	test.DemandSuccess(t, err)

	return hel
}

// assemble source in a temporary file and attach the result to the console.
func attach(t *testing.T, hel *hardware.Helios, source string) {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "program.asm")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(source), 0o600))

	ld, err := romloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, hel.AttachProgram(ld))
}

func TestPowerOn(t *testing.T) {
	hel := newTestHelios(t)

	// nothing attached. the reset vector reads zero and so execution would
	// begin at address zero
	test.ExpectEquality(t, hel.CPU.State(), cpu.Running)
	test.ExpectEquality(t, hel.CPU.PC.Address(), uint16(0x0000))
	test.ExpectEquality(t, hel.Cycles(), int64(0))
}

func TestAutoResetVector(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	lda #$03
	hlt
`)

	// the image said nothing about the reset vector so attachment has
	// written the image origin there
	test.ExpectEquality(t, hel.Mem.ReadVector(memorymap.AddrReset), uint16(0x0200))
	test.ExpectEquality(t, hel.CPU.PC.Address(), uint16(0x0200))

	test.ExpectSuccess(t, hel.RunUntilHalt())
	test.ExpectEquality(t, hel.CPU.State(), cpu.Halted)
	test.ExpectEquality(t, hel.CPU.A.Value(), uint8(0x03))
}

func TestProvidedResetVector(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0280
	lda #$05
	hlt
	.org $fffc
	.word $0280
`)

	test.ExpectEquality(t, hel.Mem.ReadVector(memorymap.AddrReset), uint16(0x0280))
	test.ExpectEquality(t, hel.CPU.PC.Address(), uint16(0x0280))

	test.ExpectSuccess(t, hel.RunUntilHalt())
	test.ExpectEquality(t, hel.CPU.A.Value(), uint8(0x05))
}

func TestRawProgram(t *testing.T) {
	hel := newTestHelios(t)

	// machine code for: lda #$03, hlt
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa9, 0x03, 0xff}, 0o600))

	ld, err := romloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, hel.AttachProgram(ld))

	// raw images land at the default origin and have the reset vector
	// written for them
	test.ExpectEquality(t, hel.CPU.PC.Address(), romloader.DefaultOrigin)
	test.ExpectEquality(t, hel.Loader.HasLoaded(), true)

	test.ExpectSuccess(t, hel.RunUntilHalt())
	test.ExpectEquality(t, hel.CPU.State(), cpu.Halted)
	test.ExpectEquality(t, hel.CPU.A.Value(), uint8(0x03))
}

func TestCycleCount(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	lda #$03
	hlt
`)

	test.ExpectSuccess(t, hel.RunUntilHalt())

	// two cycles for the load and two for the halt
	test.ExpectEquality(t, hel.Cycles(), int64(4))
}

func TestStepAfterHalt(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	hlt
`)

	test.ExpectSuccess(t, hel.Step())
	test.ExpectEquality(t, hel.CPU.State(), cpu.Halted)

	// stepping a halted machine has no effect
	pc := hel.CPU.PC.Address()
	cycles := hel.Cycles()
	test.ExpectSuccess(t, hel.Step())
	test.ExpectEquality(t, hel.CPU.PC.Address(), pc)
	test.ExpectEquality(t, hel.Cycles(), cycles)
}

func TestSoundInstruction(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	snd #$45
	hlt
`)

	test.ExpectSuccess(t, hel.RunUntilHalt())

	// the event byte is in the ring
	test.ExpectEquality(t, hel.Mem.EventCursor(), 1)
	ev, _ := hel.Mem.ReadEvent(0)
	test.ExpectEquality(t, ev, uint8(0x45))

	// and the audio engine applied it during the cycles that followed.
	// event $45 selects channel one, note five
	if !strings.Contains(hel.Audio.String(), "ch1: square 36.71Hz (note 26)") {
		t.Errorf("audio engine did not pick up the sound event: %s", hel.Audio.String())
	}
}

func TestVideoSeal(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	lda #$ff
	sta $f000
	sta $f5ff
	hlt
`)

	test.ExpectSuccess(t, hel.RunUntilHalt())
	test.ExpectEquality(t, hel.Video.Frame(), 1)

	// $ff in the first byte packs palette values 7, 7 and the low bits of
	// the third pixel. upscaling is four to one in both directions
	pix := hel.Video.Present()
	test.ExpectEquality(t, pix[0], uint8(7))
	test.ExpectEquality(t, pix[4], uint8(7))
	test.ExpectEquality(t, pix[8], uint8(3))
}

func TestCrashOnUnknownOpcode(t *testing.T) {
	hel := newTestHelios(t)

	// opcode $02 has no entry in the instruction table. the fresh console
	// executes from address zero
	test.ExpectSuccess(t, hel.Mem.Write(0x0000, 0x02))

	err := hel.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, hel.CPU.State(), cpu.Crashed)

	// crashed is sticky. only a reset recovers the machine
	test.ExpectSuccess(t, hel.Step())
	test.ExpectEquality(t, hel.CPU.State(), cpu.Crashed)

	test.ExpectSuccess(t, hel.Reset())
	test.ExpectEquality(t, hel.CPU.State(), cpu.Running)
}

func TestSubroutine(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	jsr sub
	hlt
sub:
	lda #$07
	rts
`)

	test.ExpectSuccess(t, hel.RunUntilHalt())
	test.ExpectEquality(t, hel.CPU.State(), cpu.Halted)
	test.ExpectEquality(t, hel.CPU.A.Value(), uint8(0x07))

	// the return has restored the stack pointer to the top of the stack page
	test.ExpectEquality(t, hel.CPU.SP.Address(), uint16(0x01ff))
}

func TestRunContinueCheck(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
loop:
	jmp loop
`)

	instructions := 0
	err := hel.Run(func() (govern.State, error) {
		instructions++
		if instructions >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)

	// three cycles for every jump
	test.ExpectEquality(t, hel.Cycles(), int64(30))
}

func TestRunEndsOnHalt(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	hlt
`)

	test.ExpectSuccess(t, hel.Run(nil))
	test.ExpectEquality(t, hel.CPU.State(), cpu.Halted)
}

func TestRunForFrames(t *testing.T) {
	hel := newTestHelios(t)

	// one seal per store, alternating between the two halves
	attach(t, hel, `
	.org $0200
loop:
	sta $f5ff
	sta $fbff
	jmp loop
`)

	test.ExpectSuccess(t, hel.RunForFrames(6, nil))
	test.ExpectEquality(t, hel.Video.Frame(), 6)
}

func TestAttachClearsMemory(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	lda #$ff
	sta $10
	hlt
`)
	test.ExpectSuccess(t, hel.RunUntilHalt())

	v, err := hel.Mem.Read(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))

	attach(t, hel, `
	.org $0300
	hlt
`)

	// the new attachment starts from clean memory and a reset machine
	test.ExpectEquality(t, hel.CPU.State(), cpu.Running)
	test.ExpectEquality(t, hel.CPU.PC.Address(), uint16(0x0300))
	test.ExpectEquality(t, hel.Cycles(), int64(0))

	v, err = hel.Mem.Read(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestResetKeepsMemory(t *testing.T) {
	hel := newTestHelios(t)

	attach(t, hel, `
	.org $0200
	lda #$ff
	sta $10
	hlt
`)
	test.ExpectSuccess(t, hel.RunUntilHalt())
	test.ExpectSuccess(t, hel.Reset())

	// reset does not disturb memory contents
	v, err := hel.Mem.Read(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))

	test.ExpectEquality(t, hel.CPU.State(), cpu.Running)
	test.ExpectEquality(t, hel.CPU.PC.Address(), uint16(0x0200))
	test.ExpectEquality(t, hel.Cycles(), int64(0))
}
