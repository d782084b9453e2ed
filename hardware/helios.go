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

package hardware

import (
	"github.com/heliosemu/helios/hardware/audio"
	"github.com/heliosemu/helios/hardware/cpu"
	"github.com/heliosemu/helios/hardware/instance"
	"github.com/heliosemu/helios/hardware/memory"
	"github.com/heliosemu/helios/hardware/memory/memorymap"
	"github.com/heliosemu/helios/hardware/video"
	"github.com/heliosemu/helios/romloader"
)

// Helios is the main container for the emulated components of the machine.
type Helios struct {
	Instance *instance.Instance

	CPU   *cpu.CPU
	Mem   *memory.Bus
	Audio *audio.Engine
	Video *video.Engine

	// the loader for the most recently attached program. check HasLoaded()
	// before using the Hash or Data fields
	Loader romloader.Loader

	// the number of CPU cycles consumed since the last reset. see Cycles()
	// function
	cycles int64
}

// NewHelios is the preferred method of initialisation for the Helios type.
// The console is created switched on but with no program attached, which is
// to say that the CPU will be executing BRKs from the zero page.
func NewHelios(ins *instance.Instance) (*Helios, error) {
	hel := &Helios{
		Instance: ins,
		Mem:      memory.NewBus(),
	}

	hel.CPU = cpu.NewCPU(ins, hel.Mem)
	hel.Audio = audio.NewEngine(ins, hel.Mem)
	hel.Video = video.NewEngine(hel.Mem)
	hel.Mem.AttachVideo(hel.Video)

	// the console is the machine's source of time
	ins.Random.AttachClock(hel)

	if err := hel.Reset(); err != nil {
		return nil, err
	}

	return hel, nil
}

// AttachProgram loads a program into memory and resets the console. The
// loader is retained so that the program's name and hash remain available
// for the lifetime of the attachment.
//
// Raw images say nothing about the reset vector. If the vector reads as zero
// once the image is in place, the image's own origin is written there and
// execution will begin at the first byte of the program.
func (hel *Helios) AttachProgram(loader romloader.Loader) error {
	origin, data, err := loader.Load()
	if err != nil {
		return err
	}

	hel.Mem.Clear()

	if err := hel.Mem.LoadProgram(origin, data); err != nil {
		return err
	}

	if hel.Mem.ReadVector(memorymap.AddrReset) == 0x0000 {
		if err := hel.Mem.Write(memorymap.AddrReset, uint8(origin&0x00ff)); err != nil {
			return err
		}
		if err := hel.Mem.Write(memorymap.AddrReset+1, uint8(origin>>8)); err != nil {
			return err
		}
	}

	hel.Loader = loader

	return hel.Reset()
}

// Reset emulates the reset switch on the console. Memory contents are not
// disturbed, matching how the machine behaves when reset while switched on.
// The program counter is reloaded from the reset vector.
func (hel *Helios) Reset() error {
	hel.CPU.Reset()
	hel.Mem.Reset()
	hel.Audio.Reset()
	hel.Video.Reset()
	hel.cycles = 0

	return hel.CPU.LoadPCIndirect(memorymap.AddrReset)
}

// Cycles returns the number of CPU cycles consumed since the last reset.
// Implements the random.Clock interface.
func (hel *Helios) Cycles() int64 {
	return hel.cycles
}

// cycle is given to the CPU as the cycle callback. it advances the parts of
// the machine that run against the CPU clock. the video engine is not among
// them, it moves only when the bus is written to.
func (hel *Helios) cycle() error {
	hel.cycles++
	return hel.Audio.Step(1)
}

// Step the machine by one CPU instruction. Stepping a halted or crashed
// machine does nothing.
func (hel *Helios) Step() error {
	return hel.CPU.ExecuteInstruction(hel.cycle)
}

// End closes down the attached audio mixers. Not critical but mixers that
// buffer, the wav writer for example, will lose samples if it is skipped.
func (hel *Helios) End() error {
	return hel.Audio.EndMixing()
}
