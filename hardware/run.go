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
	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/debugger/govern"
	"github.com/heliosemu/helios/hardware/cpu"
)

// The continueCheck() function only runs at the end of a CPU instruction but
// it can still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake
// is a standard value that can be used to filter out expensive code paths
// within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The loop ends when
// the program halts or crashes the CPU, or when the continueCheck() function
// returns the Ending or Initialising state.
func (hel *Helios) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if err = hel.CPU.ExecuteInstruction(hel.cycle); err != nil {
				return err
			}
			if hel.CPU.State() != cpu.Running {
				// the program has brought the machine to a stop
				return nil
			}
		case govern.Paused:
		default:
			return curated.Errorf("helios: unsupported emulation state (%d) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrames sets the emulation running until the display engine has
// sealed the specified number of new frames. Useful for FPS and regression
// tests.
//
// Returns early when the program halts or crashes before reaching the frame
// target.
func (hel *Helios) RunForFrames(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := hel.Video.Frame()
	targetFrame := frameNum + numFrames

	state := govern.Running
	for frameNum != targetFrame && state != govern.Ending {
		if err := hel.Step(); err != nil {
			return err
		}

		if hel.CPU.State() != cpu.Running {
			return nil
		}

		frameNum = hel.Video.Frame()

		var err error
		state, err = continueCheck(frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}

// RunUntilHalt sets the emulation running until the CPU leaves the Running
// state of its own account, by executing a HLT instruction or by crashing on
// a fault. A program that does neither keeps the loop alive forever, so this
// is for tests and tools working with programs known to end.
func (hel *Helios) RunUntilHalt() error {
	for hel.CPU.State() == cpu.Running {
		if err := hel.CPU.ExecuteInstruction(hel.cycle); err != nil {
			return err
		}
	}

	return nil
}
