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

// Package clocks defines the constant values that describe the speed of the
// machine.
//
// The machine has no frame clock of its own. A frame ends whenever the
// running program seals the back half of the video buffer, so the rate at
// which frames appear is entirely under program control. FPSCap is the rate
// at which the presentation layer shows them.
package clocks

const (
	// ClockHz is the rate of the master clock. the CPU consumes one clock
	// per cycle.
	ClockHz = 1_000_000

	// CyclesPerSecond is a synonym for ClockHz for code that counts cycles
	// rather than measuring frequency.
	CyclesPerSecond = ClockHz

	// FPSCap is the rate at which playmode presents the most recently
	// sealed frame.
	FPSCap = 30
)
