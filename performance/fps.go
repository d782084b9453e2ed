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

package performance

import "github.com/heliosemu/helios/hardware/clocks"

// CalcFPS takes a number of frames and a duration (in seconds) and returns
// the frames-per-second.
//
// Because frames on this machine are sealed under program control there is
// no specification rate to compare against. A program that never writes the
// final byte of a video half never produces a frame, however fast the CPU
// is running.
func CalcFPS(numFrames int, duration float64) float64 {
	return float64(numFrames) / duration
}

// CalcClock takes a number of consumed CPU cycles and a duration (in
// seconds) and returns the achieved clock rate in Hz, along with how that
// rate compares to the machine's notional clock as a percentage.
func CalcClock(numCycles int64, duration float64) (hz float64, accuracy float64) {
	hz = float64(numCycles) / duration
	accuracy = 100 * hz / clocks.ClockHz
	return hz, accuracy
}
