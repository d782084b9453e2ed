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

// Package mix combines the machine's four voices into a single signed 16-bit
// PCM stream.
//
// Channel levels are expected to arrive with gain already applied. The sum
// is clipped to the int16 range rather than normalised, so one voice at full
// level is as loud on its own as it is in company.
package mix

import "math"

// Mono returns a single sample value from the four channel levels.
func Mono(channel0 float32, channel1 float32, channel2 float32, channel3 float32) int16 {
	sum := channel0 + channel1 + channel2 + channel3
	if sum > 1.0 {
		sum = 1.0
	} else if sum < -1.0 {
		sum = -1.0
	}
	return int16(sum * math.MaxInt16)
}
