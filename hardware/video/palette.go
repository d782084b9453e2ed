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

package video

import "image/color"

// Palette is the fixed eight colour palette of the machine. A 3-bit palette
// value indexes into it directly.
var Palette = [8]color.RGBA{
	{0, 0, 0, 255},       // black
	{255, 0, 0, 255},     // red
	{255, 255, 0, 255},   // yellow
	{0, 255, 0, 255},     // green
	{0, 0, 255, 255},     // blue
	{0, 255, 255, 255},   // cyan
	{192, 192, 192, 255}, // grey
	{255, 255, 255, 255}, // white
}
