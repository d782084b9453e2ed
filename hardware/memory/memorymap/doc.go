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

// Package memorymap records the fixed layout of the machine's 64KiB address
// space.
//
//	0x0000 - 0xefff    general (program code, data, zero page, stack page)
//	0xf000 - 0xfbff    video double-buffer
//	0xfc00 - 0xffff    audio event ring
//	0xfffc - 0xffff    reset and IRQ vectors (within the audio area)
//
// The MapArea() function returns which area an address falls within. Unlike
// hardware with mirrored address decoding there is no address translation,
// only classification.
package memorymap
