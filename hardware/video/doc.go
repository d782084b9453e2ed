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

// Package video implements the display engine of the machine.
//
// The video area of the bus holds two 1536 byte halves. At power-on the half
// at the area origin (half A) is the back half, the one the running program
// writes into, and half B above it is the front. Writing the final byte of
// the back half (offset 1535 within the half) seals the frame: the engine
// snapshots the half into its stable frame, the halves swap roles and the
// seal count grows by one. Only the back half's final byte seals; the same
// offset in the front half is ordinary memory.
//
// A half encodes a 64x64 frame of 3-bit palette values packed LSB first:
// pixel p occupies the three bits starting at bit (3p mod 8) of byte (3p/8),
// row major, straddling into the following byte where necessary. 1536 bytes
// is 4096 pixels exactly, so a half has no padding.
//
// Present returns the most recently sealed frame expanded to 256x256, one
// palette value per byte. Expansion happens at seal time, so Present never
// blocks the CPU and writes into the new back half are never observable in
// the returned frame.
package video
