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

// Package hardware is the base package for the emulated machine. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Helios type is the root of the emulation and contains references to
// all of the machine's sub-systems. From here the emulation can be run
// continuously, with an optional callback to check for continuation, or
// stepped one CPU instruction at a time.
//
// The machine has a single clock domain. The CPU drives it and the audio
// engine keeps pace through the cycle callback. The display engine is not
// clocked at all, it responds to writes into the video area of the bus.
package hardware
