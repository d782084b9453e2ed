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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the emulation uncapped for a fixed
// duration of time, reporting the frame and clock rates that were achieved.
// It will optionally generate profiling information.
//
// RunProfiler() can be used to generate the various profile types. On its
// own it does not limit the amount of time the program runs for, so it is
// useful for more real-world situations.
//
// CalcFPS() and CalcClock() convert raw frame and cycle counts into rates.
// The accuracy value returned by CalcClock() compares the achieved rate
// against the machine's notional 1MHz clock.
package performance
