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

// Package memory implements the machine's address space as a single flat
// Bus. The map of the address space is described by the memorymap package.
//
// The CPU is the only writer. The display engine observes writes into the
// video area through the VideoMonitor interface and the audio engine chases
// the ring cursor over the audio area. Neither observer has a private access
// path; everything is ordinary memory that the CPU could equally read back.
package memory
