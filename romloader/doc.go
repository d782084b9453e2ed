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

// Package romloader is used to specify the program that is to be attached to
// the emulated machine.
//
// Raw images (.bin and .rom files) are loaded as they are and placed at the
// default origin, clear of the zero page and the stack page. Assembly
// sources (.asm and .s files) are compiled on load and the assembled image
// carries whatever origin its .org directives chose.
//
// The Load() function also records the SHA-1 hash of the image. The hash is
// of the bytes that will reach memory, so for an assembly source it is the
// hash of the assembled image and not of the source text.
package romloader
