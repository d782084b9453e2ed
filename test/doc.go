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

// Package test contains helper functions to remove common boilerplate from
// package tests.
//
// The Expect functions test a value against an expectation and mark the test
// as failed if the expectation is not met. The Demand functions are the same
// but failure is a test fatality. Demands are useful when later tests depend
// on the demanded condition being true.
//
// ExpectSuccess and ExpectFailure interpret their argument according to type:
// a bool succeeds when true and an error succeeds when nil. Interpreting nil
// as a success is not obviously correct but it is how errors work in practice
// so it is how these functions work too.
//
// The Writer type implements io.Writer and captures output for comparison
// with the Compare() function.
package test
