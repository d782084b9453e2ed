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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like fmt.Errorf(), but the
// pattern string is retained as the error's identity.
//
// The Is() function checks whether an error is a curated error with a
// specific pattern:
//
//	e := curated.Errorf("assembler: duplicate label (%s)", "loop")
//
//	if curated.Is(e, "assembler: duplicate label (%s)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain rather than just at the head. Wrapping happens naturally when
// a curated error is used as a placeholder value in another Errorf() call.
//
// The IsAny() function answers whether the error is curated at all. Errors
// from outside the project (the standard library, third-party packages) are
// uncurated and usually indicate something unexpected.
//
// Error() normalises the message chain so that adjacent duplicate parts are
// only printed once. This keeps wrapped errors readable when the same prefix
// is added at several levels.
package curated
