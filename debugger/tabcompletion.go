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

package debugger

import (
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface over the
// debugger's command list. only the command word is completed, arguments are
// left alone.
type tabCompletion struct {
	matches []string
	idx     int

	// the string returned by the last call to Complete(). if the next call
	// receives the same string back then the user is cycling through the
	// match list
	last string
}

func newTabCompletion() *tabCompletion {
	return &tabCompletion{}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	if input == tc.last && len(tc.matches) > 0 {
		tc.idx++
		if tc.idx >= len(tc.matches) {
			tc.idx = 0
		}
		tc.last = tc.matches[tc.idx] + " "
		return tc.last
	}

	// a new completion session
	tc.matches = tc.matches[:0]
	tc.idx = 0

	base := strings.ToUpper(strings.TrimSpace(input))
	if strings.Contains(base, " ") {
		return input
	}

	for _, c := range commandList {
		if strings.HasPrefix(c, base) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.last = tc.matches[tc.idx] + " "
	return tc.last
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.idx = 0
	tc.last = ""
}
