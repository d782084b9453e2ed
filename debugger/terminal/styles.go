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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back. interactive terminals that
	// display input as it is typed will want to suppress this style.
	StyleEcho Style = iota

	// help information
	StyleHelp

	// terminal output that describes the result of a command
	StyleFeedback

	// terminal output that hasn't been solicited by a command. for example,
	// a notification that the machine has halted during a RUN
	StyleFeedbackNonInteractive

	// disassembly output for the instruction just stepped
	StyleCPUStep

	// information about the state of the machine. register values, the
	// audio channels, the display engine, etc.
	StyleInstrument

	// output of the LOG command
	StyleLog

	// error messages. terminal implementations should display these even
	// when silenced
	StyleError

	// prompt styles
	StylePromptCPUStep
	StylePromptConfirm
)

// IsPrompt returns true if the style is one of the prompt styles.
func (sty Style) IsPrompt() bool {
	switch sty {
	case StylePromptCPUStep:
		return true
	case StylePromptConfirm:
		return true
	}
	return false
}
