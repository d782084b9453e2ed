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

//go:build !windows
// +build !windows

package colorterm

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/debugger/terminal"
	"github.com/heliosemu/helios/debugger/terminal/colorterm/easyterm"
	"github.com/heliosemu/helios/debugger/terminal/colorterm/easyterm/ansi"
)

// readRune is a single result from the runeReader channel.
type readRune struct {
	r   rune
	n   int
	err error
}

// runeReader decouples reading from the input file from the TermRead()
// function, allowing runes to be mixed into a select alongside the
// ReadEvents channels.
type runeReader chan readRune

func initRuneReader(input io.Reader) runeReader {
	br := bufio.NewReader(input)
	ch := make(runeReader)

	go func() {
		for {
			var v readRune
			v.r, v.n, v.err = br.ReadRune()
			ch <- v
			if v.err != nil {
				return
			}
		}
	}()

	return ch
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	ct.EasyTerm.TermPrint(fmt.Sprintf("\r%s", ansi.CursorMove(len(prompt.String()))))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrintLine(prompt.Style(), fmt.Sprintf("%s%s", ansi.ClearLine, prompt.String()))
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		var rr readRune

		if events != nil {
			select {
			case rr = <-ct.reader:
			case <-events.IntEvents:
				// treat a signal from the operating system the same way as a
				// CTRL-C keypress
				ct.EasyTerm.TermPrint("\n")
				return 0, curated.Errorf(terminal.UserInterrupt)
			}
		} else {
			rr = <-ct.reader
		}

		if rr.err != nil {
			return n, rr.err
		}

		switch rr.r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, []byte(s))

				// advance cursor to the end of the completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursor += d

				// note new used-length of input array
				n += d
			}

		case easyterm.KeyInterrupt:
			// CTRL-C. note that the terminal is in raw mode so the key
			// arrives as input rather than as a signal
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			// CTRL-Z. return the terminal to canonical mode before stopping
			// the process, otherwise the shell we land in is unusable
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			// CARRIAGE RETURN

			// check to see if input is the same as the last history entry
			newEntry := false
			if n > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == n {
						newEntry = false
						for i := 0; i < n; i++ {
							if input[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			// if input is not the same as the last history entry then append a
			// new entry to the history list
			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}

			ct.EasyTerm.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			rr = <-ct.reader
			if rr.err != nil {
				return n, rr.err
			}
			switch rr.r {
			case easyterm.EscCursor:
				// CURSOR KEY
				rr = <-ct.reader
				if rr.err != nil {
					return n, rr.err
				}

				switch rr.r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then store
						// the current input in buffInput for possible later editing
						if history == len(ct.commandHistory) {
							copy(buffInput, input[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(input, buffInput)
							n = buffN
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursor++
					}
				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}

				case easyterm.EscDelete:
					// DELETE
					if cursor < n {
						copy(input[cursor:], input[cursor+1:])
						n--
						history = len(ct.commandHistory)
					}
				}
			}

		case easyterm.KeyBackspace:
			// BACKSPACE
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rr.r) {
				ct.EasyTerm.TermPrint(fmt.Sprintf("%c", rr.r))
				m := utf8.EncodeRune(er, rr.r)
				copy(input[cursor+m:], input[cursor:])
				copy(input[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
