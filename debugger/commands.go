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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/debugger/terminal"
	"github.com/heliosemu/helios/disassembly"
	"github.com/heliosemu/helios/hardware/cpu"
	"github.com/heliosemu/helios/logger"
)

// debugger commands.
const (
	cmdAudio  = "AUDIO"
	cmdDisasm = "DISASM"
	cmdHalt   = "HALT"
	cmdHelp   = "HELP"
	cmdLog    = "LOG"
	cmdMem    = "MEM"
	cmdPoke   = "POKE"
	cmdQuit   = "QUIT"
	cmdRegs   = "REGS"
	cmdReset  = "RESET"
	cmdRun    = "RUN"
	cmdStep   = "STEP"
	cmdVideo  = "VIDEO"
	cmdViz    = "VIZ"
)

// commandList is sorted. used by the HELP command and for tab completion.
var commandList = []string{
	cmdAudio, cmdDisasm, cmdHalt, cmdHelp, cmdLog, cmdMem, cmdPoke,
	cmdQuit, cmdRegs, cmdReset, cmdRun, cmdStep, cmdVideo, cmdViz,
}

// helpText contains the help text for the debugger commands.
var helpText = map[string]string{
	cmdAudio:  "Display the state of the audio channels",
	cmdDisasm: "Print a disassembly of the attached program",
	cmdHalt:   "Halt a running machine",
	cmdHelp:   "Lists commands and provides help for individual commands",
	cmdLog:    "Print the application log",
	cmdMem:    "Inspect memory. MEM address [count]",
	cmdPoke:   "Modify an individual memory address. POKE address value",
	cmdQuit:   "Exits the debugger",
	cmdRegs:   "Display the CPU registers and the machine cycle count",
	cmdReset:  "Reset the machine. memory is preserved",
	cmdRun:    "Run the machine until it stops or is interrupted",
	cmdStep:   "Step the machine forward. STEP [count]. an empty line also steps",
	cmdVideo:  "Display the state of the display engine",
	cmdViz:    "Write a graph of the machine innards to file. VIZ file (graphviz dot format)",
}

// parseInput normalises the input and dispatches to the command handlers.
func (dbg *Debugger) parseInput(input string) error {
	input = strings.TrimSpace(input)

	// an empty line steps the machine. the most common operation should be
	// the cheapest to type
	if input == "" {
		return dbg.step()
	}

	// echo the normalised input. terminals that display input as it is
	// typed will ignore this
	dbg.printLine(terminal.StyleEcho, "%s", input)

	tokens := strings.Fields(input)
	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case cmdHelp:
		dbg.help(args)

	case cmdStep:
		if err := checkArgs(command, args, 0, 1); err != nil {
			return err
		}

		num := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("debugger: STEP count must be a positive number (%s)", args[0])
			}
			num = n
		}

		for i := 0; i < num; i++ {
			if err := dbg.step(); err != nil {
				return err
			}
			if dbg.hel.CPU.State() != cpu.Running {
				break
			}
		}

	case cmdRun:
		if dbg.machineRunning {
			dbg.printLine(terminal.StyleFeedback, "machine is already running")
			return nil
		}
		return dbg.runMachine()

	case cmdHalt:
		if dbg.machineRunning {
			dbg.haltMachine = true
		} else {
			dbg.printLine(terminal.StyleFeedback, "machine is not running")
		}

	case cmdReset:
		if err := dbg.hel.Reset(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdRegs:
		dbg.printLine(terminal.StyleInstrument, dbg.hel.CPU.String())
		dbg.printLine(terminal.StyleInstrument, "cycles=%d state=%s", dbg.hel.Cycles(), dbg.hel.CPU.State())

	case cmdMem:
		if err := checkArgs(command, args, 1, 2); err != nil {
			return err
		}

		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}

		num := 1
		if len(args) == 2 {
			num, err = strconv.Atoi(args[1])
			if err != nil || num < 1 {
				return curated.Errorf("debugger: MEM count must be a positive number (%s)", args[1])
			}
		}

		return dbg.showMemory(addr, num)

	case cmdPoke:
		if err := checkArgs(command, args, 2, 2); err != nil {
			return err
		}

		addr, err := parseAddress(args[0])
		if err != nil {
			return err
		}

		val, err := parseValue(args[1])
		if err != nil {
			return err
		}

		if err := dbg.hel.Mem.Write(addr, val); err != nil {
			return err
		}

		dbg.printLine(terminal.StyleFeedback, "$%04x = %#02x", addr, val)

	case cmdDisasm:
		if !dbg.hel.Loader.HasLoaded() {
			return curated.Errorf("debugger: no program attached")
		}

		dsm := disassembly.FromProgram(dbg.hel.Loader.Origin, dbg.hel.Loader.Data)
		return dsm.Write(dbg.printStyle(terminal.StyleFeedback))

	case cmdAudio:
		dbg.printLine(terminal.StyleInstrument, dbg.hel.Audio.String())

	case cmdVideo:
		dbg.printLine(terminal.StyleInstrument, dbg.hel.Video.String())

	case cmdViz:
		if err := checkArgs(command, args, 1, 1); err != nil {
			return err
		}
		return dbg.viz(args[0])

	case cmdLog:
		logger.Write(dbg.printStyle(terminal.StyleLog))

	case cmdQuit:
		dbg.running = false

	default:
		return curated.Errorf("debugger: no such command (%s). try HELP", tokens[0])
	}

	return nil
}

// help responds to the HELP command.
func (dbg *Debugger) help(args []string) {
	if len(args) == 0 {
		dbg.printLine(terminal.StyleHelp, strings.Join(commandList, " "))
		return
	}

	command := strings.ToUpper(args[0])
	if txt, ok := helpText[command]; ok {
		dbg.printLine(terminal.StyleHelp, "%s: %s", command, txt)
	} else {
		dbg.printLine(terminal.StyleHelp, "no help for %s", args[0])
	}
}

// showMemory responds to the MEM command. a count of one shows the value in
// detail, larger counts are shown as a grid.
func (dbg *Debugger) showMemory(addr uint16, num int) error {
	if num == 1 {
		v, err := dbg.hel.Mem.Read(addr)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, "$%04x = %#02x (%d)", addr, v, v)
		return nil
	}

	s := strings.Builder{}
	for i := 0; i < num; i++ {
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("$%04x ", addr+uint16(i)))
		}

		v, err := dbg.hel.Mem.Read(addr + uint16(i))
		if err != nil {
			return err
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}

	dbg.printLine(terminal.StyleInstrument, s.String())

	return nil
}

// viz responds to the VIZ command, writing the object graph of the machine
// to file for rendering with graphviz.
func (dbg *Debugger) viz(filename string) error {
	if _, err := os.Stat(filename); err == nil {
		if !dbg.confirm(fmt.Sprintf("%s exists. overwrite (y/n)? ", filename)) {
			dbg.printLine(terminal.StyleFeedback, "%s not written", filename)
			return nil
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	memviz.Map(f, dbg.hel)

	if err := f.Close(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	dbg.printLine(terminal.StyleFeedback, "machine graph written to %s", filename)

	return nil
}

// confirm asks the user a yes/no question. anything other than an explicit
// yes is a no.
func (dbg *Debugger) confirm(msg string) bool {
	prompt := terminal.Prompt{
		Type:    terminal.PromptTypeConfirm,
		Content: msg,
	}

	n, err := dbg.term.TermRead(dbg.input[:], prompt, dbg.events)
	if err != nil || n == 0 {
		return false
	}

	answer := strings.TrimSpace(string(dbg.input[:n]))
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

// check the argument count for a command. minArgs and maxArgs may be equal.
func checkArgs(command string, args []string, minArgs, maxArgs int) error {
	if len(args) < minArgs || len(args) > maxArgs {
		return curated.Errorf("debugger: wrong number of arguments for %s. try HELP %s", command, command)
	}
	return nil
}

// parseAddress converts a string to a 16bit address. hexadecimal numbers are
// prefixed with $ or 0x, anything else is treated as decimal.
func parseAddress(s string) (uint16, error) {
	v, err := parseNumber(s, 16)
	return uint16(v), err
}

// parseValue converts a string to an 8bit value. the same prefix rules as
// parseAddress apply.
func parseValue(s string) (uint8, error) {
	v, err := parseNumber(s, 8)
	return uint8(v), err
}

func parseNumber(s string, bitSize int) (uint64, error) {
	var v uint64
	var err error

	switch {
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseUint(s[1:], 16, bitSize)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, bitSize)
	default:
		v, err = strconv.ParseUint(s, 10, bitSize)
	}

	if err != nil {
		return 0, curated.Errorf("debugger: not a valid number (%s)", s)
	}

	return v, nil
}
