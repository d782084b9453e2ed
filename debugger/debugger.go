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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/debugger/terminal"
	"github.com/heliosemu/helios/disassembly"
	"github.com/heliosemu/helios/hardware"
	"github.com/heliosemu/helios/hardware/cpu"
	"github.com/heliosemu/helios/hardware/instance"
	"github.com/heliosemu/helios/romloader"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	hel  *hardware.Helios
	term terminal.Terminal

	// events that are monitored by the terminal whenever it is waiting for
	// input
	events *terminal.ReadEvents

	// buffer for user input
	input [255]byte

	// the debugger session is live. set to false by the QUIT command
	running bool

	// the machine is inside runMachine(). commands delivered mid-run behave
	// differently to commands given at the prompt
	machineRunning bool

	// the machine should stop running and the debugger return to the input
	// prompt. set by the HALT command
	haltMachine bool
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
func NewDebugger(ins *instance.Instance, term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		term: term,
	}

	var err error

	dbg.hel, err = hardware.NewHelios(ins)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	// output from the DBG instruction is sent to the terminal
	dbg.hel.CPU.AttachDiagnostics(dbg)

	// interrupt signals are caught while the terminal waits for input and
	// polled while the machine runs
	dbg.events = &terminal.ReadEvents{
		IntEvents: make(chan os.Signal, 1),
	}
	signal.Notify(dbg.events.IntEvents, os.Interrupt)

	dbg.term.RegisterTabCompletion(newTabCompletion())

	return dbg, nil
}

// Start the main debugger sequence. The loader may be empty, in which case
// the machine idles from a cold start until a program is attached or poked
// into memory.
func (dbg *Debugger) Start(loader romloader.Loader) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	if loader.Filename != "" {
		err = dbg.hel.AttachProgram(loader)
		if err != nil {
			return curated.Errorf("debugger: %v", err)
		}
		dbg.printLine(terminal.StyleFeedback, "%s attached (%s)", dbg.hel.Loader.ShortName(), dbg.hel.Loader.Hash)
	}

	dbg.running = true

	err = dbg.inputLoop()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	return nil
}

// inputLoop is the main input loop of the debugger. it ends when the QUIT
// command is given, the terminal input is exhausted, or the terminal fails.
func (dbg *Debugger) inputLoop() error {
	for dbg.running {
		n, err := dbg.term.TermRead(dbg.input[:], dbg.buildPrompt(), dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				dbg.running = false
				continue
			}

			// a terminal reading from a pipe or a script file runs out of
			// input eventually. treat it like a QUIT
			if errors.Is(err, io.EOF) {
				dbg.running = false
				continue
			}

			return err
		}

		err = dbg.parseInput(string(dbg.input[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// buildPrompt decodes the instruction at the current program counter. the
// decode is static, nothing is executed.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	if dbg.hel.CPU.State() != cpu.Running {
		return terminal.Prompt{
			Type:    terminal.PromptTypeCPUStep,
			Content: dbg.hel.CPU.State().String(),
		}
	}

	content := fmt.Sprintf("$%04x", dbg.hel.CPU.PC.Address())

	dsm, err := disassembly.FromBus(dbg.hel.Mem, dbg.hel.CPU.PC.Address(), 1)
	if err == nil && len(dsm.Entries) == 1 {
		content = dsm.Entries[0].String()
	}

	return terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: content,
	}
}

// step the machine one instruction and echo the result.
func (dbg *Debugger) step() error {
	if dbg.hel.CPU.State() != cpu.Running {
		dbg.printLine(terminal.StyleFeedback, "machine has %s. use RESET to restart it", dbg.hel.CPU.State())
		return nil
	}

	err := dbg.hel.Step()
	if err != nil {
		return err
	}

	dbg.printLine(terminal.StyleCPUStep, disassembly.FormatResult(dbg.hel.CPU.LastResult).String())

	return nil
}

// runMachine runs the machine until it stops itself or until the user
// intervenes. the interrupt channel and the terminal are polled every
// PerformanceBrake instructions.
func (dbg *Debugger) runMachine() error {
	if dbg.hel.CPU.State() != cpu.Running {
		dbg.printLine(terminal.StyleFeedback, "machine has %s. use RESET to restart it", dbg.hel.CPU.State())
		return nil
	}

	dbg.machineRunning = true
	defer func() {
		dbg.machineRunning = false
		dbg.haltMachine = false
	}()

	performanceFilter := 0

	for {
		if err := dbg.hel.Step(); err != nil {
			return err
		}

		if dbg.hel.CPU.State() != cpu.Running {
			dbg.printLine(terminal.StyleFeedbackNonInteractive, "machine has %s", dbg.hel.CPU.State())
			return nil
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0

			select {
			case <-dbg.events.IntEvents:
				dbg.printLine(terminal.StyleFeedbackNonInteractive, "interrupted at %s", disassembly.FormatResult(dbg.hel.CPU.LastResult).String())
				return nil
			default:
			}

			// some terminals can deliver commands while the machine runs
			if dbg.term.TermReadCheck() {
				n, err := dbg.term.TermRead(dbg.input[:], dbg.buildPrompt(), dbg.events)
				if err != nil {
					return err
				}

				err = dbg.parseInput(string(dbg.input[:n]))
				if err != nil {
					dbg.printLine(terminal.StyleError, "%v", err)
				}

				if dbg.haltMachine || !dbg.running {
					return nil
				}
			}
		}
	}
}

// Diagnostic implements the cpu.Diagnostics interface. values read by the DBG
// instruction appear in the terminal whatever the machine is doing.
func (dbg *Debugger) Diagnostic(address uint16, value uint8) {
	dbg.printLine(terminal.StyleInstrument, "DBG $%04x = %#02x (%d)", address, value, value)
}
