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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/heliosemu/helios/assembler"
	"github.com/heliosemu/helios/debugger"
	"github.com/heliosemu/helios/debugger/terminal"
	"github.com/heliosemu/helios/debugger/terminal/colorterm"
	"github.com/heliosemu/helios/debugger/terminal/plainterm"
	"github.com/heliosemu/helios/disassembly"
	"github.com/heliosemu/helios/gui/sdlplay"
	"github.com/heliosemu/helios/hardware"
	"github.com/heliosemu/helios/hardware/instance"
	"github.com/heliosemu/helios/logger"
	"github.com/heliosemu/helios/modalflag"
	"github.com/heliosemu/helios/performance"
	"github.com/heliosemu/helios/romloader"
	"github.com/heliosemu/helios/statsview"
	"github.com/heliosemu/helios/version"
	"github.com/heliosemu/helios/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()

	// the first sub-mode is the default, chosen when the command line leads
	// with a filename rather than a mode
	md.AddSubModes("RUN", "DEBUG", "ASM", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = play(md)
	case "DEBUG":
		err = debug(md)
	case "ASM":
		err = asm(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 0, "window scale (0 means the video.scale preference)")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
		loader, err := romloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		ins, err := instance.NewInstance(nil)
		if err != nil {
			return err
		}

		hel, err := hardware.NewHelios(ins)
		if err != nil {
			return err
		}

		scr, err := sdlplay.NewSdlPlay(hel, *scale)
		if err != nil {
			return err
		}

		// route audio to file instead of the audio device if a wav has been
		// requested
		if *wav != "" {
			aw, err := wavwriter.New(*wav)
			if err != nil {
				return err
			}
			hel.Audio.SetMixer(aw)
			logger.Logf(logger.Allow, "helios", "audio routed to %s", *wav)
		}

		err = hel.AttachProgram(loader)
		if err != nil {
			return err
		}

		return scr.Run()
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	profile := md.AddBool("profile", false, "run debugger through cpu and memory profilers")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	ins, err := instance.NewInstance(nil)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(ins, term)
	if err != nil {
		return err
	}

	// the loader may be empty. the debugger is happy to start with nothing
	// attached
	var loader romloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		loader, err = romloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	dbgRun := func() error {
		return dbg.Start(loader)
	}

	if *profile {
		return performance.RunProfiler(performance.ProfileAll, "debugger", dbgRun)
	}

	return dbgRun()
}

func asm(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "", "write assembled bytes to file (default prints a listing)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("source file required for %s mode", md)
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()

		prg, err := assembler.Assemble(f)
		if err != nil {
			return err
		}

		if *output == "" {
			fmt.Fprint(md.Output, prg.String())
			return nil
		}

		err = os.WriteFile(*output, prg.Bytes, 0644)
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "%d bytes written to %s (origin 0x%04x)\n", len(prg.Bytes), *output, prg.Origin)

		// raw images are always loaded at the default origin. a program
		// assembled around any other address will misbehave when the binary
		// is loaded back
		if prg.Origin != romloader.DefaultOrigin {
			fmt.Fprintf(md.Output, "! origin is not 0x%04x. the binary will not load back at the assembled address\n", romloader.DefaultOrigin)
		}

		return nil
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
		loader, err := romloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		origin, data, err := loader.Load()
		if err != nil {
			return err
		}

		dsm := disassembly.FromProgram(origin, data)

		return dsm.Write(md.Output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "profile the run: CPU, MEM, ALL or NONE")
	stats := md.AddBool("statsview", false, "run stats server (requires the 'statsview' build constraint)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
		loader, err := romloader.NewLoader(md.GetArg(0))
		if err != nil {
			return err
		}

		return performance.Check(md.Output, prof, loader, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintf(md.Output, "Helios %s\n", ver)
	if *revision {
		fmt.Fprintf(md.Output, "  %s\n", rev)
	}

	return nil
}
