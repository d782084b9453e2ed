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

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/heliosemu/helios/curated"
)

// error patterns for the errors returned by Assemble(). every pattern takes
// the one-indexed source line number as the first argument.
const (
	SyntaxError                = "assembler: line %d: syntax error (%s)"
	UnknownInstruction         = "assembler: line %d: unknown instruction (%s)"
	UnknownDirective           = "assembler: line %d: unknown directive (%s)"
	AddressingModeNotSupported = "assembler: line %d: addressing mode not supported (%s)"
	OperandOutOfRange          = "assembler: line %d: operand out of range (%s)"
	DuplicateLabel             = "assembler: line %d: duplicate label (%s)"
	UndefinedLabel             = "assembler: line %d: undefined label (%s)"
)

// Program is the result of a successful assembly.
type Program struct {
	// Origin is the lowest address the source emitted a byte to. Bytes spans
	// from there to the highest emitted address, with any unwritten gap
	// reading as zero.
	Origin uint16
	Bytes  []uint8

	// one Entry for every emitting source line, in emission order
	Entries []Entry
}

// Entry records where the bytes for a single source line were placed. the
// Entries field of Program is the raw material for program listings and for
// mapping an address back to the source.
type Entry struct {
	Address uint16
	Bytes   []uint8
	Line    int
	Source  string
}

func (e Entry) String() string {
	b := strings.Builder{}
	for _, v := range e.Bytes {
		b.WriteString(fmt.Sprintf("%02x ", v))
	}
	return fmt.Sprintf("0x%04x  %-9s %s", e.Address, strings.TrimSpace(b.String()), e.Source)
}

// String returns the listing for the assembled program, one line per Entry.
func (p Program) String() string {
	b := strings.Builder{}
	for _, e := range p.Entries {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Assemble compiles source text read from r into a Program. compilation stops
// at the first error and in that instance no program is returned.
func Assemble(r io.Reader) (*Program, error) {
	p := &parser{tbl: newLookupTable()}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := p.parseLine(lineNum, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("assembler: %v", err)
	}

	labels, err := collectLabels(p.stmts)
	if err != nil {
		return nil, err
	}

	return generate(p.stmts, labels)
}

// collectLabels is the first assembly pass. it walks the statement list
// maintaining the address counter and records the counter value for every
// label definition.
func collectLabels(stmts []statement) (map[string]uint16, error) {
	labels := make(map[string]uint16)

	var counter uint16
	for _, s := range stmts {
		switch s.typ {
		case stmtLabel:
			if _, ok := labels[s.name]; ok {
				return nil, curated.Errorf(DuplicateLabel, s.lineNum, s.name)
			}
			labels[s.name] = counter
		case stmtOrg:
			counter = s.value
		case stmtWord:
			counter += 2
		case stmtInstruction:
			counter += uint16(s.defn.Bytes)
		}
	}

	return labels, nil
}

// generate is the second assembly pass. statements emit into a sparse image
// covering the whole address space, allowing a program to place code and
// vectors in disjoint regions.
func generate(stmts []statement, labels map[string]uint16) (*Program, error) {
	img := make([]uint8, 0x10000)

	prg := &Program{}

	var counter uint16
	lo := len(img)
	hi := -1

	emit := func(b []uint8) {
		for _, v := range b {
			a := int(counter)
			img[a] = v
			if a < lo {
				lo = a
			}
			if a > hi {
				hi = a
			}
			counter++
		}
	}

	resolve := func(s statement) (uint16, error) {
		if s.name == "" {
			return s.value, nil
		}
		v, ok := labels[s.name]
		if !ok {
			return 0, curated.Errorf(UndefinedLabel, s.lineNum, s.name)
		}
		return v, nil
	}

	for _, s := range stmts {
		var b []uint8

		switch s.typ {
		case stmtLabel:
			// labels emit nothing
			continue

		case stmtOrg:
			counter = s.value
			continue

		case stmtWord:
			v, err := resolve(s)
			if err != nil {
				return nil, err
			}
			b = []uint8{uint8(v), uint8(v >> 8)}

		case stmtInstruction:
			v, err := resolve(s)
			if err != nil {
				return nil, err
			}
			b = make([]uint8, 0, s.defn.Bytes)
			b = append(b, s.defn.OpCode)
			switch s.defn.AddressingMode.OperandBytes() {
			case 1:
				b = append(b, uint8(v))
			case 2:
				b = append(b, uint8(v), uint8(v>>8))
			}
		}

		prg.Entries = append(prg.Entries, Entry{
			Address: counter,
			Bytes:   b,
			Line:    s.lineNum,
			Source:  s.source,
		})
		emit(b)
	}

	if hi >= lo {
		prg.Origin = uint16(lo)
		prg.Bytes = img[lo : hi+1]
	}

	return prg, nil
}
