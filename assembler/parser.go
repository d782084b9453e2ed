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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/heliosemu/helios/curated"
	"github.com/heliosemu/helios/hardware/cpu/instructions"
)

type statementType int

const (
	stmtLabel statementType = iota
	stmtOrg
	stmtWord
	stmtInstruction
)

// operandClass is the syntactic form of an instruction operand. most forms
// map directly onto an addressing mode. the remainder are forms from the
// wider 6502 family that no instruction in this machine implements. those
// parse successfully and are rejected at the table lookup, which gives a more
// useful error than a syntax failure would.
type operandClass int

const (
	operandNone operandClass = iota
	operandImmediate
	operandZeroPage
	operandZeroPageX
	operandAbsolute

	// recognised but never present in the instruction table
	operandAbsoluteX
	operandIndexedY
	operandIndirect
)

// addressingMode maps an operand form to the table's addressing mode. the
// boolean is false for the forms this machine never implements.
func (c operandClass) addressingMode() (instructions.AddressingMode, bool) {
	switch c {
	case operandNone:
		return instructions.Implied, true
	case operandImmediate:
		return instructions.Immediate, true
	case operandZeroPage:
		return instructions.ZeroPage, true
	case operandZeroPageX:
		return instructions.ZeroPageIndexedX, true
	case operandAbsolute:
		return instructions.Absolute, true
	}
	return instructions.Implied, false
}

// statement is a single parsed line of source. the statement list built by
// the parser is the intermediate form walked by both assembly passes, meaning
// that source text is only ever parsed once.
type statement struct {
	lineNum int
	source  string
	typ     statementType

	// the label being defined (stmtLabel) or referenced (stmtWord and
	// stmtInstruction with an absolute operand). empty when the operand is a
	// literal
	name string

	// literal operand or directive argument
	value uint16

	// stmtInstruction only
	defn *instructions.Definition
}

// lookupTable indexes the instruction table by mnemonic and addressing mode.
type lookupTable map[string]map[instructions.AddressingMode]*instructions.Definition

func newLookupTable() lookupTable {
	tbl := make(lookupTable)
	for _, defn := range instructions.GetDefinitions() {
		if defn == nil {
			continue
		}
		modes, ok := tbl[defn.Mnemonic]
		if !ok {
			modes = make(map[instructions.AddressingMode]*instructions.Definition)
			tbl[defn.Mnemonic] = modes
		}
		modes[defn.AddressingMode] = defn
	}
	return tbl
}

type parser struct {
	tbl   lookupTable
	stmts []statement
}

// parseLine lexes and parses a single line of source, appending at most one
// statement to the parser's statement list.
func (p *parser) parseLine(lineNum int, text string) error {
	source := strings.TrimSpace(text)

	// comments run to the end of the line
	if idx := strings.Index(text, ";"); idx != -1 {
		text = text[:idx]
	}

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	// a label definition occupies the whole line
	if strings.HasSuffix(fields[0], ":") {
		if len(fields) > 1 {
			return curated.Errorf(SyntaxError, lineNum, source)
		}
		name := strings.TrimSuffix(fields[0], ":")
		if !validLabel(name) {
			return curated.Errorf(SyntaxError, lineNum, fields[0])
		}
		p.stmts = append(p.stmts, statement{
			lineNum: lineNum,
			source:  source,
			typ:     stmtLabel,
			name:    name,
		})
		return nil
	}

	// whitespace inside an operand is insignificant. joining the remaining
	// fields accepts "$00 , X" and "$00,X" equally
	operand := strings.Join(fields[1:], "")

	if strings.HasPrefix(fields[0], ".") {
		return p.parseDirective(lineNum, source, strings.ToLower(fields[0]), operand)
	}

	return p.parseInstruction(lineNum, source, strings.ToUpper(fields[0]), operand)
}

func (p *parser) parseDirective(lineNum int, source string, directive string, arg string) error {
	switch directive {
	case ".org":
		if arg == "" {
			return curated.Errorf(SyntaxError, lineNum, source)
		}
		v, err := parseValue(arg, lineNum)
		if err != nil {
			return err
		}
		p.stmts = append(p.stmts, statement{
			lineNum: lineNum,
			source:  source,
			typ:     stmtOrg,
			value:   v,
		})

	case ".word":
		if arg == "" {
			return curated.Errorf(SyntaxError, lineNum, source)
		}
		s := statement{
			lineNum: lineNum,
			source:  source,
			typ:     stmtWord,
		}
		if isValueForm(arg) {
			v, err := parseValue(arg, lineNum)
			if err != nil {
				return err
			}
			s.value = v
		} else {
			if !validLabel(arg) {
				return curated.Errorf(SyntaxError, lineNum, arg)
			}
			s.name = arg
		}
		p.stmts = append(p.stmts, s)

	default:
		return curated.Errorf(UnknownDirective, lineNum, directive)
	}

	return nil
}

func (p *parser) parseInstruction(lineNum int, source string, mnemonic string, operand string) error {
	modes, ok := p.tbl[mnemonic]
	if !ok {
		return curated.Errorf(UnknownInstruction, lineNum, mnemonic)
	}

	class, value, name, err := parseOperand(operand, lineNum)
	if err != nil {
		return err
	}

	detail := mnemonic
	if operand != "" {
		detail = fmt.Sprintf("%s %s", mnemonic, operand)
	}

	mode, ok := class.addressingMode()
	if !ok {
		return curated.Errorf(AddressingModeNotSupported, lineNum, detail)
	}

	defn, ok := modes[mode]
	if !ok {
		return curated.Errorf(AddressingModeNotSupported, lineNum, detail)
	}

	p.stmts = append(p.stmts, statement{
		lineNum: lineNum,
		source:  source,
		typ:     stmtInstruction,
		name:    name,
		value:   value,
		defn:    defn,
	})

	return nil
}

// parseOperand classifies an instruction operand, returning the literal value
// or the referenced label name as appropriate.
func parseOperand(operand string, lineNum int) (operandClass, uint16, string, error) {
	if operand == "" {
		return operandNone, 0, "", nil
	}

	// immediate operands are always literal values
	if strings.HasPrefix(operand, "#") {
		v, err := parseValue(operand[1:], lineNum)
		if err != nil {
			return operandNone, 0, "", err
		}
		if v > 0xff {
			return operandNone, 0, "", curated.Errorf(OperandOutOfRange, lineNum, operand)
		}
		return operandImmediate, v, "", nil
	}

	// indirection brackets parse cleanly but nothing in the instruction
	// table accepts them
	if strings.HasPrefix(operand, "(") {
		return operandIndirect, 0, "", nil
	}

	// a ,X or ,Y suffix selects an indexed form of the base operand
	base := operand
	var indexedX, indexedY bool
	if idx := strings.LastIndex(operand, ","); idx != -1 {
		switch strings.ToUpper(operand[idx+1:]) {
		case "X":
			indexedX = true
		case "Y":
			indexedY = true
		default:
			return operandNone, 0, "", curated.Errorf(SyntaxError, lineNum, operand)
		}
		base = operand[:idx]
	}

	if isValueForm(base) {
		v, err := parseValue(base, lineNum)
		if err != nil {
			return operandNone, 0, "", err
		}

		// hexadecimal literals select zero page addressing by digit count.
		// decimal and binary literals select by value
		var zeroPage bool
		if strings.HasPrefix(base, "$") {
			zeroPage = len(base) <= 3
		} else {
			zeroPage = v <= 0xff
		}

		switch {
		case indexedY:
			return operandIndexedY, v, "", nil
		case zeroPage && indexedX:
			return operandZeroPageX, v, "", nil
		case zeroPage:
			return operandZeroPage, v, "", nil
		case indexedX:
			return operandAbsoluteX, v, "", nil
		}
		return operandAbsolute, v, "", nil
	}

	// a bare identifier references a label and always assembles to an
	// absolute address
	if !validLabel(base) {
		return operandNone, 0, "", curated.Errorf(SyntaxError, lineNum, operand)
	}
	switch {
	case indexedY:
		return operandIndexedY, 0, base, nil
	case indexedX:
		return operandAbsoluteX, 0, base, nil
	}
	return operandAbsolute, 0, base, nil
}

// parseValue converts a numeric literal. literals are hexadecimal ($), binary
// (%) or decimal.
func parseValue(s string, lineNum int) (uint16, error) {
	var v uint64
	var err error

	switch {
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseUint(s[1:], 16, 64)
	case strings.HasPrefix(s, "%"):
		v, err = strconv.ParseUint(s[1:], 2, 64)
	default:
		v, err = strconv.ParseUint(s, 10, 64)
	}

	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, curated.Errorf(OperandOutOfRange, lineNum, s)
		}
		return 0, curated.Errorf(SyntaxError, lineNum, s)
	}
	if v > 0xffff {
		return 0, curated.Errorf(OperandOutOfRange, lineNum, s)
	}

	return uint16(v), nil
}

func isValueForm(s string) bool {
	if s == "" {
		return false
	}
	return s[0] == '$' || s[0] == '%' || (s[0] >= '0' && s[0] <= '9')
}

// labels are case-sensitive identifiers. mnemonics occupy a different
// position in the grammar so there are no reserved names.
func validLabel(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
