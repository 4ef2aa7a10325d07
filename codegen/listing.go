package codegen

import (
	"io"
	"strings"

	"slc/util"
)

// Enumeration of instruction mnemonics.
const (
	OpDeclare    = "DECLARE"
	OpLoad       = "LOAD"
	OpStore      = "STORE"
	OpAdd        = "ADD"
	OpSub        = "SUB"
	OpEq         = "EQ"
	OpJumpIfZero = "JUMP_IF_ZERO"

	// OpLabel marks a jump target: its operand is the label name.
	OpLabel = "LABEL"

	// OpComment is a placeholder line which does nothing.
	OpComment = ";"
)

// Instruction is a single line of generated pseudo-assembly.
type Instruction struct {
	// The mnemonic of the instruction.  This must be one of the enumerated
	// instruction mnemonics.
	Op string

	// The operand of the instruction.  This is empty for instructions that take
	// their operands from the stack.
	Operand string
}

func (inst Instruction) String() string {
	switch inst.Op {
	case OpLabel:
		return inst.Operand + ":"
	case OpComment:
		return "; " + inst.Operand
	}

	if inst.Operand == "" {
		return inst.Op
	}

	return inst.Op + " " + inst.Operand
}

// Listing is the output of the code generator: an ordered instruction stream
// and any warnings produced while generating it.
type Listing struct {
	Instrs []Instruction

	Warnings []string
}

// Lines returns the rendered instructions of the listing.
func (l *Listing) Lines() []string {
	return util.Map(l.Instrs, Instruction.String)
}

// String renders the listing one instruction per line.
func (l *Listing) String() string {
	sb := &strings.Builder{}

	for _, line := range l.Lines() {
		sb.WriteString(line)
		sb.WriteRune('\n')
	}

	return sb.String()
}

// WriteTo writes the rendered listing to w.
func (l *Listing) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.String())
	return int64(n), err
}
