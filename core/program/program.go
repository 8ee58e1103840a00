package program

import (
	"strings"
)

// Bindings map variable names to the values used when evaluating a Program.
type Bindings map[string]float64

// A Program is an immutable snapshot of an instruction log. Copying a Program
// is cheap and never aliases the log it was taken from.
type Program struct {
	code Code
}

// New returns a Program holding a private copy of the code.
func New(code Code) Program {
	if len(code) == 0 {
		return Program{}
	}
	cp := make(Code, len(code))
	copy(cp, code)
	return Program{cp}
}

// Len returns the number of instructions.
func (prog Program) Len() int {
	return len(prog.code)
}

// IsEmpty returns true when the Program has no instructions.
func (prog Program) IsEmpty() bool {
	return len(prog.code) == 0
}

// At returns the instruction at pc. It panics when pc is out of range.
func (prog Program) At(pc PC) Inst {
	return prog.code[pc]
}

// Code returns a copy of the instructions.
func (prog Program) Code() Code {
	cp := make(Code, len(prog.code))
	copy(cp, prog.code)
	return cp
}

// Each calls f for every instruction in order.
func (prog Program) Each(f func(pc PC, inst Inst)) {
	for i, inst := range prog.code {
		f(PC(i), inst)
	}
}

// String returns the postfix form of the Program, one token per instruction.
func (prog Program) String() string {
	tokens := make([]string, len(prog.code))
	for i, inst := range prog.code {
		tokens[i] = inst.String()
	}
	return strings.Join(tokens, " ")
}
