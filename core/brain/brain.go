package brain

import (
	"github.com/republicprotocol/calc-go/core/program"
)

// A Brain owns an append-only instruction log. Pushes never fail and perform
// no validation; problems surface when a snapshot is evaluated. A Brain is not
// safe for concurrent use.
type Brain struct {
	code program.Code
}

// New returns a Brain with an empty log.
func New() *Brain {
	return &Brain{
		code: program.Code{},
	}
}

// NewFromProgram returns a Brain whose log starts as a copy of the Program.
func NewFromProgram(prog program.Program) *Brain {
	return &Brain{
		code: prog.Code(),
	}
}

// PushOperand appends a literal constant.
func (brain *Brain) PushOperand(value float64) {
	brain.code = append(brain.code, program.Operand(value))
}

// PushVariable appends a reference to a named variable.
func (brain *Brain) PushVariable(name string) {
	brain.code = append(brain.code, program.Variable(name))
}

// PushOperator appends an operator symbol.
func (brain *Brain) PushOperator(symbol string) {
	brain.code = append(brain.code, program.Operator(symbol))
}

// RemoveLast removes the most recent instruction. It does nothing when the log
// is empty.
func (brain *Brain) RemoveLast() {
	if len(brain.code) == 0 {
		return
	}
	brain.code[len(brain.code)-1] = nil
	brain.code = brain.code[:len(brain.code)-1]
}

// Clear empties the log.
func (brain *Brain) Clear() {
	brain.code = program.Code{}
}

// Len returns the number of instructions in the log.
func (brain *Brain) Len() int {
	return len(brain.code)
}

// Snapshot returns an immutable copy of the log.
func (brain *Brain) Snapshot() program.Program {
	return program.New(brain.code)
}
