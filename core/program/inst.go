package program

import (
	"fmt"
	"strconv"
)

// PC is the index of an instruction within a Program.
type PC uint64

// Code is an ordered sequence of instructions in postfix order.
type Code []Inst

// Inst is an instruction. The concrete type is decided when the instruction
// is pushed, so consumers dispatch with a type switch.
type Inst interface {
	fmt.Stringer

	// IsInst is a marker method. It does nothing, but stops types from being
	// erroneously used as an Inst.
	IsInst()
}

// InstOperand is a literal numeric constant.
type InstOperand struct {
	Value float64
}

// Operand returns an instruction that pushes a constant.
func Operand(value float64) Inst {
	return InstOperand{value}
}

// IsInst implements the Inst interface.
func (inst InstOperand) IsInst() {
}

func (inst InstOperand) String() string {
	return strconv.FormatFloat(inst.Value, 'g', -1, 64)
}

// InstVariable is a named reference that is resolved at evaluation time.
type InstVariable struct {
	Name string
}

// Variable returns an instruction that pushes the value bound to name.
func Variable(name string) Inst {
	return InstVariable{name}
}

// IsInst implements the Inst interface.
func (inst InstVariable) IsInst() {
}

func (inst InstVariable) String() string {
	return inst.Name
}

// InstOperator applies the operator identified by Symbol. Unknown symbols are
// accepted here and rejected when the Program is evaluated.
type InstOperator struct {
	Symbol string
}

// Operator returns an instruction that applies the operator symbol.
func Operator(symbol string) Inst {
	return InstOperator{symbol}
}

// IsInst implements the Inst interface.
func (inst InstOperator) IsInst() {
}

func (inst InstOperator) String() string {
	return inst.Symbol
}
