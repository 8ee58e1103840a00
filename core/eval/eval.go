// Package eval executes a Program as a postfix stack machine.
package eval

import (
	"math"

	"github.com/republicprotocol/calc-go/core/op"
	"github.com/republicprotocol/calc-go/core/program"
	"github.com/republicprotocol/calc-go/core/stack"
)

// Evaluate runs the Program against the bindings and returns the topmost value
// left on the stack. Variables missing from the bindings evaluate to NaN. The
// returned error wraps program.ErrInsufficientOperands,
// program.ErrUnknownOperator, or program.ErrEmptyResult.
func Evaluate(prog program.Program, bindings program.Bindings) (float64, error) {
	// A Program of n instructions never holds more than n values.
	values := stack.New[float64](prog.Len() + 1)

	for pc := program.PC(0); pc < program.PC(prog.Len()); pc++ {
		switch inst := prog.At(pc).(type) {

		case program.InstOperand:
			if err := values.Push(inst.Value); err != nil {
				return math.NaN(), program.NewExecutionError(err, pc)
			}

		case program.InstVariable:
			if err := values.Push(lookup(bindings, inst.Name)); err != nil {
				return math.NaN(), program.NewExecutionError(err, pc)
			}

		case program.InstOperator:
			if err := execOperator(&values, inst, pc); err != nil {
				return math.NaN(), err
			}

		default:
			panic("unexpected instruction type")
		}
	}

	ret, err := values.Peek()
	if err != nil {
		return math.NaN(), program.NewExecutionError(program.ErrEmptyResult, program.PC(prog.Len()))
	}
	return ret, nil
}

func execOperator(values *stack.Stack[float64], inst program.InstOperator, pc program.PC) error {
	operator, ok := op.Lookup(inst.Symbol)
	if !ok {
		return program.NewUnknownOperatorError(inst.Symbol, pc)
	}

	args, err := values.PopN(operator.Arity)
	if err != nil {
		return program.NewExecutionError(program.ErrInsufficientOperands, pc)
	}
	if err := values.Push(operator.Apply(args)); err != nil {
		return program.NewExecutionError(err, pc)
	}
	return nil
}

func lookup(bindings program.Bindings, name string) float64 {
	if value, ok := bindings[name]; ok {
		return value
	}
	return math.NaN()
}

// IsDefined returns true when a result is a finite number. Missing variables,
// division by zero, and square roots of negatives all produce undefined
// results.
func IsDefined(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
