package program

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientOperands is returned when an operator is reached with
	// fewer operands on the stack than its arity.
	ErrInsufficientOperands = errors.New("insufficient operands")

	// ErrEmptyResult is returned when execution leaves nothing on the stack.
	ErrEmptyResult = errors.New("empty result")

	// ErrUnknownOperator is returned when an operator symbol is not in the
	// operator table.
	ErrUnknownOperator = errors.New("unknown operator")
)

// ExecutionError wraps the error that stopped execution together with the
// instruction at which it happened.
type ExecutionError struct {
	PC  PC
	Err error
}

// NewExecutionError returns an ExecutionError for the instruction at pc.
func NewExecutionError(err error, pc PC) error {
	return ExecutionError{
		PC:  pc,
		Err: err,
	}
}

// NewUnknownOperatorError returns an ExecutionError for an operator symbol
// that is not in the operator table.
func NewUnknownOperatorError(symbol string, pc PC) error {
	return NewExecutionError(
		fmt.Errorf("%w %q", ErrUnknownOperator, symbol),
		pc,
	)
}

func (err ExecutionError) Error() string {
	return fmt.Sprintf("execution error at instruction %v = %v", err.PC, err.Err)
}

func (err ExecutionError) Unwrap() error {
	return err.Err
}
