package calc

import (
	"github.com/republicprotocol/calc-go/core/brain"
	"github.com/republicprotocol/calc-go/core/desc"
	"github.com/republicprotocol/calc-go/core/eval"
	"github.com/republicprotocol/calc-go/core/program"
)

type (
	Brain = brain.Brain

	Program = program.Program

	Bindings = program.Bindings

	Set = program.Set

	ExecutionError = program.ExecutionError
)

var (
	New = brain.New

	NewFromProgram = brain.NewFromProgram

	Describe = desc.Describe

	DescribeAll = desc.DescribeAll

	Evaluate = eval.Evaluate

	IsDefined = eval.IsDefined

	VariablesUsed = program.VariablesUsed

	ErrInsufficientOperands = program.ErrInsufficientOperands

	ErrEmptyResult = program.ErrEmptyResult

	ErrUnknownOperator = program.ErrUnknownOperator
)
