// Package op defines the fixed operator vocabulary of a program: the arity,
// precedence, and semantics of every symbol.
package op

import (
	"math"
)

// Precedence levels used when rendering infix descriptions. Atoms and
// function calls never need parentheses.
const (
	PrecedenceAdditive       = 1
	PrecedenceMultiplicative = 2
	MaxPrecedence            = 3
)

// Operator symbols.
const (
	Add      = "+"
	Subtract = "−"
	Multiply = "×"
	Divide   = "÷"
	Sin      = "sin"
	Cos      = "cos"
	Sqrt     = "√"
	Pi       = "π"
)

// An Operator consumes Arity operands and produces one value.
type Operator struct {
	Symbol      string
	Arity       int
	Precedence  int
	Commutative bool

	apply func(args []float64) float64
}

// Apply the Operator to its operands, in push order. It panics when the number
// of operands does not match the arity.
func (op Operator) Apply(args []float64) float64 {
	if len(args) != op.Arity {
		panic("operand count does not match operator arity")
	}
	return op.apply(args)
}

// IsUnary returns true for function-call operators.
func (op Operator) IsUnary() bool {
	return op.Arity == 1
}

// IsBinary returns true for infix operators.
func (op Operator) IsBinary() bool {
	return op.Arity == 2
}

// IsConstant returns true for operators that push a value without popping.
func (op Operator) IsConstant() bool {
	return op.Arity == 0
}

var table = map[string]Operator{
	Add: {
		Symbol: Add, Arity: 2, Precedence: PrecedenceAdditive, Commutative: true,
		apply: func(args []float64) float64 { return args[0] + args[1] },
	},
	Subtract: {
		Symbol: Subtract, Arity: 2, Precedence: PrecedenceAdditive,
		apply: func(args []float64) float64 { return args[0] - args[1] },
	},
	Multiply: {
		Symbol: Multiply, Arity: 2, Precedence: PrecedenceMultiplicative, Commutative: true,
		apply: func(args []float64) float64 { return args[0] * args[1] },
	},
	Divide: {
		Symbol: Divide, Arity: 2, Precedence: PrecedenceMultiplicative,
		apply: divide,
	},
	Sin: {
		Symbol: Sin, Arity: 1, Precedence: MaxPrecedence,
		apply: func(args []float64) float64 { return math.Sin(args[0]) },
	},
	Cos: {
		Symbol: Cos, Arity: 1, Precedence: MaxPrecedence,
		apply: func(args []float64) float64 { return math.Cos(args[0]) },
	},
	Sqrt: {
		Symbol: Sqrt, Arity: 1, Precedence: MaxPrecedence,
		apply: func(args []float64) float64 { return math.Sqrt(args[0]) },
	},
	Pi: {
		Symbol: Pi, Arity: 0, Precedence: MaxPrecedence,
		apply: func(args []float64) float64 { return math.Pi },
	},
}

// divide yields NaN instead of an infinity when the divisor is zero.
func divide(args []float64) float64 {
	if args[1] == 0 {
		return math.NaN()
	}
	return args[0] / args[1]
}

// Lookup returns the Operator for a symbol.
func Lookup(symbol string) (Operator, bool) {
	op, ok := table[symbol]
	return op, ok
}

// Precedence returns the precedence of a symbol. Unknown symbols are treated
// as atoms.
func Precedence(symbol string) int {
	if op, ok := table[symbol]; ok {
		return op.Precedence
	}
	return MaxPrecedence
}

// Symbols returns every known operator symbol.
func Symbols() []string {
	return []string{Add, Subtract, Multiply, Divide, Sin, Cos, Sqrt, Pi}
}

// NeedsParens returns true when a fragment of precedence operand, appearing on
// the given side of a binary operator, must be parenthesised. Operators of
// equal precedence are left associative, so only the right side of a
// non-commutative operator keeps its parentheses on a tie.
func NeedsParens(operator Operator, operand int, right bool) bool {
	if operand < operator.Precedence {
		return true
	}
	return right && operand == operator.Precedence && !operator.Commutative
}
