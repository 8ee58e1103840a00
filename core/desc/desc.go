// Package desc renders a postfix Program as infix text. Rendering never
// fails: missing operands are shown as a placeholder and disconnected
// expressions are reported separately.
package desc

import (
	"fmt"
	"strings"

	"github.com/republicprotocol/calc-go/core/op"
	"github.com/republicprotocol/calc-go/core/program"
	"github.com/republicprotocol/calc-go/core/stack"
)

const (
	// Placeholder stands in for an operand that the Program does not provide.
	Placeholder = "?"

	// Separator joins top-level expressions.
	Separator = ", "
)

type fragment struct {
	text       string
	precedence int
}

func atom(text string) fragment {
	return fragment{text, op.MaxPrecedence}
}

// Describe renders every top-level expression of the Program, oldest first,
// joined by the Separator. An empty Program renders as the empty string.
func Describe(prog program.Program) string {
	return strings.Join(DescribeAll(prog), Separator)
}

// DescribeAll renders every top-level expression of the Program, oldest
// first.
func DescribeAll(prog program.Program) []string {
	// Every instruction leaves at most one fragment, so pushing can never
	// overflow a stack of this size.
	frags := stack.New[fragment](prog.Len() + 1)

	prog.Each(func(pc program.PC, inst program.Inst) {
		frag := fragment{}
		switch inst := inst.(type) {

		case program.InstOperand, program.InstVariable:
			frag = atom(inst.String())

		case program.InstOperator:
			frag = describeOperator(&frags, inst)

		default:
			panic("unexpected instruction type")
		}
		if err := frags.Push(frag); err != nil {
			panic(err)
		}
	})

	exprs := make([]string, 0, frags.Len())
	for _, frag := range frags.Elements() {
		exprs = append(exprs, frag.text)
	}
	return exprs
}

func describeOperator(frags *stack.Stack[fragment], inst program.InstOperator) fragment {
	operator, ok := op.Lookup(inst.Symbol)
	if !ok {
		return atom(inst.Symbol)
	}

	switch {
	case operator.IsBinary():
		rhs := pop(frags)
		lhs := pop(frags)
		return fragment{
			text: fmt.Sprintf("%s %s %s",
				parenthesise(lhs, op.NeedsParens(operator, lhs.precedence, false)),
				operator.Symbol,
				parenthesise(rhs, op.NeedsParens(operator, rhs.precedence, true))),
			precedence: operator.Precedence,
		}

	case operator.IsUnary():
		return atom(fmt.Sprintf("%s(%s)", operator.Symbol, pop(frags).text))

	default:
		return atom(operator.Symbol)
	}
}

func pop(frags *stack.Stack[fragment]) fragment {
	frag, err := frags.Pop()
	if err != nil {
		return atom(Placeholder)
	}
	return frag
}

func parenthesise(frag fragment, parens bool) string {
	if parens {
		return "(" + frag.text + ")"
	}
	return frag.text
}
