package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/republicprotocol/calc-go/core/brain"
	"github.com/republicprotocol/calc-go/core/desc"
	"github.com/republicprotocol/calc-go/core/eval"
	"github.com/republicprotocol/calc-go/core/op"
	"github.com/republicprotocol/calc-go/core/plot"
	"github.com/republicprotocol/calc-go/core/program"
)

const (
	tokenUndo  = "undo"
	tokenClear = "clear"
)

// ASCII spellings of operator symbols that are awkward to type.
var aliases = map[string]string{
	"-":    op.Subtract,
	"*":    op.Multiply,
	"/":    op.Divide,
	"sqrt": op.Sqrt,
	"pi":   op.Pi,
}

// push applies one token to the brain: a number, an operator, an edit command,
// or otherwise a variable name.
func push(b *brain.Brain, token string) {
	switch token {
	case tokenUndo:
		b.RemoveLast()
		return
	case tokenClear:
		b.Clear()
		return
	}

	if symbol, ok := aliases[token]; ok {
		token = symbol
	}
	if _, ok := op.Lookup(token); ok {
		b.PushOperator(token)
		return
	}
	if value, err := strconv.ParseFloat(token, 64); err == nil {
		b.PushOperand(value)
		return
	}
	b.PushVariable(token)
}

// pushLine applies every whitespace separated token of the line.
func pushLine(b *brain.Brain, line string) {
	for _, token := range strings.Fields(line) {
		push(b, token)
	}
}

// report writes the description, result, and variables of the current program.
func report(w io.Writer, prog program.Program, bindings program.Bindings) {
	description := desc.Describe(prog)
	fmt.Fprintf(w, "%s\n", description)

	ret, err := eval.Evaluate(prog, bindings)
	switch {
	case err != nil:
		slog.Debug("Evaluation failed", slog.String("program", prog.String()), slog.String("error", err.Error()))
		fmt.Fprintf(w, "error: %v\n", err)
	case !eval.IsDefined(ret):
		fmt.Fprintf(w, "= undefined\n")
	default:
		fmt.Fprintf(w, "= %s\n", strconv.FormatFloat(ret, 'g', -1, 64))
	}

	if vars := program.VariablesUsed(prog); vars.Len() > 0 {
		names := vars.Sorted()
		for i, name := range names {
			if value, ok := bindings[name]; ok {
				names[i] = fmt.Sprintf("%s = %s", name, strconv.FormatFloat(value, 'g', -1, 64))
			}
		}
		fmt.Fprintf(w, "vars: %s\n", strings.Join(names, ", "))
	}
}

// reportPlot writes one line per sample of the program over the sweep.
func reportPlot(w io.Writer, prog program.Program, variable string, sweep PlotConfig) {
	points := plot.Sample(plot.NewSource(prog, variable), plot.Range(sweep.Min, sweep.Max, sweep.Samples))
	for _, point := range points {
		x := strconv.FormatFloat(point.X, 'g', -1, 64)
		if !point.Defined {
			fmt.Fprintf(w, "%s\t-\n", x)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", x, strconv.FormatFloat(point.Y, 'g', -1, 64))
	}
}
