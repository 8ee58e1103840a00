// Package plot turns a Program of one independent variable into sampled
// points for a graphing surface.
package plot

import (
	"github.com/republicprotocol/co-go"

	"github.com/republicprotocol/calc-go/core/desc"
	"github.com/republicprotocol/calc-go/core/eval"
	"github.com/republicprotocol/calc-go/core/program"
)

// A Point is one sample of a Source. Points that are not Defined have no
// value to plot.
type Point struct {
	X, Y    float64
	Defined bool
}

// A Source evaluates a Program snapshot for values of one variable.
type Source struct {
	prog     program.Program
	variable string
}

// NewSource returns a Source that binds x to the variable.
func NewSource(prog program.Program, variable string) Source {
	return Source{
		prog:     prog,
		variable: variable,
	}
}

// Y evaluates the Program with the variable bound to x. It returns false when
// evaluation fails or the result is not a finite number.
func (src Source) Y(x float64) (float64, bool) {
	y, err := eval.Evaluate(src.prog, program.Bindings{src.variable: x})
	if err != nil {
		return y, false
	}
	return y, eval.IsDefined(y)
}

// Description of the Program being plotted.
func (src Source) Description() string {
	return desc.Describe(src.prog)
}

// Sample evaluates the Source at every x. Evaluation of a snapshot has no
// shared state, so points are computed in parallel.
func Sample(src Source, xs []float64) []Point {
	points := make([]Point, len(xs))
	co.ParForAll(points, func(i int) {
		y, ok := src.Y(xs[i])
		points[i] = Point{X: xs[i], Y: y, Defined: ok}
	})
	return points
}

// Range returns n evenly spaced values from min to max inclusive. It returns
// nil when n is not positive and min alone when n is one.
func Range(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{min}
	}
	xs := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range xs {
		xs[i] = min + step*float64(i)
	}
	xs[n-1] = max
	return xs
}
