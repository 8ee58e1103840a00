package eval_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	. "github.com/republicprotocol/calc-go/core/eval"

	"github.com/republicprotocol/calc-go/core/program"
)

var _ = Describe("Evaluate", func() {

	buildProgram := func(code ...program.Inst) program.Program {
		return program.New(code)
	}

	num := program.Operand
	variable := program.Variable
	operator := program.Operator

	DescribeTable("well formed programs", func(prog program.Program, bindings program.Bindings, expected float64) {
		ret, err := Evaluate(prog, bindings)
		Expect(err).To(BeNil())
		Expect(ret).To(BeNumerically("~", expected, 1e-12))
	},
		Entry("3 + 4", buildProgram(num(3), num(4), operator("+")), nil, 7.0),
		Entry("2 × 3 + 4", buildProgram(num(2), num(3), operator("×"), num(4), operator("+")), nil, 10.0),
		Entry("(2 + 3) × 4", buildProgram(num(2), num(3), operator("+"), num(4), operator("×")), nil, 20.0),
		Entry("√(9)", buildProgram(num(9), operator("√")), nil, 3.0),
		Entry("10 − 4", buildProgram(num(10), num(4), operator("−")), nil, 6.0),
		Entry("10 ÷ 4", buildProgram(num(10), num(4), operator("÷")), nil, 2.5),
		Entry("x ÷ 2", buildProgram(variable("x"), num(2), operator("÷")), program.Bindings{"x": 10}, 5.0),
		Entry("π", buildProgram(operator("π")), nil, math.Pi),
		Entry("cos(π)", buildProgram(operator("π"), operator("cos")), nil, -1.0),
		Entry("sin(0)", buildProgram(num(0), operator("sin")), nil, 0.0),
		Entry("leftover values below the top", buildProgram(num(1), num(2), num(3), operator("+")), nil, 5.0),
		Entry("a trailing operand", buildProgram(num(3), num(4), operator("+"), num(9)), nil, 9.0),
	)

	DescribeTable("undefined results", func(prog program.Program, bindings program.Bindings) {
		ret, err := Evaluate(prog, bindings)
		Expect(err).To(BeNil())
		Expect(IsDefined(ret)).To(BeFalse())
	},
		Entry("a missing variable", buildProgram(variable("x"), num(2), operator("÷")), nil),
		Entry("a variable bound under another name", buildProgram(variable("x")), program.Bindings{"y": 1}),
		Entry("divide by zero", buildProgram(num(1), num(0), operator("÷")), nil),
		Entry("square root of a negative", buildProgram(num(-4), operator("√")), nil),
	)

	Context("when an operator runs out of operands", func() {
		It("should fail with insufficient operands", func() {
			_, err := Evaluate(buildProgram(operator("+")), nil)
			Expect(errors.Is(err, program.ErrInsufficientOperands)).To(BeTrue())
		})

		It("should report the failing instruction", func() {
			_, err := Evaluate(buildProgram(num(1), num(2), operator("+"), operator("×")), nil)
			execErr := program.ExecutionError{}
			Expect(errors.As(err, &execErr)).To(BeTrue())
			Expect(execErr.PC).To(Equal(program.PC(3)))
		})

		It("should fail for a unary operator on an empty stack", func() {
			_, err := Evaluate(buildProgram(operator("sin")), nil)
			Expect(errors.Is(err, program.ErrInsufficientOperands)).To(BeTrue())
		})
	})

	Context("when the program is empty", func() {
		It("should fail with an empty result", func() {
			_, err := Evaluate(program.Program{}, nil)
			Expect(errors.Is(err, program.ErrEmptyResult)).To(BeTrue())
		})
	})

	Context("when an operator is unknown", func() {
		It("should fail closed", func() {
			_, err := Evaluate(buildProgram(num(1), num(2), operator("%")), nil)
			Expect(errors.Is(err, program.ErrUnknownOperator)).To(BeTrue())
		})
	})

	Context("when every instruction leaves a value on the stack", func() {
		It("should keep the topmost value without overflowing", func() {
			code := program.Code{}
			for i := 0; i < 64; i++ {
				code = append(code, num(float64(i)), variable("x"))
			}
			code = append(code, operator("π"))
			ret, err := Evaluate(program.New(code), program.Bindings{"x": 1})
			Expect(err).To(BeNil())
			Expect(ret).To(Equal(math.Pi))
		})
	})

	Context("when evaluating twice", func() {
		It("should return identical results", func() {
			prog := buildProgram(variable("x"), num(2), operator("×"))
			bindings := program.Bindings{"x": 21}
			first, err := Evaluate(prog, bindings)
			Expect(err).To(BeNil())
			second, err := Evaluate(prog, bindings)
			Expect(err).To(BeNil())
			Expect(first).To(Equal(second))
			Expect(first).To(Equal(42.0))
			Expect(bindings).To(Equal(program.Bindings{"x": 21}))
		})
	})

	Context("when checking results", func() {
		It("should treat infinities and NaN as undefined", func() {
			Expect(IsDefined(1)).To(BeTrue())
			Expect(IsDefined(math.NaN())).To(BeFalse())
			Expect(IsDefined(math.Inf(-1))).To(BeFalse())
		})
	})
})
