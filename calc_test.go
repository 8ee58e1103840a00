package calc_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	calc "github.com/republicprotocol/calc-go"
)

var _ = Describe("Calc", func() {

	Context("when driving the engine through the package facade", func() {
		It("should build, describe, and evaluate a program", func() {
			brain := calc.New()
			brain.PushOperand(2)
			brain.PushOperand(3)
			brain.PushOperator("+")
			brain.PushOperand(4)
			brain.PushOperator("×")

			prog := brain.Snapshot()
			Expect(calc.Describe(prog)).To(Equal("(2 + 3) × 4"))
			Expect(calc.DescribeAll(prog)).To(Equal([]string{"(2 + 3) × 4"}))

			ret, err := calc.Evaluate(prog, calc.Bindings{})
			Expect(err).To(BeNil())
			Expect(ret).To(Equal(20.0))
			Expect(calc.IsDefined(ret)).To(BeTrue())
		})

		It("should expose the error taxonomy", func() {
			brain := calc.New()
			brain.PushOperator("+")
			_, err := calc.Evaluate(brain.Snapshot(), nil)
			Expect(errors.Is(err, calc.ErrInsufficientOperands)).To(BeTrue())

			brain.Clear()
			_, err = calc.Evaluate(brain.Snapshot(), nil)
			Expect(errors.Is(err, calc.ErrEmptyResult)).To(BeTrue())
		})

		It("should collect variables", func() {
			brain := calc.New()
			brain.PushVariable("x")
			brain.PushVariable("y")
			brain.PushOperator("×")
			vars := calc.VariablesUsed(brain.Snapshot())
			Expect(vars.Sorted()).To(Equal([]string{"x", "y"}))
		})
	})
})
