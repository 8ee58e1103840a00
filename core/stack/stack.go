package stack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStackOverflow is returned when an element is pushed to the Stack when
	// the Stack is already full.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when an element is popped from the Stack
	// when the Stack is already empty.
	ErrStackUnderflow = errors.New("stack underflow")
)

// A Stack is a LIFO queue of elements with zero runtime memory allocations. A
// program of n instructions can never hold more than n values, so evaluators
// size the Stack once and never grow it.
type Stack[T any] struct {
	cap   int
	free  int
	elems []T
}

// New returns a Stack with a limited capacity of elements.
func New[T any](cap int) Stack[T] {
	if cap <= 0 {
		panic("stack capacity must be greater than zero")
	}
	return Stack[T]{
		cap:   cap,
		free:  0,
		elems: make([]T, cap, cap),
	}
}

// Push an element to the Stack. If the Stack is already full, the element is
// not pushed and an ErrStackOverflow is returned.
func (stack *Stack[T]) Push(elem T) error {
	if stack.IsFull() {
		return ErrStackOverflow
	}

	stack.elems[stack.free] = elem
	stack.free = stack.free + 1

	return nil
}

// Pop an element from the Stack. If the Stack is already empty, the zero
// value is returned together with an ErrStackUnderflow.
func (stack *Stack[T]) Pop() (T, error) {
	var zero T
	if stack.IsEmpty() {
		return zero, ErrStackUnderflow
	}

	stack.free = stack.free - 1
	elem := stack.elems[stack.free]
	stack.elems[stack.free] = zero

	return elem, nil
}

// PopN pops n elements and returns them in push order, so the element pushed
// first is at index zero. Nothing is popped when fewer than n elements are
// available.
func (stack *Stack[T]) PopN(n int) ([]T, error) {
	if n > stack.free {
		return nil, ErrStackUnderflow
	}

	elems := make([]T, n)
	copy(elems, stack.elems[stack.free-n:stack.free])
	for i := stack.free - n; i < stack.free; i++ {
		var zero T
		stack.elems[i] = zero
	}
	stack.free = stack.free - n

	return elems, nil
}

// Peek returns the top element without popping it.
func (stack *Stack[T]) Peek() (T, error) {
	if stack.IsEmpty() {
		var zero T
		return zero, ErrStackUnderflow
	}
	return stack.elems[stack.free-1], nil
}

// Elements returns a copy of the stored elements, bottom first.
func (stack *Stack[T]) Elements() []T {
	elems := make([]T, stack.free)
	copy(elems, stack.elems[:stack.free])
	return elems
}

// Len returns the number of elements currently stored.
func (stack *Stack[T]) Len() int {
	return stack.free
}

// IsFull returns true when the Stack is full, otherwise it returns false.
// Pushing to a full Stack will result in a stack overflow.
func (stack *Stack[T]) IsFull() bool {
	return stack.free == stack.cap
}

// IsEmpty returns true when the Stack is empty, otherwise it returns false.
// Popping from an empty Stack will result in a stack underflow.
func (stack *Stack[T]) IsEmpty() bool {
	return stack.free == 0
}

func (stack *Stack[T]) String() string {
	elems := make([]string, 0, stack.free)
	for _, elem := range stack.elems[:stack.free] {
		elems = append(elems, fmt.Sprintf("%v", elem))
	}
	return fmt.Sprintf("[%v]", strings.Join(elems, ", "))
}
