package stack

import (
	"github.com/npillmayer/cons/maybe"
)

// Stack is a singly-linked LIFO stack. The zero value is an empty stack,
// ready for use:
//
//     var s stack.Stack[int]
//     s.Push(7)
//
type Stack[T any] struct {
	head   *node[T]
	length int
}

type node[T any] struct {
	elem T
	next *node[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.length
}

// Empty is true iff the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.head == nil
}

// Push places an element on top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.head = &node[T]{elem: elem, next: s.head}
	s.length++
	tracer().Debugf("pushed %v, stack depth now %d", elem, s.length)
}

// Pop removes and returns the top element, or Nothing for an empty stack.
func (s *Stack[T]) Pop() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.length--
	return maybe.Just(n.elem)
}

// Peek returns the top element without removing it, or Nothing for an empty
// stack.
func (s *Stack[T]) Peek() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.elem)
}

// PeekMut returns a pointer to the top element for in-place modification,
// or nil for an empty stack. The pointer is valid until the element is
// popped.
func (s *Stack[T]) PeekMut() *T {
	if s.head == nil {
		return nil
	}
	return &s.head.elem
}

// Drop empties the stack. The chain is severed link by link in a loop, so
// that no dangling sub-chain keeps the rest of a long chain reachable and
// teardown cost stays flat per node.
func (s *Stack[T]) Drop() {
	n := s.head
	s.head = nil
	s.length = 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}

// --- Iteration -------------------------------------------------------------

// Drain returns a consuming iterator: every call to Next pops the top
// element. The stack is empty once the iterator is exhausted.
func (s *Stack[T]) Drain() *Drain[T] {
	return &Drain[T]{stack: s}
}

// Drain is a one-shot consuming iterator over a stack, top to bottom.
type Drain[T any] struct {
	stack *Stack[T]
}

func (it *Drain[T]) Next() (T, bool) {
	return it.stack.Pop().Unwrap()
}

// Iter returns a non-consuming iterator over the stack's elements, top to
// bottom. The stack must not be mutated while the iterator is in use.
func (s *Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{cur: s.head}
}

// Iter is a read-only iterator over a stack.
type Iter[T any] struct {
	cur *node[T]
}

func (it *Iter[T]) Next() (T, bool) {
	if it.cur == nil {
		var none T
		return none, false
	}
	elem := it.cur.elem
	it.cur = it.cur.next
	return elem, true
}

// IterMut returns an iterator handing out a pointer to each element in turn,
// top to bottom, for in-place modification. At most one element pointer is
// live at a time: each call to Next advances past the previously returned
// element, and the iterator never revisits a node.
func (s *Stack[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{cur: s.head}
}

// IterMut is a mutating iterator over a stack.
type IterMut[T any] struct {
	cur *node[T]
}

func (it *IterMut[T]) Next() (*T, bool) {
	if it.cur == nil {
		return nil, false
	}
	elem := &it.cur.elem
	it.cur = it.cur.next
	return elem, true
}
